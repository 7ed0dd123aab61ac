package storage

import (
	"sync"

	"github.com/aidarbek/three-clues-bot/internal/domain/entities"
)

// SessionStorage provides in-memory storage for game sessions by chat ID.
// Each chat gets its own isolated session; nothing here survives a
// process restart.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*entities.Session
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*entities.Session),
	}
}

// GetOrCreate returns the session for a chat, creating a fresh one with
// zero score when the chat has none yet.
func (s *SessionStorage) GetOrCreate(chatID int64) *entities.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[chatID]
	if !ok {
		session = entities.NewSession(chatID)
		s.sessions[chatID] = session
	}
	return session
}

// Get retrieves the session for a chat if one exists.
func (s *SessionStorage) Get(chatID int64) (*entities.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[chatID]
	return session, ok
}

// Delete removes the session for a chat.
func (s *SessionStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}
