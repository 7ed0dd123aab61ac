package entities

// Session is the per-chat game context: the last picked category, the
// active round (nil between rounds), and the session score. Sessions are
// independent of each other; only the loaded dataset is shared, and that
// is read-only.
type Session struct {
	ChatID   int64
	Category Category
	Round    *Round
	Score    Score
}

// NewSession creates an empty session with zero score and no round.
func NewSession(chatID int64) *Session {
	return &Session{ChatID: chatID}
}
