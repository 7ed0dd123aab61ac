// Package service contains the game logic: option generation, clue
// rendering, and round orchestration over the dataset.
package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aidarbek/three-clues-bot/internal/domain/entities"
)

// ErrNoActiveRound signals an in-round action on a session that has no
// round in progress.
var ErrNoActiveRound = errors.New("no active round")

// Dataset is the read side of the loaded dataset the game plays against.
type Dataset interface {
	Entries(c entities.Category) ([]entities.Entry, error)
	SampleEntry(c entities.Category) (entities.Entry, error)
}

// RoundView is what the presentation layer needs to show after starting
// a round or revealing a clue.
type RoundView struct {
	Category  entities.Category
	ClueIndex int
	Clue      string
	Options   []string
}

// Resolution is what the presentation layer needs to show once a round
// is resolved: the verdict, the scoring outcome, and the recap material.
type Resolution struct {
	Correct     bool
	GaveUp      bool
	Answer      string
	CluesUsed   int
	PointsDelta int
	Score       int
	Streak      int
	Image       string
	AllClues    []string
}

// GameService drives rounds for independent sessions. All per-round and
// per-session state lives in the session passed to each call; the
// service itself only holds the shared read-only collaborators.
type GameService struct {
	dataset Dataset
	options *OptionGenerator
	clues   ClueBuilder
	logger  *zap.Logger
}

// NewGameService creates a GameService.
func NewGameService(dataset Dataset, options *OptionGenerator, logger *zap.Logger) *GameService {
	return &GameService{
		dataset: dataset,
		options: options,
		logger:  logger,
	}
}

// StartRound begins a new round for the session: samples a target entry,
// builds the option set, and performs the automatic first clue reveal.
// Any round already in progress is discarded.
func (s *GameService) StartRound(session *entities.Session, c entities.Category) (*RoundView, error) {
	target, err := s.dataset.SampleEntry(c)
	if err != nil {
		return nil, fmt.Errorf("sample entry: %w", err)
	}

	all, err := s.dataset.Entries(c)
	if err != nil {
		return nil, fmt.Errorf("get entries: %w", err)
	}

	options, err := s.options.Generate(target, all)
	if err != nil {
		return nil, fmt.Errorf("generate options: %w", err)
	}

	round := entities.NewRound(c, target, options)

	// The first clue is shown as part of round start.
	index, err := round.RevealNextClue()
	if err != nil {
		return nil, fmt.Errorf("reveal first clue: %w", err)
	}

	clue, err := s.clues.Build(c, target, index)
	if err != nil {
		return nil, fmt.Errorf("build clue: %w", err)
	}

	session.Category = c
	session.Round = round

	s.logger.Debug("round started",
		zap.Int64("chat_id", session.ChatID),
		zap.String("category", string(c)),
	)

	return &RoundView{
		Category:  c,
		ClueIndex: index,
		Clue:      clue,
		Options:   options,
	}, nil
}

// RevealClue advances the session's round to its next clue.
func (s *GameService) RevealClue(session *entities.Session) (*RoundView, error) {
	round := session.Round
	if round == nil {
		return nil, ErrNoActiveRound
	}

	index, err := round.RevealNextClue()
	if err != nil {
		return nil, err
	}

	clue, err := s.clues.Build(round.Category, round.Target, index)
	if err != nil {
		return nil, fmt.Errorf("build clue: %w", err)
	}

	return &RoundView{
		Category:  round.Category,
		ClueIndex: index,
		Clue:      clue,
		Options:   round.Options,
	}, nil
}

// Submit resolves the session's round with the selected option and
// records the result against the session score exactly once.
func (s *GameService) Submit(session *entities.Session, selected string) (*Resolution, error) {
	round := session.Round
	if round == nil {
		return nil, ErrNoActiveRound
	}

	result, err := round.SubmitAnswer(selected)
	if err != nil {
		return nil, err
	}

	return s.resolve(session, result, false)
}

// GiveUp resolves the session's round as incorrect and reveals the
// answer.
func (s *GameService) GiveUp(session *entities.Session) (*Resolution, error) {
	round := session.Round
	if round == nil {
		return nil, ErrNoActiveRound
	}

	result, err := round.GiveUp()
	if err != nil {
		return nil, err
	}

	return s.resolve(session, result, true)
}

func (s *GameService) resolve(session *entities.Session, result entities.Result, gaveUp bool) (*Resolution, error) {
	delta, streak, err := session.Score.RecordResult(result.Correct, result.CluesUsed)
	if err != nil {
		return nil, fmt.Errorf("record result: %w", err)
	}

	allClues, err := s.clues.BuildAll(session.Round.Category, result.Target)
	if err != nil {
		return nil, fmt.Errorf("build recap clues: %w", err)
	}

	s.logger.Debug("round resolved",
		zap.Int64("chat_id", session.ChatID),
		zap.Bool("correct", result.Correct),
		zap.Bool("gave_up", gaveUp),
		zap.Int("clues_used", result.CluesUsed),
		zap.Int("points_delta", delta),
	)

	return &Resolution{
		Correct:     result.Correct,
		GaveUp:      gaveUp,
		Answer:      result.Target.Answer,
		CluesUsed:   result.CluesUsed,
		PointsDelta: delta,
		Score:       session.Score.Points,
		Streak:      streak,
		Image:       result.Target.Image,
		AllClues:    allClues,
	}, nil
}
