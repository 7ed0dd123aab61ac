package entities

import (
	"errors"
	"strings"
)

var (
	// ErrNoMoreClues signals that all clues were already revealed; the
	// UI should disable its hint control rather than treat this as fatal.
	ErrNoMoreClues = errors.New("no more clues available")

	// ErrRoundResolved signals an action against an already resolved
	// round. Resolved rounds are immutable.
	ErrRoundResolved = errors.New("round already resolved")
)

// Round is the ephemeral state of one play-through: the target entry,
// the shuffled option set, and the reveal/resolution progress. A round
// is created per category pick and discarded when the next round starts.
type Round struct {
	Category  Category
	Target    Entry
	Options   []string
	ClueIndex int // 0 until the first clue is revealed, then 1..MaxClues
	Resolved  bool
	Selected  string // option picked by the user, empty until submit
}

// Result describes how a round was resolved.
type Result struct {
	Correct   bool
	CluesUsed int
	Target    Entry
}

// NewRound creates an unresolved round awaiting its first clue.
func NewRound(category Category, target Entry, options []string) *Round {
	return &Round{
		Category: category,
		Target:   target,
		Options:  options,
	}
}

// RevealNextClue advances to the next clue and returns its index (1-based).
func (r *Round) RevealNextClue() (int, error) {
	if r.Resolved {
		return 0, ErrRoundResolved
	}
	if r.ClueIndex >= MaxClues {
		return 0, ErrNoMoreClues
	}
	r.ClueIndex++
	return r.ClueIndex, nil
}

// SubmitAnswer resolves the round with the user's selection. Correctness
// is a case-insensitive comparison against the target answer. The clue
// count is floored at 1: the first clue is shown automatically, so a
// submit before any explicit reveal still consumed one clue.
func (r *Round) SubmitAnswer(selected string) (Result, error) {
	if r.Resolved {
		return Result{}, ErrRoundResolved
	}

	r.Resolved = true
	r.Selected = selected

	correct := strings.EqualFold(
		strings.TrimSpace(selected),
		strings.TrimSpace(r.Target.Answer),
	)

	return Result{
		Correct:   correct,
		CluesUsed: r.cluesUsed(),
		Target:    r.Target,
	}, nil
}

// GiveUp resolves the round as incorrect without a selection and reveals
// the target.
func (r *Round) GiveUp() (Result, error) {
	if r.Resolved {
		return Result{}, ErrRoundResolved
	}

	r.Resolved = true

	return Result{
		Correct:   false,
		CluesUsed: r.cluesUsed(),
		Target:    r.Target,
	}, nil
}

func (r *Round) cluesUsed() int {
	if r.ClueIndex < 1 {
		return 1
	}
	return r.ClueIndex
}
