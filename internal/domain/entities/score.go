package entities

import (
	"errors"
	"fmt"
)

// ErrInvalidClueCount signals a clue count outside 1..MaxClues passed to
// RecordResult. The round state machine never produces such a value; the
// check guards against callers bypassing it.
var ErrInvalidClueCount = errors.New("invalid clue count")

// Score holds the session-lifetime counters: cumulative points and the
// current streak of consecutive correct rounds. Both start at zero and
// reset only when the session itself is discarded.
type Score struct {
	Points int
	Streak int
}

// RecordResult applies one round's resolution to the score and returns
// the points delta and the new streak. It must be called exactly once
// per resolved round; the caller enforces that by resolving the round
// first (a resolved round cannot resolve again).
//
// Fewer clues earn more: 1 clue is 3 points, 2 clues 2, 3 clues 1. An
// incorrect round earns nothing and resets the streak.
func (s *Score) RecordResult(correct bool, cluesUsed int) (delta int, streak int, err error) {
	if cluesUsed < 1 || cluesUsed > MaxClues {
		return 0, s.Streak, fmt.Errorf("%w: %d", ErrInvalidClueCount, cluesUsed)
	}

	if !correct {
		s.Streak = 0
		return 0, s.Streak, nil
	}

	delta = MaxClues + 1 - cluesUsed
	s.Points += delta
	s.Streak++

	return delta, s.Streak, nil
}
