package service

import (
	"errors"
	"fmt"

	"github.com/aidarbek/three-clues-bot/internal/domain/entities"
)

// ErrInvalidClueIndex signals a clue index outside 1..entities.MaxClues.
var ErrInvalidClueIndex = errors.New("clue index out of range")

// ClueBuilder renders composite natural-language clues from a category's
// clue plans. Output is deterministic for a given (category, entry,
// index); missing attribute values degrade to the plan's neutral
// fallback text instead of breaking the sentence.
type ClueBuilder struct{}

// Build returns the clue sentence for the given index (1-based).
func (b ClueBuilder) Build(c entities.Category, entry entities.Entry, index int) (string, error) {
	cfg, err := entities.Config(c)
	if err != nil {
		return "", err
	}

	if index < 1 || index > entities.MaxClues {
		return "", fmt.Errorf("%w: %d", ErrInvalidClueIndex, index)
	}

	plan := cfg.CluePlans[index-1]
	args := make([]any, 0, len(plan.Fields))
	for _, f := range plan.Fields {
		value := entry.Attr(f.Name)
		if value == "" {
			value = f.Fallback
		}
		args = append(args, value)
	}

	return fmt.Sprintf(plan.Format, args...), nil
}

// BuildAll returns all clues of an entry in order, for the recap card
// shown after a round is resolved.
func (b ClueBuilder) BuildAll(c entities.Category, entry entities.Entry) ([]string, error) {
	clues := make([]string, 0, entities.MaxClues)
	for i := 1; i <= entities.MaxClues; i++ {
		clue, err := b.Build(c, entry, i)
		if err != nil {
			return nil, err
		}
		clues = append(clues, clue)
	}
	return clues, nil
}
