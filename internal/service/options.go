package service

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/aidarbek/three-clues-bot/internal/domain/entities"
)

// OptionCount is the size of every option set: the correct answer plus
// three distractors.
const OptionCount = 4

// ErrInsufficientOptions signals that a category does not carry enough
// distinct answer values to fill an option set. The dataset loader
// guarantees it cannot happen, but the generator re-validates.
var ErrInsufficientOptions = errors.New("not enough distinct answer values for options")

// OptionGenerator builds shuffled multiple-choice option sets.
type OptionGenerator struct {
	rng *rand.Rand
}

// NewOptionGenerator creates an OptionGenerator driven by the given
// random source.
func NewOptionGenerator(rng *rand.Rand) *OptionGenerator {
	return &OptionGenerator{rng: rng}
}

// Generate returns OptionCount options for the target entry: its answer
// exactly once plus distractors drawn without replacement from the other
// entries. Distractors are deduplicated by answer value, case
// insensitively, so two rows sharing an answer string can never produce
// duplicate-looking choices. The result order is random.
func (g *OptionGenerator) Generate(target entities.Entry, all []entities.Entry) ([]string, error) {
	correct := strings.TrimSpace(target.Answer)

	seen := map[string]struct{}{strings.ToLower(correct): {}}
	candidates := make([]string, 0, len(all))
	for _, e := range all {
		answer := strings.TrimSpace(e.Answer)
		if answer == "" {
			continue
		}
		key := strings.ToLower(answer)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		candidates = append(candidates, answer)
	}

	if len(candidates) < OptionCount-1 {
		return nil, fmt.Errorf("%w: have %d distractors, need %d", ErrInsufficientOptions, len(candidates), OptionCount-1)
	}

	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	options := make([]string, 0, OptionCount)
	options = append(options, correct)
	options = append(options, candidates[:OptionCount-1]...)

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options, nil
}
