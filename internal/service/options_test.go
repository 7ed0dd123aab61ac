package service

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/aidarbek/three-clues-bot/internal/domain/entities"
)

func entriesWithAnswers(answers ...string) []entities.Entry {
	out := make([]entities.Entry, 0, len(answers))
	for _, a := range answers {
		out = append(out, entities.Entry{Answer: a})
	}
	return out
}

func TestGenerateOptionSetInvariants(t *testing.T) {
	g := NewOptionGenerator(rand.New(rand.NewSource(1)))
	all := entriesWithAnswers("Dalmatian", "Beagle", "Poodle", "Akita", "Husky", "Corgi")
	target := all[0]

	for i := 0; i < 100; i++ {
		options, err := g.Generate(target, all)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(options) != OptionCount {
			t.Fatalf("%d options, want %d", len(options), OptionCount)
		}

		correct := 0
		seen := make(map[string]struct{}, len(options))
		for _, opt := range options {
			if opt == target.Answer {
				correct++
			}
			key := strings.ToLower(opt)
			if _, dup := seen[key]; dup {
				t.Fatalf("duplicate option %q in %v", opt, options)
			}
			seen[key] = struct{}{}
		}
		if correct != 1 {
			t.Fatalf("correct answer appears %d times in %v", correct, options)
		}
	}
}

func TestGenerateNoPositionalBias(t *testing.T) {
	g := NewOptionGenerator(rand.New(rand.NewSource(42)))
	all := entriesWithAnswers("Dalmatian", "Beagle", "Poodle", "Akita", "Husky")
	target := all[0]

	positions := make(map[int]struct{})
	for i := 0; i < 60; i++ {
		options, err := g.Generate(target, all)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		for p, opt := range options {
			if opt == target.Answer {
				positions[p] = struct{}{}
			}
		}
	}

	if len(positions) < 2 {
		t.Fatalf("correct answer pinned to a single position: %v", positions)
	}
}

func TestGenerateDedupesAnswerValues(t *testing.T) {
	g := NewOptionGenerator(rand.New(rand.NewSource(7)))
	// Two rows named like the target (different case) and a duplicated
	// distractor value must not produce duplicate-looking choices.
	all := entriesWithAnswers("Labrador", "labrador", "Beagle", "beagle", "Poodle", "Akita", "Husky")
	target := all[0]

	for i := 0; i < 50; i++ {
		options, err := g.Generate(target, all)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		seen := make(map[string]struct{}, len(options))
		for _, opt := range options {
			key := strings.ToLower(opt)
			if _, dup := seen[key]; dup {
				t.Fatalf("duplicate-looking options: %v", options)
			}
			seen[key] = struct{}{}
		}
	}
}

func TestGenerateInsufficientOptions(t *testing.T) {
	g := NewOptionGenerator(rand.New(rand.NewSource(1)))
	all := entriesWithAnswers("Dalmatian", "Beagle", "beagle", "BEAGLE")
	target := all[0]

	if _, err := g.Generate(target, all); !errors.Is(err, ErrInsufficientOptions) {
		t.Fatalf("expected ErrInsufficientOptions, got %v", err)
	}
}

func TestGenerateMinimumPoolBoundary(t *testing.T) {
	g := NewOptionGenerator(rand.New(rand.NewSource(1)))
	// Exactly MinEntries distinct answers: the smallest dataset that can
	// still fill an option set.
	all := entriesWithAnswers("Dalmatian", "Beagle", "Poodle", "Akita")
	target := all[3]

	options, err := g.Generate(target, all)
	if err != nil {
		t.Fatalf("generate at boundary: %v", err)
	}
	if len(options) != OptionCount {
		t.Fatalf("%d options, want %d", len(options), OptionCount)
	}

	want := map[string]struct{}{"Dalmatian": {}, "Beagle": {}, "Poodle": {}, "Akita": {}}
	for _, opt := range options {
		if _, ok := want[opt]; !ok {
			t.Fatalf("unexpected option %q", opt)
		}
	}
}
