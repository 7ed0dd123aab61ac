package service

import (
	"errors"
	"math/rand"
	"testing"

	"go.uber.org/zap"

	"github.com/aidarbek/three-clues-bot/internal/domain/entities"
)

// fakeDataset serves a fixed category with a deterministic sample so
// game scenarios can assert exact outcomes.
type fakeDataset struct {
	entries []entities.Entry
	target  entities.Entry
}

func (f *fakeDataset) Entries(entities.Category) ([]entities.Entry, error) {
	return f.entries, nil
}

func (f *fakeDataset) SampleEntry(entities.Category) (entities.Entry, error) {
	return f.target, nil
}

func newTestGame() (*GameService, *fakeDataset) {
	entries := []entities.Entry{
		{Answer: "Dalmatian", Attrs: map[string]string{"Country": "Croatia"}, Image: "https://example.com/dalmatian.jpg"},
		{Answer: "Beagle"},
		{Answer: "Poodle"},
		{Answer: "Akita"},
		{Answer: "Husky"},
	}
	ds := &fakeDataset{entries: entries, target: entries[0]}
	game := NewGameService(ds, NewOptionGenerator(rand.New(rand.NewSource(1))), zap.NewNop())
	return game, ds
}

func pickWrongOption(t *testing.T, round *entities.Round) string {
	t.Helper()
	for _, opt := range round.Options {
		if opt != round.Target.Answer {
			return opt
		}
	}
	t.Fatal("no wrong option in option set")
	return ""
}

func TestStartRoundRevealsFirstClue(t *testing.T) {
	game, _ := newTestGame()
	session := entities.NewSession(1)

	view, err := game.StartRound(session, entities.CategoryDogs)
	if err != nil {
		t.Fatalf("start round: %v", err)
	}
	if view.ClueIndex != 1 {
		t.Fatalf("clue index = %d, want 1 (first clue is automatic)", view.ClueIndex)
	}
	if view.Clue == "" {
		t.Fatal("empty first clue")
	}
	if len(view.Options) != OptionCount {
		t.Fatalf("%d options, want %d", len(view.Options), OptionCount)
	}

	found := false
	for _, opt := range view.Options {
		if opt == "Dalmatian" {
			found = true
		}
	}
	if !found {
		t.Fatalf("target answer missing from options %v", view.Options)
	}
	if session.Round == nil {
		t.Fatal("session has no round after start")
	}
}

func TestGameScenarioScoringAndStreak(t *testing.T) {
	game, _ := newTestGame()
	session := entities.NewSession(1)

	// Round 1: submit correctly on clue 1.
	if _, err := game.StartRound(session, entities.CategoryDogs); err != nil {
		t.Fatalf("start round 1: %v", err)
	}
	res, err := game.Submit(session, "Dalmatian")
	if err != nil {
		t.Fatalf("submit round 1: %v", err)
	}
	if !res.Correct {
		t.Fatal("round 1 should be correct")
	}
	if res.PointsDelta != 3 || res.Score != 3 || res.Streak != 1 {
		t.Fatalf("round 1: delta=%d score=%d streak=%d, want 3/3/1", res.PointsDelta, res.Score, res.Streak)
	}

	// Round 2: reveal clue 2, then submit incorrectly.
	if _, err := game.StartRound(session, entities.CategoryDogs); err != nil {
		t.Fatalf("start round 2: %v", err)
	}
	view, err := game.RevealClue(session)
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if view.ClueIndex != 2 {
		t.Fatalf("clue index = %d, want 2", view.ClueIndex)
	}

	res, err = game.Submit(session, pickWrongOption(t, session.Round))
	if err != nil {
		t.Fatalf("submit round 2: %v", err)
	}
	if res.Correct {
		t.Fatal("round 2 should be incorrect")
	}
	if res.PointsDelta != 0 || res.Score != 3 || res.Streak != 0 {
		t.Fatalf("round 2: delta=%d score=%d streak=%d, want 0/3/0", res.PointsDelta, res.Score, res.Streak)
	}
}

func TestSubmitWithTwoCluesScoresTwo(t *testing.T) {
	game, _ := newTestGame()
	session := entities.NewSession(1)

	if _, err := game.StartRound(session, entities.CategoryDogs); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := game.RevealClue(session); err != nil {
		t.Fatalf("reveal: %v", err)
	}

	res, err := game.Submit(session, "Dalmatian")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.CluesUsed != 2 || res.PointsDelta != 2 {
		t.Fatalf("clues=%d delta=%d, want 2/2", res.CluesUsed, res.PointsDelta)
	}
}

func TestDoubleSubmitFailsAndKeepsScore(t *testing.T) {
	game, _ := newTestGame()
	session := entities.NewSession(1)

	if _, err := game.StartRound(session, entities.CategoryDogs); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := game.Submit(session, "Dalmatian"); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	scoreBefore := session.Score

	if _, err := game.Submit(session, "Dalmatian"); !errors.Is(err, entities.ErrRoundResolved) {
		t.Fatalf("second submit: expected ErrRoundResolved, got %v", err)
	}
	if session.Score != scoreBefore {
		t.Fatalf("score changed by rejected submit: %+v -> %+v", scoreBefore, session.Score)
	}
}

func TestRevealCluePastLimit(t *testing.T) {
	game, _ := newTestGame()
	session := entities.NewSession(1)

	if _, err := game.StartRound(session, entities.CategoryDogs); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 2; i <= entities.MaxClues; i++ {
		if _, err := game.RevealClue(session); err != nil {
			t.Fatalf("reveal %d: %v", i, err)
		}
	}

	if _, err := game.RevealClue(session); !errors.Is(err, entities.ErrNoMoreClues) {
		t.Fatalf("expected ErrNoMoreClues, got %v", err)
	}
}

func TestGiveUpOnFreshRound(t *testing.T) {
	game, _ := newTestGame()
	session := entities.NewSession(1)
	session.Score = entities.Score{Points: 5, Streak: 2}

	if _, err := game.StartRound(session, entities.CategoryDogs); err != nil {
		t.Fatalf("start: %v", err)
	}

	res, err := game.GiveUp(session)
	if err != nil {
		t.Fatalf("give up: %v", err)
	}
	if res.Correct || !res.GaveUp {
		t.Fatalf("give up resolution: %+v", res)
	}
	if res.CluesUsed != 1 {
		t.Fatalf("clues used = %d, want 1 (never zero)", res.CluesUsed)
	}
	if res.Answer != "Dalmatian" {
		t.Fatalf("answer = %q, want target revealed", res.Answer)
	}
	if res.Image == "" {
		t.Fatal("resolution missing image reference")
	}
	if len(res.AllClues) != entities.MaxClues {
		t.Fatalf("recap has %d clues, want %d", len(res.AllClues), entities.MaxClues)
	}
	if res.Score != 5 || res.Streak != 0 {
		t.Fatalf("score=%d streak=%d, want 5/0", res.Score, res.Streak)
	}
}

func TestActionsWithoutActiveRound(t *testing.T) {
	game, _ := newTestGame()
	session := entities.NewSession(1)

	if _, err := game.RevealClue(session); !errors.Is(err, ErrNoActiveRound) {
		t.Fatalf("reveal: expected ErrNoActiveRound, got %v", err)
	}
	if _, err := game.Submit(session, "Dalmatian"); !errors.Is(err, ErrNoActiveRound) {
		t.Fatalf("submit: expected ErrNoActiveRound, got %v", err)
	}
	if _, err := game.GiveUp(session); !errors.Is(err, ErrNoActiveRound) {
		t.Fatalf("give up: expected ErrNoActiveRound, got %v", err)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	game, _ := newTestGame()
	first := entities.NewSession(1)
	second := entities.NewSession(2)

	if _, err := game.StartRound(first, entities.CategoryDogs); err != nil {
		t.Fatalf("start first: %v", err)
	}
	if _, err := game.Submit(first, "Dalmatian"); err != nil {
		t.Fatalf("submit first: %v", err)
	}

	if second.Score.Points != 0 || second.Round != nil {
		t.Fatalf("second session touched by first: %+v", second)
	}
	if _, err := game.Submit(second, "Dalmatian"); !errors.Is(err, ErrNoActiveRound) {
		t.Fatalf("second session: expected ErrNoActiveRound, got %v", err)
	}
}
