package entities

import (
	"errors"
	"testing"
)

func TestValidateConfigs(t *testing.T) {
	if err := ValidateConfigs(); err != nil {
		t.Fatalf("category table invalid: %v", err)
	}
}

func TestConfigKnownCategories(t *testing.T) {
	for _, c := range Categories() {
		cfg, err := Config(c)
		if err != nil {
			t.Fatalf("%s: %v", c, err)
		}
		if cfg.AnswerField == "" || cfg.Sheet == "" {
			t.Fatalf("%s: incomplete config %+v", c, cfg)
		}
	}
}

func TestConfigUnknownCategory(t *testing.T) {
	if _, err := Config(Category("Fish")); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Dogs ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c != CategoryDogs {
		t.Fatalf("parsed %q, want %q", c, CategoryDogs)
	}

	if _, err := ParseCategory("dogs"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("lowercase input: expected ErrUnknownCategory, got %v", err)
	}
}
