// Package entities contains domain entities used across the application.
package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Category identifies one quiz domain backed by a sheet of the dataset
// workbook.
type Category string

const (
	CategoryDogs      Category = "Dogs"
	CategoryCats      Category = "Cats"
	CategoryHorses    Category = "Horses"
	CategoryDinosaurs Category = "Dinosaurs"
)

// MaxClues is the number of composite clues every category defines.
const MaxClues = 3

// MinEntries is the minimum number of rows a category needs so that a
// full option set (one answer plus three distractors) can be built.
const MinEntries = 4

var ErrUnknownCategory = errors.New("unknown category")

// ClueField names one attribute column together with the neutral text
// substituted when a row carries no value for it.
type ClueField struct {
	Name     string
	Fallback string
}

// CluePlan describes how one clue index is rendered: an ordered set of
// attribute fields interpolated into Format.
type CluePlan struct {
	Fields []ClueField
	Format string
}

// CategoryConfig binds a category to its dataset sheet, its answer and
// image columns, and the three clue plans used during a round.
type CategoryConfig struct {
	Sheet       string
	AnswerField string
	ImageField  string
	CluePlans   [MaxClues]CluePlan
}

var categoryConfigs = map[Category]CategoryConfig{
	CategoryDogs: {
		Sheet:       "Dog Breed Identification",
		AnswerField: "Breed",
		ImageField:  "Example Image",
		CluePlans: [MaxClues]CluePlan{
			{
				Fields: []ClueField{
					{Name: "Country", Fallback: "unknown"},
					{Name: "Continent", Fallback: "unknown"},
					{Name: "Creation Time", Fallback: "unknown time"},
					{Name: "Use", Fallback: "various purposes"},
				},
				Format: "This species was bred in %s, %s during the %s for use(s) like %s",
			},
			{
				Fields: []ClueField{
					{Name: "Color", Fallback: "various colors"},
				},
				Format: "This species is often found in colors: %s",
			},
			{
				Fields: []ClueField{
					{Name: "Personality Traits", Fallback: "varied traits"},
				},
				Format: "Personality traits associated with the species are %s",
			},
		},
	},
	CategoryCats: {
		Sheet:       "Cat Breed Identification",
		AnswerField: "Breed",
		ImageField:  "Example Image",
		CluePlans: [MaxClues]CluePlan{
			{
				Fields: []ClueField{
					{Name: "Country", Fallback: "unknown"},
					{Name: "Continent", Fallback: "unknown"},
					{Name: "History", Fallback: "unknown history"},
				},
				Format: "This species was bred in %s, %s and a tidbit of its history: %s",
			},
			{
				Fields: []ClueField{
					{Name: "Color", Fallback: "various colors"},
				},
				Format: "This species is often found in colors: %s",
			},
			{
				Fields: []ClueField{
					{Name: "Personality", Fallback: "varied traits"},
				},
				Format: "Personality traits associated with the species are %s",
			},
		},
	},
	CategoryHorses: {
		Sheet:       "Horse Breed Identification",
		AnswerField: "Breed",
		ImageField:  "Example Image",
		CluePlans: [MaxClues]CluePlan{
			{
				Fields: []ClueField{
					{Name: "Country", Fallback: "unknown"},
					{Name: "Continent", Fallback: "unknown"},
					{Name: "Creation", Fallback: "unknown time"},
					{Name: "Uses", Fallback: "various uses"},
				},
				Format: "This species was bred in %s, %s around %s. Current uses include %s",
			},
			{
				Fields: []ClueField{
					{Name: "Color", Fallback: "various colors"},
					{Name: "Weight", Fallback: "unknown weight"},
					{Name: "Height", Fallback: "unknown height"},
				},
				Format: "This species is often found in color(s): %s, and typical weight ranges are %s & height ranges are %s",
			},
			{
				Fields: []ClueField{
					{Name: "Distinguishing Features", Fallback: "varied features"},
				},
				Format: "Distinguishing features associated with this species are: %s",
			},
		},
	},
	CategoryDinosaurs: {
		Sheet:       "Dinosaur Species Identification",
		AnswerField: "Common Name",
		ImageField:  "Example Image",
		CluePlans: [MaxClues]CluePlan{
			{
				Fields: []ClueField{
					{Name: "Locations Found", Fallback: "unknown locations"},
					{Name: "Eating Habits", Fallback: "unknown diet"},
				},
				Format: "This species was found in %s and is a %s",
			},
			{
				Fields: []ClueField{
					{Name: "Rough Size", Fallback: "unknown size"},
					{Name: "Clade", Fallback: "unknown clade"},
				},
				Format: "This species has size of roughly %s and in the Clade %s",
			},
			{
				Fields: []ClueField{
					{Name: "Social Behavior", Fallback: "unknown behavior"},
				},
				Format: "Social behaviors associated are: %s",
			},
		},
	},
}

// categoryOrder fixes the presentation order of categories.
var categoryOrder = []Category{
	CategoryDogs,
	CategoryCats,
	CategoryHorses,
	CategoryDinosaurs,
}

// Categories returns all playable categories in presentation order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory converts raw user input into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.TrimSpace(s))
	if _, ok := categoryConfigs[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Config returns the configuration table entry for a category.
func Config(c Category) (CategoryConfig, error) {
	cfg, ok := categoryConfigs[c]
	if !ok {
		return CategoryConfig{}, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
	return cfg, nil
}

// ValidateConfigs eagerly checks the category table so that a broken
// clue plan fails at startup instead of mid-round.
func ValidateConfigs() error {
	for _, c := range categoryOrder {
		cfg, ok := categoryConfigs[c]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, c)
		}
		if cfg.Sheet == "" {
			return fmt.Errorf("category %s: empty sheet name", c)
		}
		if cfg.AnswerField == "" {
			return fmt.Errorf("category %s: empty answer field", c)
		}
		for i, plan := range cfg.CluePlans {
			if plan.Format == "" {
				return fmt.Errorf("category %s: clue %d has no format", c, i+1)
			}
			if len(plan.Fields) == 0 {
				return fmt.Errorf("category %s: clue %d has no fields", c, i+1)
			}
			if got, want := strings.Count(plan.Format, "%s"), len(plan.Fields); got != want {
				return fmt.Errorf("category %s: clue %d expects %d values, format takes %d", c, i+1, want, got)
			}
			for _, f := range plan.Fields {
				if f.Name == "" {
					return fmt.Errorf("category %s: clue %d has an unnamed field", c, i+1)
				}
			}
		}
	}
	return nil
}
