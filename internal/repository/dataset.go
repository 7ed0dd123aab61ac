// Package repository provides access to the quiz dataset.
package repository

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aidarbek/three-clues-bot/internal/domain/entities"
)

var (
	// ErrDatasetLoad wraps every failure to build a playable dataset;
	// the session cannot start without one.
	ErrDatasetLoad = errors.New("dataset load failed")

	ErrSheetMissing     = errors.New("category sheet missing")
	ErrNotEnoughEntries = errors.New("not enough entries in category")
)

// DatasetRepository holds the dataset loaded from the .xlsx workbook,
// one sheet per category. The data is immutable after load and safe to
// share read-only across sessions.
type DatasetRepository struct {
	entries map[entities.Category][]entities.Entry
	rng     *rand.Rand
}

// NewDatasetRepository loads and validates the workbook at path. Every
// category must have its sheet present with at least entities.MinEntries
// rows carrying distinct answer values.
func NewDatasetRepository(path string, rng *rand.Rand) (*DatasetRepository, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrDatasetLoad, path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	all := make(map[entities.Category][]entities.Entry, len(entities.Categories()))

	for _, c := range entities.Categories() {
		cfg, err := entities.Config(c)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDatasetLoad, err)
		}

		rows, err := f.GetRows(cfg.Sheet)
		if err != nil || len(rows) == 0 {
			return nil, fmt.Errorf("%w: category %s: %w (sheet %q)", ErrDatasetLoad, c, ErrSheetMissing, cfg.Sheet)
		}

		parsed, err := parseSheet(cfg, rows)
		if err != nil {
			return nil, fmt.Errorf("%w: category %s: %w", ErrDatasetLoad, c, err)
		}

		all[c] = parsed
	}

	return &DatasetRepository{entries: all, rng: rng}, nil
}

// Entries returns every entry of a category in sheet order.
func (r *DatasetRepository) Entries(c entities.Category) ([]entities.Entry, error) {
	list, ok := r.entries[c]
	if !ok {
		return nil, fmt.Errorf("%w: %q", entities.ErrUnknownCategory, c)
	}
	return list, nil
}

// SampleEntry returns a uniformly random entry of a category.
func (r *DatasetRepository) SampleEntry(c entities.Category) (entities.Entry, error) {
	list, err := r.Entries(c)
	if err != nil {
		return entities.Entry{}, err
	}
	return list[r.rng.Intn(len(list))], nil
}

// parseSheet turns raw sheet rows into entries. The first row is the
// header; unnamed columns are skipped, rows without an answer value are
// dropped (matching the source workbook's stray rows).
func parseSheet(cfg entities.CategoryConfig, rows [][]string) ([]entities.Entry, error) {
	headers := rows[0]

	answerCol := -1
	for i, h := range headers {
		if strings.TrimSpace(h) == cfg.AnswerField {
			answerCol = i
			break
		}
	}
	if answerCol == -1 {
		return nil, fmt.Errorf("answer column %q not found", cfg.AnswerField)
	}

	entries := make([]entities.Entry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		answer := strings.TrimSpace(cell(row, answerCol))
		if answer == "" {
			continue
		}

		attrs := make(map[string]string, len(headers))
		image := ""
		for i, h := range headers {
			name := strings.TrimSpace(h)
			if name == "" || strings.HasPrefix(name, "Unnamed") || i == answerCol {
				continue
			}
			value := strings.TrimSpace(cell(row, i))
			if name == cfg.ImageField {
				image = value
				continue
			}
			attrs[name] = value
		}

		entries = append(entries, entities.Entry{
			Answer: answer,
			Attrs:  attrs,
			Image:  image,
		})
	}

	if len(entries) < entities.MinEntries {
		return nil, fmt.Errorf("%w: have %d rows, need %d", ErrNotEnoughEntries, len(entries), entities.MinEntries)
	}

	// The >=4 rows invariant only guarantees a full option set when the
	// answers are actually distinct, so distinctness is part of the load
	// check too.
	distinct := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		distinct[strings.ToLower(e.Answer)] = struct{}{}
	}
	if len(distinct) < entities.MinEntries {
		return nil, fmt.Errorf("%w: have %d distinct answers, need %d", ErrNotEnoughEntries, len(distinct), entities.MinEntries)
	}

	return entries, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}
