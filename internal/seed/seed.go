// Package seed loads the guest-appearance CSV export into the database.
//
// Expected columns: year, occupation, show date, group, ..., guest name
// (the name is always the last column). The first row is a header.
package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"

	"latenight/internal/http-api/models"
	"latenight/internal/http-api/repository"
)

const (
	colOccupation = 1
	colDate       = 2
	minColumns    = 3
)

var ErrNoRows = errors.New("seed file has no data rows")

// Row is one guest appearance from the CSV.
type Row struct {
	Line       int
	Occupation string
	Date       string
	Name       string
}

// ParseCSV reads every data row, skipping the header.
func ParseCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) <= 1 {
		return nil, ErrNoRows
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) < minColumns {
			return nil, fmt.Errorf("line %d: expected at least %d columns, got %d", line, minColumns, len(rec))
		}
		row := Row{
			Line:       line,
			Occupation: strings.TrimSpace(rec[colOccupation]),
			Date:       strings.TrimSpace(rec[colDate]),
			Name:       strings.TrimSpace(rec[len(rec)-1]),
		}
		if row.Date == "" || row.Name == "" {
			return nil, fmt.Errorf("line %d: show date and guest name are required", line)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Build turns rows into one episode per distinct date (numbered in order of
// first appearance), one guest per distinct name (occupation taken from
// their first row) and one appearance per row with a random rating.
func Build(rows []Row, rng *rand.Rand) *repository.SeedData {
	data := &repository.SeedData{}
	episodeIdx := make(map[string]int)
	guestIdx := make(map[string]int)

	for _, row := range rows {
		ei, ok := episodeIdx[row.Date]
		if !ok {
			ei = len(data.Episodes)
			episodeIdx[row.Date] = ei
			data.Episodes = append(data.Episodes, models.Episode{Date: row.Date, Number: ei + 1})
		}

		gi, ok := guestIdx[row.Name]
		if !ok {
			gi = len(data.Guests)
			guestIdx[row.Name] = gi
			data.Guests = append(data.Guests, models.Guest{Name: row.Name, Occupation: row.Occupation})
		}

		data.Links = append(data.Links, repository.SeedLink{
			EpisodeIndex: ei,
			GuestIndex:   gi,
			Rating:       models.MinRating + rng.IntN(models.MaxRating-models.MinRating),
		})
	}
	return data
}

type Loader struct {
	repo   repository.SeedRepository
	rng    *rand.Rand
	logger *slog.Logger
}

func NewLoader(repo repository.SeedRepository, rng *rand.Rand, logger *slog.Logger) *Loader {
	return &Loader{repo: repo, rng: rng, logger: logger}
}

// Load parses r and replaces the database contents with it.
func (l *Loader) Load(ctx context.Context, r io.Reader) (*repository.SeedResult, error) {
	rows, err := ParseCSV(r)
	if err != nil {
		return nil, err
	}
	l.logger.Info("seed_parsed", "rows", len(rows))

	data := Build(rows, l.rng)
	res, err := l.repo.Reseed(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("reseed: %w", err)
	}

	l.logger.Info("seed_complete",
		"episodes", res.Episodes,
		"guests", res.Guests,
		"appearances", res.Appearances,
	)
	return res, nil
}

// Clear empties all three tables without loading anything.
func (l *Loader) Clear(ctx context.Context) error {
	if err := l.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	l.logger.Info("seed_cleared")
	return nil
}
