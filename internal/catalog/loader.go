// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/JayKCDev/movie-recommendation-system/internal/logging"
	"github.com/JayKCDev/movie-recommendation-system/internal/metrics"
	"github.com/JayKCDev/movie-recommendation-system/internal/models"
)

// LoaderConfig describes where and how to read the movies CSV.
type LoaderConfig struct {
	// Source is a local file path or an http(s) URL.
	Source string

	// FetchTimeout bounds the HTTP fetch when Source is a URL.
	FetchTimeout time.Duration

	// ListSeparator splits multi-valued cells (genres, keywords).
	// Comma is always accepted as a fallback separator.
	ListSeparator string
}

// columns the loader understands. Extra CSV columns are ignored; missing
// optional columns contribute empty values.
const (
	colID          = "id"
	colTitle       = "title"
	colOverview    = "overview"
	colGenres      = "genres"
	colKeywords    = "keywords"
	colReleaseDate = "release_date"
	colVoteAverage = "vote_average"
	colVoteCount   = "vote_count"
)

// LoadRecords reads the movies CSV from cfg.Source and returns the valid
// records in file order. Malformed rows (missing id, empty title, unparsable
// numerics) are skipped with a warning; if no valid rows remain the load
// fails with a ValidationError.
func LoadRecords(ctx context.Context, cfg LoaderConfig) ([]models.MovieRecord, error) {
	reader, closer, err := openSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer closer()

	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1 // tolerate ragged rows; validated per field below
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	cols := indexColumns(header)
	if _, ok := cols[colID]; !ok {
		return nil, models.Validationf("CSV is missing required column %q", colID)
	}
	if _, ok := cols[colTitle]; !ok {
		return nil, models.Validationf("CSV is missing required column %q", colTitle)
	}

	var (
		records []models.MovieRecord
		skipped int
		line    = 1
	)

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			logging.Warn().Int("line", line).Err(err).Msg("Skipping unreadable CSV row")
			skipped++
			continue
		}

		rec, err := parseRow(row, cols, cfg.ListSeparator)
		if err != nil {
			logging.Warn().Int("line", line).Err(err).Msg("Skipping malformed record")
			skipped++
			continue
		}
		records = append(records, rec)
	}

	metrics.CatalogRowsSkipped.Add(float64(skipped))

	if len(records) == 0 {
		return nil, models.Validationf("no valid records in catalog source %s", cfg.Source)
	}

	logging.Info().
		Int("loaded", len(records)).
		Int("skipped", skipped).
		Str("source", cfg.Source).
		Msg("Catalog loaded")

	return records, nil
}

// openSource opens cfg.Source as either an HTTP URL or a local file.
func openSource(ctx context.Context, cfg LoaderConfig) (io.Reader, func(), error) {
	if strings.HasPrefix(cfg.Source, "http://") || strings.HasPrefix(cfg.Source, "https://") {
		timeout := cfg.FetchTimeout
		if timeout <= 0 {
			timeout = 2 * time.Minute
		}
		client := &http.Client{Timeout: timeout}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.Source, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build catalog request: %w", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to fetch catalog from %s: %w", cfg.Source, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, nil, fmt.Errorf("catalog fetch from %s returned status %d", cfg.Source, resp.StatusCode)
		}
		return resp.Body, func() { resp.Body.Close() }, nil
	}

	f, err := os.Open(cfg.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// indexColumns maps normalized header names to their column positions.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

// parseRow converts one CSV row into a MovieRecord.
func parseRow(row []string, cols map[string]int, listSep string) (models.MovieRecord, error) {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	idStr := field(colID)
	if idStr == "" {
		return models.MovieRecord{}, fmt.Errorf("missing id")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return models.MovieRecord{}, fmt.Errorf("invalid id %q: %w", idStr, err)
	}

	title := field(colTitle)
	if title == "" {
		return models.MovieRecord{}, fmt.Errorf("empty title for id %d", id)
	}

	rec := models.MovieRecord{
		ID:          id,
		Title:       title,
		Overview:    field(colOverview),
		Genres:      splitList(field(colGenres), listSep),
		Keywords:    splitList(field(colKeywords), listSep),
		ReleaseDate: field(colReleaseDate),
	}

	if s := field(colVoteAverage); s != "" {
		avg, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return models.MovieRecord{}, fmt.Errorf("invalid vote_average %q: %w", s, err)
		}
		if avg < 0 || avg > 10 {
			return models.MovieRecord{}, fmt.Errorf("vote_average %v outside 0-10", avg)
		}
		rec.VoteAverage = avg
	}

	if s := field(colVoteCount); s != "" {
		// vote_count is occasionally serialized as a float ("150.0")
		count, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return models.MovieRecord{}, fmt.Errorf("invalid vote_count %q: %w", s, err)
		}
		if count < 0 {
			return models.MovieRecord{}, fmt.Errorf("negative vote_count %v", count)
		}
		rec.VoteCount = int(count)
	}

	return rec, nil
}

// splitList splits a multi-valued cell on the configured separator, falling
// back to comma. Each value is an atomic phrase; it is never tokenized
// further downstream.
func splitList(s, sep string) []string {
	if s == "" {
		return nil
	}
	if sep == "" || !strings.Contains(s, sep) {
		sep = ","
	}

	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
