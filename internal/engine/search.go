// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

package engine

import (
	"sort"
	"strings"

	"github.com/JayKCDev/movie-recommendation-system/internal/models"
)

// SearchIndex answers substring title searches for autocomplete. It keeps a
// normalized copy of every title alongside a lightweight result row, built
// once per catalog snapshot.
type SearchIndex struct {
	titles  []string // normalized titles, catalog order
	matches []models.SearchMatch
}

// NewSearchIndex builds the search index from the ordered catalog records.
func NewSearchIndex(records []models.MovieRecord) *SearchIndex {
	idx := &SearchIndex{
		titles:  make([]string, len(records)),
		matches: make([]models.SearchMatch, len(records)),
	}
	for i := range records {
		idx.titles[i] = normalizeTitle(records[i].Title)
		idx.matches[i] = models.SearchMatch{
			ID:          records[i].ID,
			Title:       records[i].Title,
			ReleaseDate: records[i].ReleaseDate,
		}
	}
	return idx
}

// Search returns up to limit titles containing the normalized query as a
// substring. Prefix matches rank ahead of interior matches; within a tier,
// shorter titles come first, then ascending id. An empty or whitespace-only
// query matches nothing.
func (s *SearchIndex) Search(query string, limit int) ([]models.SearchMatch, error) {
	if limit < 1 {
		return nil, models.Validationf("limit must be >= 1, got %d", limit)
	}

	norm := normalizeTitle(query)
	if norm == "" {
		return []models.SearchMatch{}, nil
	}

	type hit struct {
		match  models.SearchMatch
		prefix bool
		length int
	}
	var hits []hit
	for i, title := range s.titles {
		pos := strings.Index(title, norm)
		if pos < 0 {
			continue
		}
		hits = append(hits, hit{
			match:  s.matches[i],
			prefix: pos == 0,
			length: len(title),
		})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].prefix != hits[j].prefix {
			return hits[i].prefix
		}
		if hits[i].length != hits[j].length {
			return hits[i].length < hits[j].length
		}
		return hits[i].match.ID < hits[j].match.ID
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]models.SearchMatch, len(hits))
	for i, h := range hits {
		out[i] = h.match
	}
	return out, nil
}

// Len returns the number of indexed titles.
func (s *SearchIndex) Len() int {
	return len(s.titles)
}

func normalizeTitle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
