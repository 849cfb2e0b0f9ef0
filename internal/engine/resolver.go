// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

package engine

import (
	"strings"

	"github.com/JayKCDev/movie-recommendation-system/internal/models"
)

// substringBonus is added to a candidate's token-overlap score when the
// whole normalized query appears inside the candidate title. It breaks ties
// between candidates with equal overlap without outweighing a full extra
// token at typical query lengths.
const substringBonus = 0.25

// ResolveTitle maps a free-text query to exactly one catalog record.
//
// Tier 1 (exact): case-insensitive, whitespace-trimmed equality. When
// several records share the normalized title, the one with the highest vote
// count wins, further ties broken by lowest id. This duplicate policy is
// deliberate: remakes usually share a title and users almost always mean
// the widely-voted one.
//
// Tier 2 (best effort): every title is scored by the fraction of query
// tokens it contains, plus substringBonus when the query is a substring of
// the title. The highest score wins, ties broken by lowest id.
//
// Fails with ErrNotFound when no candidate has any positive signal.
func ResolveTitle(records []models.MovieRecord, query string) (models.MovieRecord, error) {
	norm := strings.ToLower(strings.TrimSpace(query))
	if norm == "" {
		return models.MovieRecord{}, models.ErrNotFound
	}

	// Tier 1: exact normalized match.
	var (
		exact      models.MovieRecord
		exactFound bool
	)
	for i := range records {
		if strings.ToLower(strings.TrimSpace(records[i].Title)) != norm {
			continue
		}
		if !exactFound || betterDuplicate(&records[i], &exact) {
			exact = records[i]
			exactFound = true
		}
	}
	if exactFound {
		return exact, nil
	}

	// Tier 2: token overlap with substring bonus.
	queryTokens := splitTokens(norm)
	var (
		best      models.MovieRecord
		bestScore float64
	)
	for i := range records {
		titleNorm := strings.ToLower(records[i].Title)
		score := overlapScore(queryTokens, titleNorm)
		if strings.Contains(titleNorm, norm) {
			score += substringBonus
		}
		if score <= 0 {
			continue
		}
		if score > bestScore || (score == bestScore && records[i].ID < best.ID) {
			best = records[i]
			bestScore = score
		}
	}
	if bestScore <= 0 {
		return models.MovieRecord{}, models.ErrNotFound
	}
	return best, nil
}

// betterDuplicate reports whether candidate should replace current under
// the duplicate-title policy: highest vote count, then lowest id.
func betterDuplicate(candidate, current *models.MovieRecord) bool {
	if candidate.VoteCount != current.VoteCount {
		return candidate.VoteCount > current.VoteCount
	}
	return candidate.ID < current.ID
}

// overlapScore returns the fraction of query tokens present in the title.
func overlapScore(queryTokens []string, titleNorm string) float64 {
	if len(queryTokens) == 0 {
		return 0
	}
	titleSet := make(map[string]bool)
	for _, tok := range splitTokens(titleNorm) {
		titleSet[tok] = true
	}

	matched := 0
	for _, tok := range queryTokens {
		if titleSet[tok] {
			matched++
		}
	}
	return float64(matched) / float64(len(queryTokens))
}

// splitTokens splits on whitespace and punctuation without the stop-word
// filtering used for vectorization: resolver queries like "the matrix"
// must keep every token the user typed.
func splitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
}
