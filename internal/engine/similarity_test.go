// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

package engine

import (
	"testing"

	"github.com/JayKCDev/movie-recommendation-system/internal/models"
)

func buildSimilarityModel(t *testing.T) *VectorSpaceModel {
	t.Helper()
	records := []models.MovieRecord{
		{ID: 1, Title: "Inception", Overview: "dream heist thriller", Genres: []string{"Science Fiction"}},
		{ID: 2, Title: "Paprika", Overview: "dream machine thriller", Genres: []string{"Science Fiction"}},
		{ID: 3, Title: "Heat", Overview: "bank heist crime", Genres: []string{"Crime"}},
		{ID: 4, Title: "Cats", Overview: "singing competition", Genres: []string{"Musical"}},
	}
	m, err := BuildVectorSpace(records, VectorizerConfig{DropSingletons: false})
	if err != nil {
		t.Fatalf("BuildVectorSpace failed: %v", err)
	}
	return m
}

func TestRankExcludesQueryMovie(t *testing.T) {
	m := buildSimilarityModel(t)
	query, _ := m.VectorOf(1)

	results, err := m.Rank(query, 1, 10)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	for _, r := range results {
		if r.MovieID == 1 {
			t.Error("query movie appeared in its own recommendations")
		}
	}
	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}
}

func TestRankScoresNonIncreasing(t *testing.T) {
	m := buildSimilarityModel(t)
	query, _ := m.VectorOf(1)

	results, err := m.Rank(query, 1, 10)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("scores increase at position %d: %v after %v", i, results[i].Score, results[i-1].Score)
		}
	}
}

func TestRankScoresWithinUnitInterval(t *testing.T) {
	m := buildSimilarityModel(t)
	query, _ := m.VectorOf(1)

	results, err := m.Rank(query, 1, 10)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	for _, r := range results {
		if r.Score < 0 || r.Score > 1 {
			t.Errorf("id %d: score %v outside [0, 1]", r.MovieID, r.Score)
		}
	}
}

func TestRankThematicNeighborFirst(t *testing.T) {
	m := buildSimilarityModel(t)
	query, _ := m.VectorOf(1)

	results, err := m.Rank(query, 1, 1)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	// Paprika shares "dream", "thriller", and the genre with Inception.
	if len(results) != 1 || results[0].MovieID != 2 {
		t.Fatalf("expected id 2 as nearest neighbor, got %+v", results)
	}
}

func TestRankTopKTruncation(t *testing.T) {
	m := buildSimilarityModel(t)
	query, _ := m.VectorOf(1)

	for _, topK := range []int{1, 2, 3, 50} {
		results, err := m.Rank(query, 1, topK)
		if err != nil {
			t.Fatalf("Rank(topK=%d) failed: %v", topK, err)
		}
		if len(results) > topK {
			t.Errorf("topK=%d returned %d results", topK, len(results))
		}
	}
}

func TestRankInvalidTopK(t *testing.T) {
	m := buildSimilarityModel(t)
	query, _ := m.VectorOf(1)

	for _, topK := range []int{0, -5} {
		if _, err := m.Rank(query, 1, topK); !models.IsValidation(err) {
			t.Errorf("expected ValidationError for topK %d, got %v", topK, err)
		}
	}
}

func TestRankEqualScoresOrderByID(t *testing.T) {
	// Two identical documents tie exactly against any query.
	records := []models.MovieRecord{
		{ID: 10, Title: "Query", Overview: "alpha beta"},
		{ID: 7, Title: "CloneB", Overview: "alpha beta"},
		{ID: 3, Title: "CloneA", Overview: "alpha beta"},
	}
	m, err := BuildVectorSpace(records, VectorizerConfig{DropSingletons: false})
	if err != nil {
		t.Fatalf("BuildVectorSpace failed: %v", err)
	}
	query, _ := m.VectorOf(10)

	results, err := m.Rank(query, 10, 10)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(results) != 2 || results[0].MovieID != 3 || results[1].MovieID != 7 {
		t.Errorf("expected ids [3, 7], got %+v", results)
	}
}
