// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

package engine

import (
	"reflect"
	"testing"

	"github.com/JayKCDev/movie-recommendation-system/internal/models"
)

func searchCatalog() []models.MovieRecord {
	return []models.MovieRecord{
		{ID: 1, Title: "Batman", ReleaseDate: "1989-06-23"},
		{ID: 2, Title: "The Bat Whisperer", ReleaseDate: "2004-01-01"},
		{ID: 3, Title: "Combat Zone", ReleaseDate: "1997-05-09"},
		{ID: 4, Title: "Cats", ReleaseDate: "2019-12-20"},
	}
}

func TestSearchPrefixBeforeSubstring(t *testing.T) {
	idx := NewSearchIndex(searchCatalog())

	results, err := idx.Search("bat", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	gotIDs := make([]int, len(results))
	for i, r := range results {
		gotIDs[i] = r.ID
	}
	// Prefix match first, then interior matches ordered by title length.
	want := []int{1, 3, 2}
	if !reflect.DeepEqual(gotIDs, want) {
		t.Errorf("Search(\"bat\") order = %v, want %v", gotIDs, want)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	idx := NewSearchIndex(searchCatalog())

	results, err := idx.Search("BATMAN", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != 1 {
		t.Errorf("expected only Batman, got %+v", results)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	idx := NewSearchIndex(searchCatalog())

	for _, q := range []string{"", "   "} {
		results, err := idx.Search(q, 10)
		if err != nil {
			t.Fatalf("Search(%q) failed: %v", q, err)
		}
		if len(results) != 0 {
			t.Errorf("Search(%q) returned %d results, want 0", q, len(results))
		}
	}
}

func TestSearchNoMatch(t *testing.T) {
	idx := NewSearchIndex(searchCatalog())

	results, err := idx.Search("xyzzy", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %+v", results)
	}
}

func TestSearchLimit(t *testing.T) {
	idx := NewSearchIndex(searchCatalog())

	results, err := idx.Search("bat", 1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != 1 {
		t.Errorf("expected only the best match, got %+v", results)
	}
}

func TestSearchInvalidLimit(t *testing.T) {
	idx := NewSearchIndex(searchCatalog())

	if _, err := idx.Search("bat", 0); !models.IsValidation(err) {
		t.Errorf("expected ValidationError for limit 0, got %v", err)
	}
}

func TestSearchIdempotent(t *testing.T) {
	idx := NewSearchIndex(searchCatalog())

	first, err := idx.Search("bat", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	second, err := idx.Search("bat", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated search differs: %+v vs %+v", first, second)
	}
}

func TestSearchCarriesReleaseDate(t *testing.T) {
	idx := NewSearchIndex(searchCatalog())

	results, err := idx.Search("cats", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].ReleaseDate != "2019-12-20" {
		t.Errorf("expected release date to carry through, got %+v", results)
	}
}
