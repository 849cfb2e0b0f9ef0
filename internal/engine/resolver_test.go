// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

package engine

import (
	"testing"

	"github.com/JayKCDev/movie-recommendation-system/internal/models"
)

func resolverCatalog() []models.MovieRecord {
	return []models.MovieRecord{
		{ID: 1, Title: "Inception", VoteCount: 30000},
		{ID: 2, Title: "The Dark Knight", VoteCount: 28000},
		{ID: 3, Title: "The Dark Knight Rises", VoteCount: 19000},
		{ID: 4, Title: "Batman Begins", VoteCount: 17000},
		{ID: 5, Title: "Cats", VoteCount: 500},
	}
}

func TestResolveTitleExactMatch(t *testing.T) {
	records := resolverCatalog()
	for _, rec := range records {
		got, err := ResolveTitle(records, rec.Title)
		if err != nil {
			t.Fatalf("ResolveTitle(%q) failed: %v", rec.Title, err)
		}
		if got.ID != rec.ID {
			t.Errorf("ResolveTitle(%q) = id %d, want %d", rec.Title, got.ID, rec.ID)
		}
	}
}

func TestResolveTitleCaseAndWhitespaceInsensitive(t *testing.T) {
	tests := []struct {
		query  string
		wantID int
	}{
		{"inception", 1},
		{"INCEPTION", 1},
		{"  Inception  ", 1},
		{"the dark knight", 2},
	}

	for _, tt := range tests {
		got, err := ResolveTitle(resolverCatalog(), tt.query)
		if err != nil {
			t.Fatalf("ResolveTitle(%q) failed: %v", tt.query, err)
		}
		if got.ID != tt.wantID {
			t.Errorf("ResolveTitle(%q) = id %d, want %d", tt.query, got.ID, tt.wantID)
		}
	}
}

func TestResolveTitleDuplicatePolicy(t *testing.T) {
	records := []models.MovieRecord{
		{ID: 20, Title: "Solaris", VoteCount: 100},
		{ID: 10, Title: "Solaris", VoteCount: 9000},
		{ID: 30, Title: "Solaris", VoteCount: 9000},
	}

	got, err := ResolveTitle(records, "solaris")
	if err != nil {
		t.Fatalf("ResolveTitle failed: %v", err)
	}
	// Highest vote count wins; equal counts resolve to the lowest id.
	if got.ID != 10 {
		t.Errorf("expected id 10, got %d", got.ID)
	}
}

func TestResolveTitlePartialMatch(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		wantID int
	}{
		{"single distinctive token", "batman", 4},
		{"equal overlap resolves to lowest id", "dark knight", 2},
		{"extra query token still resolves", "dark knight rises movie", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTitle(resolverCatalog(), tt.query)
			if err != nil {
				t.Fatalf("ResolveTitle(%q) failed: %v", tt.query, err)
			}
			if got.ID != tt.wantID {
				t.Errorf("ResolveTitle(%q) = id %d, want %d", tt.query, got.ID, tt.wantID)
			}
		})
	}
}

func TestResolveTitleNotFound(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"no token overlap", "xyzzy plugh"},
		{"empty query", ""},
		{"whitespace only", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveTitle(resolverCatalog(), tt.query)
			if err != models.ErrNotFound {
				t.Errorf("ResolveTitle(%q) error = %v, want ErrNotFound", tt.query, err)
			}
		})
	}
}

func TestResolveTitleEmptyCatalog(t *testing.T) {
	if _, err := ResolveTitle(nil, "anything"); err != models.ErrNotFound {
		t.Errorf("expected ErrNotFound on empty catalog, got %v", err)
	}
}
