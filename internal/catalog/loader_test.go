// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/JayKCDev/movie-recommendation-system/internal/models"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write temp CSV: %v", err)
	}
	return path
}

const validCSV = `id,title,overview,genres,keywords,release_date,vote_average,vote_count
1,Inception,A thief steals secrets,Action|Science Fiction,dream|heist,2010-07-16,8.8,30000
2,Cats,Singing cats compete,Musical,cats,2019-12-20,3.0,500.0
`

func TestLoadRecordsFromFile(t *testing.T) {
	path := writeTempCSV(t, validCSV)

	records, err := LoadRecords(context.Background(), LoaderConfig{Source: path, ListSeparator: "|"})
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.ID != 1 || first.Title != "Inception" {
		t.Errorf("unexpected first record: %+v", first)
	}
	if !reflect.DeepEqual(first.Genres, []string{"Action", "Science Fiction"}) {
		t.Errorf("genres = %v", first.Genres)
	}
	if !reflect.DeepEqual(first.Keywords, []string{"dream", "heist"}) {
		t.Errorf("keywords = %v", first.Keywords)
	}
	if first.VoteAverage != 8.8 || first.VoteCount != 30000 {
		t.Errorf("votes = %v/%d", first.VoteAverage, first.VoteCount)
	}

	// Float-serialized vote_count ("500.0") must parse.
	if records[1].VoteCount != 500 {
		t.Errorf("vote_count = %d, want 500", records[1].VoteCount)
	}
}

func TestLoadRecordsFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(validCSV))
	}))
	defer srv.Close()

	records, err := LoadRecords(context.Background(), LoaderConfig{Source: srv.URL, ListSeparator: "|"})
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 records, got %d", len(records))
	}
}

func TestLoadRecordsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := LoadRecords(context.Background(), LoaderConfig{Source: srv.URL}); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestLoadRecordsSkipsMalformedRows(t *testing.T) {
	csv := `id,title,vote_average,vote_count
1,Good Movie,7.5,1000
,Missing ID,5.0,10
abc,Bad ID,5.0,10
3,,5.0,10
4,Bad Average,eleven,10
5,Out Of Range,11.0,10
6,Negative Votes,5.0,-3
7,Also Good,6.0,200
`
	path := writeTempCSV(t, csv)

	records, err := LoadRecords(context.Background(), LoaderConfig{Source: path})
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 valid records, got %d: %+v", len(records), records)
	}
	if records[0].ID != 1 || records[1].ID != 7 {
		t.Errorf("unexpected surviving records: %+v", records)
	}
}

func TestLoadRecordsAllRowsMalformed(t *testing.T) {
	csv := `id,title
,NoID
abc,BadID
`
	path := writeTempCSV(t, csv)

	_, err := LoadRecords(context.Background(), LoaderConfig{Source: path})
	if !models.IsValidation(err) {
		t.Errorf("expected ValidationError when nothing loads, got %v", err)
	}
}

func TestLoadRecordsMissingRequiredColumns(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"no id column", "title,overview\nInception,whatever\n"},
		{"no title column", "id,overview\n1,whatever\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempCSV(t, tt.csv)
			if _, err := LoadRecords(context.Background(), LoaderConfig{Source: path}); !models.IsValidation(err) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestLoadRecordsCommaFallbackSeparator(t *testing.T) {
	csv := `id,title,genres
1,Inception,"Action, Science Fiction"
`
	path := writeTempCSV(t, csv)

	records, err := LoadRecords(context.Background(), LoaderConfig{Source: path, ListSeparator: "|"})
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}
	if !reflect.DeepEqual(records[0].Genres, []string{"Action", "Science Fiction"}) {
		t.Errorf("genres = %v, want comma-split fallback", records[0].Genres)
	}
}

func TestLoadRecordsMissingFile(t *testing.T) {
	_, err := LoadRecords(context.Background(), LoaderConfig{Source: "/nonexistent/movies.csv"})
	if err == nil {
		t.Error("expected error for missing file")
	}
}
