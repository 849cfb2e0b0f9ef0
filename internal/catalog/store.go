// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

// Package catalog holds the immutable post-load snapshot of movie records
// and the CSV loader that produces them.
//
// The store is the single source of truth for catalog contents. A load
// builds the new snapshot off to the side and swaps one pointer, so
// concurrent readers always see either the old complete snapshot or the new
// one, never partial state.
package catalog

import (
	"sync/atomic"

	"github.com/JayKCDev/movie-recommendation-system/internal/models"
)

// Store holds the current catalog snapshot. The zero value is not usable;
// use NewStore.
type Store struct {
	snap atomic.Pointer[snapshot]
}

// snapshot is one immutable catalog generation.
type snapshot struct {
	records []models.MovieRecord
	byID    map[int]int // id -> index into records
}

var emptySnapshot = &snapshot{byID: map[int]int{}}

// NewStore creates an empty store.
func NewStore() *Store {
	s := &Store{}
	s.snap.Store(emptySnapshot)
	return s
}

// Load validates and ingests records, replacing any previous snapshot
// atomically. Record order is preserved and becomes the store's canonical
// ordering. Fails with a ValidationError on an empty input, a duplicate id,
// or an empty title; on failure the previous snapshot stays visible.
func (s *Store) Load(records []models.MovieRecord) error {
	if len(records) == 0 {
		return models.Validationf("catalog load requires at least one record")
	}

	next := &snapshot{
		records: make([]models.MovieRecord, len(records)),
		byID:    make(map[int]int, len(records)),
	}

	for i, rec := range records {
		if rec.Title == "" {
			return models.Validationf("record %d (id %d) has an empty title", i, rec.ID)
		}
		if prev, dup := next.byID[rec.ID]; dup {
			return models.Validationf("duplicate movie id %d at records %d and %d", rec.ID, prev, i)
		}
		next.records[i] = rec
		next.byID[rec.ID] = i
	}

	s.snap.Store(next)
	return nil
}

// Get returns the record for id, or ErrNotFound.
func (s *Store) Get(id int) (models.MovieRecord, error) {
	snap := s.snap.Load()
	idx, ok := snap.byID[id]
	if !ok {
		return models.MovieRecord{}, models.ErrNotFound
	}
	return snap.records[idx], nil
}

// All returns the full ordered record sequence. The returned slice is a
// copy; callers cannot mutate the snapshot through it.
func (s *Store) All() []models.MovieRecord {
	snap := s.snap.Load()
	out := make([]models.MovieRecord, len(snap.records))
	copy(out, snap.records)
	return out
}

// Len returns the number of records in the current snapshot.
func (s *Store) Len() int {
	return len(s.snap.Load().records)
}

// IndexOf returns the snapshot row index for id, matching the ordering of
// All(). Used by the vectorizer to keep a stable row-to-id mapping.
func (s *Store) IndexOf(id int) (int, bool) {
	idx, ok := s.snap.Load().byID[id]
	return idx, ok
}
