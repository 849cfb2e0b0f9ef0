// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

// Package engine implements the in-memory recommendation engine: the TF-IDF
// feature vectorizer, cosine similarity ranker, free-text title resolver,
// IMDB-style popularity ranker, and the title search index used for
// autocomplete.
//
// # Build Model
//
// The engine is built wholesale from a catalog snapshot and is immutable
// until the next build. A rebuild constructs the vector space model and the
// search index off to the side and swaps them under a write lock, so
// concurrent requests see either the old complete model or the new one,
// never a partially-constructed state.
//
// # Failure Model
//
// All failures are deterministic given the same input and catalog state and
// fall into exactly two kinds: models.ValidationError for bad caller
// parameters and models.ErrNotFound for lookups that resolve to nothing.
// There is no I/O inside the engine, so no transient error class exists.
package engine
