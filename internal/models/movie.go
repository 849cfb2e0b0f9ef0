// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

// Package models defines the shared data types for the movie recommender:
// catalog records, ranked results, and the API response envelope.
package models

// MovieRecord is one immutable catalog entry. Records are validated and
// frozen by the catalog store at load time; nothing mutates them afterwards.
type MovieRecord struct {
	// ID is the unique, process-stable movie identifier.
	ID int `json:"id"`

	// Title is the canonical display title. Never empty after validation.
	Title string `json:"title"`

	// Overview is the plot synopsis. May be empty.
	Overview string `json:"overview"`

	// Genres is a list of genre names, each treated as an atomic token.
	Genres []string `json:"genres,omitempty"`

	// Keywords is a list of tag phrases, each treated as an atomic token.
	Keywords []string `json:"keywords,omitempty"`

	// ReleaseDate is the release date in YYYY-MM-DD form, or empty.
	ReleaseDate string `json:"release_date"`

	// VoteAverage is the mean user rating (0-10).
	VoteAverage float64 `json:"vote_average"`

	// VoteCount is the number of votes behind VoteAverage.
	VoteCount int `json:"vote_count"`
}

// RankedMovie is a catalog entry annotated with its IMDB-style weighted
// rating, produced by the popularity ranker.
type RankedMovie struct {
	ID             int     `json:"id"`
	Title          string  `json:"title"`
	Overview       string  `json:"overview"`
	ReleaseDate    string  `json:"release_date"`
	VoteAverage    float64 `json:"vote_average"`
	VoteCount      int     `json:"vote_count"`
	WeightedRating float64 `json:"weighted_rating"`
}

// SimilarMovie is a catalog entry annotated with its cosine similarity to
// the query movie (0 = no shared signal, 1 = identical direction).
type SimilarMovie struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	Overview        string  `json:"overview"`
	ReleaseDate     string  `json:"release_date"`
	VoteAverage     float64 `json:"vote_average"`
	VoteCount       int     `json:"vote_count"`
	SimilarityScore float64 `json:"similarity_score"`
}

// SearchMatch is a lightweight title-search row used for autocomplete.
type SearchMatch struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
}

// PopularityStats describes the weighted-rating computation for a given
// vote-count percentile. Derived from the immutable catalog snapshot, so it
// is safe to memoize per percentile between rebuilds.
type PopularityStats struct {
	// TotalMovies is the full catalog size.
	TotalMovies int `json:"total_movies"`

	// QualifiedMovies is the number of records meeting the vote threshold.
	QualifiedMovies int `json:"qualified_movies"`

	// MinVoteThreshold is the vote count at the requested percentile.
	MinVoteThreshold float64 `json:"min_vote_threshold"`

	// MeanVoteAverage is the mean rating over the qualified set only.
	MeanVoteAverage float64 `json:"mean_vote_average"`
}
