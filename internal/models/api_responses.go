// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

package models

import "time"

// APIResponse is the standardized response wrapper used by all HTTP
// endpoints. Status is "success" or "error"; Error is populated only for
// error responses.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"count": 10, "movies": [...]},
//	  "metadata": {"timestamp": "2026-08-25T12:00:00Z", "query_time_ms": 3}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {"code": "NOT_FOUND", "message": "movie 'xyzzy' not found"},
//	  "metadata": {"timestamp": "2026-08-25T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response metadata for observability: server timestamp,
// engine query time in milliseconds, and whether the result came from the
// stats cache.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is a structured error body.
//
// Error codes used by this service:
//   - VALIDATION_ERROR: invalid request parameter
//   - NOT_FOUND: title or id resolved to nothing
//   - INTERNAL_ERROR: unexpected failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// PopularResponse is the payload for GET /api/v1/popular.
type PopularResponse struct {
	Count  int             `json:"count"`
	Movies []RankedMovie   `json:"movies"`
	Stats  PopularityStats `json:"stats"`
}

// StatsResponse is the payload for GET /api/v1/stats.
type StatsResponse struct {
	Percentile float64         `json:"percentile"`
	Stats      PopularityStats `json:"stats"`
}

// SimilarResponse is the payload for POST /api/v1/similar/movies. Query is
// what the caller typed; MatchedMovie is the canonical title the resolver
// settled on, so clients can display "showing results for: X".
type SimilarResponse struct {
	Query           string         `json:"query"`
	MatchedMovie    string         `json:"matched_movie"`
	Count           int            `json:"count"`
	Recommendations []SimilarMovie `json:"recommendations"`
}

// SearchResponse is the payload for GET /api/v1/search.
type SearchResponse struct {
	Query   string        `json:"query"`
	Count   int           `json:"count"`
	Results []SearchMatch `json:"results"`
}
