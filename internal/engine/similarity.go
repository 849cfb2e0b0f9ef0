// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

package engine

import (
	"sort"

	"github.com/JayKCDev/movie-recommendation-system/internal/models"
)

// SimilarityResult pairs a movie id with its cosine similarity score.
// Produced transiently per request, never persisted.
type SimilarityResult struct {
	MovieID int
	Score   float64
}

// Rank scores every row in the model against the query vector and returns
// the topK highest-scoring results, excluding excludeID so a movie never
// recommends itself. Scores are non-increasing across the returned slice;
// equal scores order by ascending movie id for determinism. Requesting more
// results than remain after exclusion returns everything available.
//
// The scan is linear in catalog size per query, which is the intended
// design up to tens of thousands of entries.
func (m *VectorSpaceModel) Rank(query FeatureVector, excludeID, topK int) ([]SimilarityResult, error) {
	if topK < 1 {
		return nil, models.Validationf("top_k must be >= 1, got %d", topK)
	}

	results := make([]SimilarityResult, 0, len(m.rows))
	for i, row := range m.rows {
		id := m.rowIDs[i]
		if id == excludeID {
			continue
		}
		score := Dot(query, row)
		// Unit vectors with non-negative weights keep scores in [0, 1];
		// clamp floating-point drift at the boundary.
		if score > 1 {
			score = 1
		} else if score < 0 {
			score = 0
		}
		results = append(results, SimilarityResult{MovieID: id, Score: score})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].MovieID < results[j].MovieID
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}
