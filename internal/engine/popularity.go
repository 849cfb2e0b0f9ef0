// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

package engine

import (
	"sort"

	"github.com/JayKCDev/movie-recommendation-system/internal/models"
)

// ComputeStats derives the popularity statistics for the given percentile:
// the vote-count threshold, the qualified set size, and the mean rating
// over the qualified set. A degenerate percentile that qualifies nothing
// yields MeanVoteAverage 0 and QualifiedMovies 0; that is still a valid
// stats result (ranking with it is what fails).
//
// The threshold uses lower nearest-rank selection: the value at index
// floor(p * (n-1)) of the ascending vote counts. The threshold is therefore
// always an observed vote count, and it is monotonically non-decreasing in
// the percentile.
func ComputeStats(records []models.MovieRecord, percentile float64) (models.PopularityStats, error) {
	if percentile <= 0 || percentile >= 1 {
		return models.PopularityStats{}, models.Validationf(
			"percentile must be in (0, 1), got %v", percentile)
	}
	if len(records) == 0 {
		return models.PopularityStats{}, models.Validationf("catalog is empty")
	}

	counts := make([]int, len(records))
	for i := range records {
		counts[i] = records[i].VoteCount
	}
	sort.Ints(counts)
	threshold := float64(counts[int(percentile*float64(len(counts)-1))])

	var (
		qualified int
		ratingSum float64
	)
	for i := range records {
		if float64(records[i].VoteCount) >= threshold {
			qualified++
			ratingSum += records[i].VoteAverage
		}
	}

	stats := models.PopularityStats{
		TotalMovies:      len(records),
		QualifiedMovies:  qualified,
		MinVoteThreshold: threshold,
	}
	if qualified > 0 {
		stats.MeanVoteAverage = ratingSum / float64(qualified)
	}
	return stats, nil
}

// RankPopular returns the qualified set ranked by IMDB weighted rating,
// truncated to limit:
//
//	WR = (v / (v + m)) * R + (m / (v + m)) * C
//
// where v is the record's vote count, R its vote average, m the percentile
// vote threshold, and C the mean vote average over the qualified set.
// Unqualified records never appear in the output. Ties order by vote count
// descending, then id ascending.
func RankPopular(records []models.MovieRecord, limit int, percentile float64) ([]models.RankedMovie, models.PopularityStats, error) {
	if limit < 1 {
		return nil, models.PopularityStats{}, models.Validationf("limit must be >= 1, got %d", limit)
	}

	stats, err := ComputeStats(records, percentile)
	if err != nil {
		return nil, models.PopularityStats{}, err
	}
	if stats.QualifiedMovies == 0 {
		return nil, models.PopularityStats{}, models.Validationf(
			"no movies meet the vote threshold %v; weighted rating is undefined", stats.MinVoteThreshold)
	}

	m := stats.MinVoteThreshold
	c := stats.MeanVoteAverage

	ranked := make([]models.RankedMovie, 0, stats.QualifiedMovies)
	for i := range records {
		rec := &records[i]
		v := float64(rec.VoteCount)
		if v < m {
			continue
		}

		// v+m can only be zero when both are zero (threshold 0 and an
		// unvoted record); the blend then degenerates to the catalog mean.
		wr := c
		if v+m > 0 {
			wr = (v/(v+m))*rec.VoteAverage + (m/(v+m))*c
		}

		ranked = append(ranked, models.RankedMovie{
			ID:             rec.ID,
			Title:          rec.Title,
			Overview:       rec.Overview,
			ReleaseDate:    rec.ReleaseDate,
			VoteAverage:    rec.VoteAverage,
			VoteCount:      rec.VoteCount,
			WeightedRating: wr,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].WeightedRating != ranked[j].WeightedRating {
			return ranked[i].WeightedRating > ranked[j].WeightedRating
		}
		if ranked[i].VoteCount != ranked[j].VoteCount {
			return ranked[i].VoteCount > ranked[j].VoteCount
		}
		return ranked[i].ID < ranked[j].ID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, stats, nil
}
