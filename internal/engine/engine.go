// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

package engine

import (
	"sync"
	"time"

	"github.com/JayKCDev/movie-recommendation-system/internal/cache"
	"github.com/JayKCDev/movie-recommendation-system/internal/catalog"
	"github.com/JayKCDev/movie-recommendation-system/internal/logging"
	"github.com/JayKCDev/movie-recommendation-system/internal/metrics"
	"github.com/JayKCDev/movie-recommendation-system/internal/models"
)

// Config holds the engine tunables.
type Config struct {
	Vectorizer VectorizerConfig

	// StatsCacheTTL bounds how long memoized popularity statistics live.
	// The catalog is immutable between rebuilds, so this only matters as a
	// memory bound; rebuilds clear the cache outright.
	StatsCacheTTL time.Duration
}

// Engine is the serving facade over one built recommendation model. All
// methods are safe for concurrent use; Build swaps the model under a write
// lock while readers hold the read lock for the duration of one request.
type Engine struct {
	store *catalog.Store
	cfg   Config

	mu      sync.RWMutex
	records []models.MovieRecord
	model   *VectorSpaceModel
	search  *SearchIndex
	builtAt time.Time

	statsCache *cache.Cache
}

// BuildInfo describes the currently served model for health and stats
// reporting.
type BuildInfo struct {
	TotalMovies    int       `json:"total_movies"`
	VocabularySize int       `json:"vocabulary_size"`
	BuiltAt        time.Time `json:"built_at"`
}

// New creates an engine over the given store. The engine serves nothing
// until the first successful Build.
func New(store *catalog.Store, cfg Config) *Engine {
	ttl := cfg.StatsCacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Engine{
		store:      store,
		cfg:        cfg,
		statsCache: cache.New(ttl),
	}
}

// Build constructs the vector space model and search index from the store's
// current snapshot and swaps them in atomically. On failure the previously
// served model stays live. The stats cache is cleared only on success.
func (e *Engine) Build() error {
	start := time.Now()
	records := e.store.All()

	model, err := BuildVectorSpace(records, e.cfg.Vectorizer)
	if err != nil {
		return err
	}
	search := NewSearchIndex(records)

	e.mu.Lock()
	e.records = records
	e.model = model
	e.search = search
	e.builtAt = time.Now()
	e.mu.Unlock()

	e.statsCache.Clear()

	logging.Info().
		Int("movies", len(records)).
		Int("vocabulary", model.VocabularySize()).
		Dur("duration", time.Since(start)).
		Msg("Recommendation model built")
	return nil
}

// Ready reports whether a model has been built and can serve requests.
func (e *Engine) Ready() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.model != nil
}

// Info returns metadata about the served model, or false before first build.
func (e *Engine) Info() (BuildInfo, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.model == nil {
		return BuildInfo{}, false
	}
	return BuildInfo{
		TotalMovies:    len(e.records),
		VocabularySize: e.model.VocabularySize(),
		BuiltAt:        e.builtAt,
	}, true
}

// GetPopular returns the top movies by weighted rating at the given
// percentile, along with the statistics used to rank them.
func (e *Engine) GetPopular(limit int, percentile float64) ([]models.RankedMovie, models.PopularityStats, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.model == nil {
		return nil, models.PopularityStats{}, models.Validationf("recommendation model is not built yet")
	}
	return RankPopular(e.records, limit, percentile)
}

// GetStats returns the popularity statistics for a percentile, memoized per
// percentile until the next rebuild or TTL expiry. The boolean reports
// whether the result came from the cache.
func (e *Engine) GetStats(percentile float64) (models.PopularityStats, bool, error) {
	key := cache.GenerateKey("stats", percentile)
	if cached, ok := e.statsCache.Get(key); ok {
		if stats, ok := cached.(models.PopularityStats); ok {
			metrics.StatsCacheHits.Inc()
			return stats, true, nil
		}
	}
	metrics.StatsCacheMisses.Inc()

	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.model == nil {
		return models.PopularityStats{}, false, models.Validationf("recommendation model is not built yet")
	}
	stats, err := ComputeStats(e.records, percentile)
	if err != nil {
		return models.PopularityStats{}, false, err
	}
	e.statsCache.Set(key, stats)
	return stats, false, nil
}

// GetSimilar resolves the free-text title to one catalog movie and returns
// the n most similar movies by cosine similarity, never including the
// matched movie itself.
func (e *Engine) GetSimilar(title string, n int) (models.MovieRecord, []models.SimilarMovie, error) {
	if n < 1 {
		return models.MovieRecord{}, nil, models.Validationf("number of recommendations must be >= 1, got %d", n)
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.model == nil {
		return models.MovieRecord{}, nil, models.Validationf("recommendation model is not built yet")
	}

	matched, err := ResolveTitle(e.records, title)
	if err != nil {
		return models.MovieRecord{}, nil, err
	}

	query, err := e.model.VectorOf(matched.ID)
	if err != nil {
		return models.MovieRecord{}, nil, err
	}

	ranked, err := e.model.Rank(query, matched.ID, n)
	if err != nil {
		return models.MovieRecord{}, nil, err
	}

	// Hydrate from e.records, never the store: the store may already hold a
	// newer catalog mid-rebuild, while e.records and e.model are always the
	// same generation.
	out := make([]models.SimilarMovie, 0, len(ranked))
	for _, r := range ranked {
		rec := e.records[e.model.byID[r.MovieID]]
		out = append(out, models.SimilarMovie{
			ID:              rec.ID,
			Title:           rec.Title,
			Overview:        rec.Overview,
			ReleaseDate:     rec.ReleaseDate,
			VoteAverage:     rec.VoteAverage,
			VoteCount:       rec.VoteCount,
			SimilarityScore: r.Score,
		})
	}
	return matched, out, nil
}

// Search returns up to limit autocomplete matches for the query.
func (e *Engine) Search(query string, limit int) ([]models.SearchMatch, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.search == nil {
		return nil, models.Validationf("recommendation model is not built yet")
	}
	return e.search.Search(query, limit)
}

// CacheStats exposes the stats-cache counters for observability endpoints.
func (e *Engine) CacheStats() cache.Stats {
	return e.statsCache.GetStats()
}
