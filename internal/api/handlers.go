// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/JayKCDev/movie-recommendation-system/internal/catalog"
	"github.com/JayKCDev/movie-recommendation-system/internal/config"
	"github.com/JayKCDev/movie-recommendation-system/internal/engine"
	"github.com/JayKCDev/movie-recommendation-system/internal/logging"
	"github.com/JayKCDev/movie-recommendation-system/internal/metrics"
	"github.com/JayKCDev/movie-recommendation-system/internal/models"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across two concerns in this file: the
// recommendation endpoints (popular, stats, similar, search) and the
// operational endpoints (health, rebuild).
type Handler struct {
	store     *catalog.Store
	engine    *engine.Engine
	config    *config.Config
	startTime time.Time

	// rebuildMu serializes store load + engine build so overlapping rebuild
	// requests cannot leave the store and model on different generations.
	rebuildMu sync.Mutex
}

// NewHandler creates a new API handler.
func NewHandler(store *catalog.Store, eng *engine.Engine, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		engine:    eng,
		config:    cfg,
		startTime: time.Now(),
	}
}

// PopularRequest bounds the query parameters of GET /api/v1/popular.
type PopularRequest struct {
	Limit      int     `validate:"min=1,max=100"`
	Percentile float64 `validate:"gte=0.5,lte=0.99"`
}

// Popular handles GET /api/v1/popular?limit=N&percentile=P.
func (h *Handler) Popular(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := PopularRequest{
		Limit:      getIntParam(r, "limit", h.config.API.DefaultLimit),
		Percentile: getFloatParam(r, "percentile", h.config.API.DefaultPercentile),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	movies, stats, err := h.engine.GetPopular(req.Limit, req.Percentile)
	if err != nil {
		respondEngineError(w, err, "no movies available")
		return
	}

	respondSuccess(w, http.StatusOK, &models.PopularResponse{
		Count:  len(movies),
		Movies: movies,
		Stats:  stats,
	}, start)
}

// StatsRequest bounds the query parameters of GET /api/v1/stats.
type StatsRequest struct {
	Percentile float64 `validate:"gte=0.5,lte=0.99"`
}

// Stats handles GET /api/v1/stats?percentile=P.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := StatsRequest{
		Percentile: getFloatParam(r, "percentile", h.config.API.DefaultPercentile),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	stats, cached, err := h.engine.GetStats(req.Percentile)
	if err != nil {
		respondEngineError(w, err, "no movies available")
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: &models.StatsResponse{
			Percentile: req.Percentile,
			Stats:      stats,
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			Cached:      cached,
		},
	})
}

// SimilarRequest is the JSON body of POST /api/v1/similar/movies.
type SimilarRequest struct {
	Title string `json:"movie_title" validate:"required,min=1,max=500"`
	N     int    `json:"num_recommendations" validate:"min=1,max=50"`
}

// defaultSimilarResults is used when the body omits the count.
const defaultSimilarResults = 10

// Similar handles POST /api/v1/similar/movies.
func (h *Handler) Similar(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req SimilarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request body must be valid JSON", nil)
		return
	}
	if req.N == 0 {
		req.N = defaultSimilarResults
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	matched, recs, err := h.engine.GetSimilar(req.Title, req.N)
	if err != nil {
		respondEngineError(w, err, "no movie matched title '"+sanitizeLogValue(req.Title)+"'")
		return
	}

	respondSuccess(w, http.StatusOK, &models.SimilarResponse{
		Query:           req.Title,
		MatchedMovie:    matched.Title,
		Count:           len(recs),
		Recommendations: recs,
	}, start)
}

// SearchRequest bounds the query parameters of GET /api/v1/search.
type SearchRequest struct {
	Query string `validate:"max=500"`
	Limit int    `validate:"min=1,max=50"`
}

// Search handles GET /api/v1/search?query=...&limit=N.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := SearchRequest{
		Query: r.URL.Query().Get("query"),
		Limit: getIntParam(r, "limit", 10),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	results, err := h.engine.Search(req.Query, req.Limit)
	if err != nil {
		respondEngineError(w, err, "no matching titles")
		return
	}

	respondSuccess(w, http.StatusOK, &models.SearchResponse{
		Query:   req.Query,
		Count:   len(results),
		Results: results,
	}, start)
}

// HealthLive handles GET /api/v1/health/live. Process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]interface{}{"status": "alive"}, time.Now())
}

// HealthReady handles GET /api/v1/health/ready. Ready only once the model
// has been built.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !h.engine.Ready() {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", "recommendation model is not built yet", nil)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{"status": "ready"}, time.Now())
}

// Health handles GET /api/v1/health with full service detail.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	payload := map[string]interface{}{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(h.startTime).Seconds()),
		"catalog_movies": h.store.Len(),
		"cache":          h.engine.CacheStats(),
	}
	if info, ok := h.engine.Info(); ok {
		payload["model"] = info
	} else {
		payload["status"] = "degraded"
	}

	respondSuccess(w, http.StatusOK, payload, start)
}

// Rebuild handles POST /api/v1/admin/rebuild: re-fetch the catalog source,
// swap the snapshot, and rebuild the model. On any failure the previously
// served snapshot and model stay live.
func (h *Handler) Rebuild(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	records, err := catalog.LoadRecords(r.Context(), catalog.LoaderConfig{
		Source:        h.config.Catalog.Source,
		FetchTimeout:  h.config.Catalog.FetchTimeout,
		ListSeparator: h.config.Catalog.ListSeparator,
	})
	if err != nil {
		metrics.RecordModelBuild(time.Since(start), 0, 0, err)
		respondEngineError(w, err, "catalog source is empty")
		return
	}

	h.rebuildMu.Lock()
	defer h.rebuildMu.Unlock()

	if err := h.store.Load(records); err != nil {
		metrics.RecordModelBuild(time.Since(start), 0, 0, err)
		respondEngineError(w, err, "catalog source is empty")
		return
	}

	if err := h.engine.Build(); err != nil {
		metrics.RecordModelBuild(time.Since(start), 0, 0, err)
		respondEngineError(w, err, "catalog source is empty")
		return
	}

	info, _ := h.engine.Info()
	metrics.RecordModelBuild(time.Since(start), info.TotalMovies, info.VocabularySize, nil)
	logging.Info().
		Int("movies", info.TotalMovies).
		Dur("duration", time.Since(start)).
		Msg("Catalog rebuilt via admin endpoint")

	respondSuccess(w, http.StatusOK, info, start)
}
