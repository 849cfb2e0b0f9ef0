// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

// Package api provides the HTTP surface of the recommender using the Chi
// router: the recommendation endpoints, health probes, an admin rebuild
// hook, and the Prometheus scrape endpoint.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router wires handlers and middleware into a Chi mux.
type Router struct {
	handler    *Handler
	middleware *Middleware
}

// NewRouter creates a router from a handler and middleware factory.
func NewRouter(handler *Handler, mw *Middleware) *Router {
	if mw == nil {
		mw = NewMiddleware(nil)
	}
	return &Router{handler: handler, middleware: mw}
}

// Setup configures all HTTP routes and returns the root handler.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.middleware.CORS())

	// Health endpoints stay outside the rate limiter so orchestrator
	// probes never get throttled.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// Recommendation endpoints.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.middleware.RateLimit())
		r.Use(PrometheusMetrics)

		r.Get("/popular", router.handler.Popular)
		r.Get("/stats", router.handler.Stats)
		r.Post("/similar/movies", router.handler.Similar)
		r.Get("/search", router.handler.Search)
	})

	// Admin endpoints. Rebuild is expensive, so it shares the same rate
	// limiter as the data endpoints.
	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(router.middleware.RateLimit())
		r.Use(PrometheusMetrics)

		r.Post("/rebuild", router.handler.Rebuild)
	})

	// Prometheus scrape endpoint.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
