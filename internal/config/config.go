// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

// Package config defines the application configuration and loads it via
// Koanf v2 with layered sources: built-in defaults, an optional YAML config
// file, and environment variables (highest priority).
package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Engine   EngineConfig   `koanf:"engine"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the listen address.
	Host string `koanf:"host"`

	// Port is the HTTP listen port.
	Port int `koanf:"port"`

	// Timeout is the per-request read/write timeout.
	Timeout time.Duration `koanf:"timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// CatalogConfig describes where the movie catalog CSV comes from.
// Source may be a local file path or an http(s) URL; the loader treats both
// the same way the original dataset is published (GitHub raw CSV).
type CatalogConfig struct {
	// Source is the CSV path or URL. Required.
	Source string `koanf:"source"`

	// FetchTimeout bounds the HTTP fetch when Source is a URL.
	FetchTimeout time.Duration `koanf:"fetch_timeout"`

	// ListSeparator splits multi-valued cells (genres, keywords).
	ListSeparator string `koanf:"list_separator"`
}

// EngineConfig holds recommendation engine tunables.
type EngineConfig struct {
	// OverviewWeight, KeywordWeight, GenreWeight, and TitleWeight are the
	// term-frequency multipliers applied per source field when building
	// the combined document for each movie.
	OverviewWeight int `koanf:"overview_weight"`
	KeywordWeight  int `koanf:"keyword_weight"`
	GenreWeight    int `koanf:"genre_weight"`
	TitleWeight    int `koanf:"title_weight"`

	// DropSingletons removes terms that occur in only one document across
	// the whole catalog. Bounds vocabulary size; not a correctness knob.
	DropSingletons bool `koanf:"drop_singletons"`

	// StatsCacheTTL bounds how long popularity stats are memoized per
	// percentile. The catalog is immutable between rebuilds, so this only
	// caps memory held by rarely-used percentiles.
	StatsCacheTTL time.Duration `koanf:"stats_cache_ttl"`
}

// APIConfig holds transport-layer request bounds. The engine's own contract
// is wider (limit >= 1, 0 < percentile < 1); these are the narrower bounds
// exposed to clients.
type APIConfig struct {
	MaxPopularLimit   int     `koanf:"max_popular_limit"`
	MaxSimilarResults int     `koanf:"max_similar_results"`
	MaxSearchResults  int     `koanf:"max_search_results"`
	MinPercentile     float64 `koanf:"min_percentile"`
	MaxPercentile     float64 `koanf:"max_percentile"`
	DefaultPercentile float64 `koanf:"default_percentile"`
	DefaultLimit      int     `koanf:"default_limit"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for invalid values. It is called after
// all layers are merged, so it sees the effective configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port)
	}
	if c.Catalog.Source == "" {
		return fmt.Errorf("catalog.source is required")
	}
	if c.Engine.OverviewWeight < 0 || c.Engine.KeywordWeight < 0 ||
		c.Engine.GenreWeight < 0 || c.Engine.TitleWeight < 0 {
		return fmt.Errorf("engine field weights must be non-negative")
	}
	if c.Engine.OverviewWeight+c.Engine.KeywordWeight+c.Engine.GenreWeight+c.Engine.TitleWeight == 0 {
		return fmt.Errorf("at least one engine field weight must be positive")
	}
	if c.API.MinPercentile <= 0 || c.API.MaxPercentile >= 1 || c.API.MinPercentile > c.API.MaxPercentile {
		return fmt.Errorf("api percentile bounds must satisfy 0 < min <= max < 1, got [%v, %v]",
			c.API.MinPercentile, c.API.MaxPercentile)
	}
	if c.API.DefaultPercentile < c.API.MinPercentile || c.API.DefaultPercentile > c.API.MaxPercentile {
		return fmt.Errorf("api.default_percentile %v outside [%v, %v]",
			c.API.DefaultPercentile, c.API.MinPercentile, c.API.MaxPercentile)
	}
	if c.API.DefaultLimit < 1 {
		return fmt.Errorf("api.default_limit must be >= 1, got %d", c.API.DefaultLimit)
	}
	if !c.Security.RateLimitDisabled && c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("security.rate_limit_reqs must be >= 1 when rate limiting is enabled")
	}
	return nil
}
