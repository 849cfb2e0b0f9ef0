// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/movierec/config.yaml",
	"/etc/movierec/config.yml",
}

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "CONFIG_PATH"

// moviesCSVURL is the published movies dataset, used when no catalog source
// is configured. Same dataset the frontend repository ships.
const moviesCSVURL = "https://media.githubusercontent.com/media/JayKCDev/movie_recommendation_system/refs/heads/main/data/movies.csv"

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Catalog: CatalogConfig{
			Source:        moviesCSVURL,
			FetchTimeout:  2 * time.Minute,
			ListSeparator: "|",
		},
		Engine: EngineConfig{
			// Field weights match the original model: overview, keywords,
			// and genres repeated 3x, title once.
			OverviewWeight: 3,
			KeywordWeight:  3,
			GenreWeight:    3,
			TitleWeight:    1,
			DropSingletons: true,
			StatsCacheTTL:  5 * time.Minute,
		},
		API: APIConfig{
			MaxPopularLimit:   100,
			MaxSimilarResults: 50,
			MaxSearchResults:  50,
			MinPercentile:     0.5,
			MaxPercentile:     0.99,
			DefaultPercentile: 0.9,
			DefaultLimit:      10,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults: built-in sensible defaults
//  2. Config file: optional YAML file (if one exists)
//  3. Environment variables: override any setting
//
// Precedence: ENV > file > defaults.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: optional config file
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	// SERVER_PORT -> server.port, CATALOG_SOURCE -> catalog.source, etc.
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// CORS origins arrive from env as a comma-separated string
	if origins := k.String("security.cors_origins"); origins != "" && strings.Contains(origins, ",") {
		parts := strings.Split(origins, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if err := k.Set("security.cors_origins", parts); err != nil {
			return nil, fmt.Errorf("failed to set cors origins: %w", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file, honoring CONFIG_PATH first.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// configSections are the known top-level config sections. An environment
// variable maps into a section by its first underscore-delimited token.
var configSections = map[string]bool{
	"server":   true,
	"catalog":  true,
	"engine":   true,
	"api":      true,
	"security": true,
	"logging":  true,
}

// envTransformFunc transforms environment variable names to koanf paths.
//
// Examples:
//   - SERVER_PORT -> server.port
//   - CATALOG_SOURCE -> catalog.source
//   - ENGINE_DROP_SINGLETONS -> engine.drop_singletons
//   - LOG_LEVEL -> logging.level (legacy alias)
//
// Variables that do not match a known section are ignored so unrelated
// environment variables cannot pollute the configuration.
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	// Legacy aliases kept from the original deployment
	switch key {
	case "log_level":
		return "logging.level"
	case "log_format":
		return "logging.format"
	case "port":
		return "server.port"
	case "movies_csv_url":
		return "catalog.source"
	}

	section, rest, found := strings.Cut(key, "_")
	if !found || !configSections[section] {
		return ""
	}
	return section + "." + rest
}
