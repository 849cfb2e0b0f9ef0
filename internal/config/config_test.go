// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("default port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Engine.OverviewWeight != 3 || cfg.Engine.TitleWeight != 1 {
		t.Errorf("default weights = %d/%d/%d/%d, want 3/3/3/1",
			cfg.Engine.OverviewWeight, cfg.Engine.KeywordWeight,
			cfg.Engine.GenreWeight, cfg.Engine.TitleWeight)
	}
	if cfg.API.DefaultPercentile != 0.9 {
		t.Errorf("default percentile = %v, want 0.9", cfg.API.DefaultPercentile)
	}
	if cfg.Catalog.Source == "" {
		t.Error("default catalog source is empty")
	}
	if cfg.Catalog.ListSeparator != "|" {
		t.Errorf("default list separator = %q, want |", cfg.Catalog.ListSeparator)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CATALOG_SOURCE", "/data/movies.csv")
	t.Setenv("ENGINE_DROP_SINGLETONS", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Catalog.Source != "/data/movies.csv" {
		t.Errorf("source = %q", cfg.Catalog.Source)
	}
	if cfg.Engine.DropSingletons {
		t.Error("drop_singletons still true after env override")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug (legacy alias)", cfg.Logging.Level)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: 8123\nengine:\n  genre_weight: 5\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8123 {
		t.Errorf("port = %d, want 8123 from file", cfg.Server.Port)
	}
	if cfg.Engine.GenreWeight != 5 {
		t.Errorf("genre weight = %d, want 5 from file", cfg.Engine.GenreWeight)
	}
	// Untouched settings keep their defaults.
	if cfg.Engine.OverviewWeight != 3 {
		t.Errorf("overview weight = %d, want default 3", cfg.Engine.OverviewWeight)
	}
}

func TestEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 8123\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("port = %d, env must beat file", cfg.Server.Port)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"SERVER_PORT", "server.port"},
		{"CATALOG_SOURCE", "catalog.source"},
		{"ENGINE_DROP_SINGLETONS", "engine.drop_singletons"},
		{"SECURITY_CORS_ORIGINS", "security.cors_origins"},
		{"LOG_LEVEL", "logging.level"},
		{"PORT", "server.port"},
		{"MOVIES_CSV_URL", "catalog.source"},
		{"HOME", ""},
		{"UNRELATED_VAR", ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.env); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config { return defaultConfig() }

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"missing source", func(c *Config) { c.Catalog.Source = "" }},
		{"negative weight", func(c *Config) { c.Engine.GenreWeight = -1 }},
		{"all weights zero", func(c *Config) {
			c.Engine.OverviewWeight = 0
			c.Engine.KeywordWeight = 0
			c.Engine.GenreWeight = 0
			c.Engine.TitleWeight = 0
		}},
		{"percentile bounds inverted", func(c *Config) {
			c.API.MinPercentile = 0.9
			c.API.MaxPercentile = 0.5
		}},
		{"default percentile outside bounds", func(c *Config) { c.API.DefaultPercentile = 0.1 }},
		{"default limit zero", func(c *Config) { c.API.DefaultLimit = 0 }},
		{"rate limit zero while enabled", func(c *Config) { c.Security.RateLimitReqs = 0 }},
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestFindConfigFileMissing(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")
	d := t.TempDir()
	cwd, _ := os.Getwd()
	if err := os.Chdir(d); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	if got := findConfigFile(); got != "" {
		t.Errorf("findConfigFile() = %q, want empty", got)
	}
}

func TestDefaultDurations(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("server timeout = %v", cfg.Server.Timeout)
	}
	if cfg.Engine.StatsCacheTTL != 5*time.Minute {
		t.Errorf("stats cache ttl = %v", cfg.Engine.StatsCacheTTL)
	}
}
