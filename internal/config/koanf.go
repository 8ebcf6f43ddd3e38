// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

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

// DefaultConfigPaths are searched in order; the first existing file wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/stringwise/config.yaml",
	"/etc/stringwise/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Database: DatabaseConfig{
			Path:      "/data/stringwise.duckdb",
			MaxMemory: "1GB",
			Threads:   0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Security: SecurityConfig{
			RateLimitReqs:          100,
			RateLimitWindow:        time.Minute,
			CORSOrigins:            []string{"*"},
			ProfileRateLimitReqs:   5,
			ProfileRateLimitWindow: time.Minute,
		},
		Analysis: AnalysisConfig{
			PalindromeMode: PalindromeStrict,
			MaxValueLength: 255,
			MinQueryLength: 3,
		},
		Countries: CountriesConfig{
			CountriesURL:     "https://restcountries.com/v2/all?fields=name,capital,region,population,flag,currencies",
			ExchangeURL:      "https://open.er-api.com/v6/latest/USD",
			Timeout:          30 * time.Second,
			RefreshInterval:  0, // manual refresh only
			GDPMultiplierMin: 1000,
			GDPMultiplierMax: 2000,
			CacheTTL:         5 * time.Minute,
		},
		Summary: SummaryConfig{
			StorePath: "/data/summary",
		},
		LLM: LLMConfig{
			Provider:          ProviderGemini,
			GeminiURL:         "https://generativelanguage.googleapis.com/v1beta/models",
			GeminiModel:       "gemini-2.5-flash",
			OpenAIBaseURL:     "https://generativelanguage.googleapis.com/v1beta/openai/",
			OpenAIModel:       "gemini-2.5-flash",
			Timeout:           30 * time.Second,
			RequestsPerMinute: 60,
		},
		CatFacts: CatFactsConfig{
			URL:     "https://catfact.ninja/fact",
			Timeout: 10 * time.Second,
		},
		Profile: ProfileConfig{
			Email: "aeadeosun@yahoo.com",
			Name:  "Abiodun Adeosun",
			Stack: "LAMP",
		},
	}
}

// LoadWithKoanf loads defaults, then the optional YAML file, then mapped
// environment variables, and validates the result.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
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

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// sliceConfigPaths arrive from the environment as comma-separated strings.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		raw, ok := k.Get(path).(string)
		if !ok || raw == "" {
			continue
		}
		parts := make([]string, 0, 4)
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) == 0 {
			continue
		}
		if err := k.Set(path, parts); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// Database
	"duckdb_path":       "database.path",
	"duckdb_max_memory": "database.max_memory",
	"duckdb_threads":    "database.threads",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Security
	"rate_limit_requests":         "security.rate_limit_reqs",
	"rate_limit_window":           "security.rate_limit_window",
	"disable_rate_limit":          "security.rate_limit_disabled",
	"cors_origins":                "security.cors_origins",
	"profile_rate_limit_requests": "security.profile_rate_limit_reqs",
	"profile_rate_limit_window":   "security.profile_rate_limit_window",

	// String analysis
	"analysis_palindrome_mode":  "analysis.palindrome_mode",
	"analysis_max_value_length": "analysis.max_value_length",
	"analysis_min_query_length": "analysis.min_query_length",

	// Countries
	"countries_api_url":            "countries.countries_url",
	"exchange_api_url":             "countries.exchange_url",
	"countries_timeout":            "countries.timeout",
	"countries_refresh_interval":   "countries.refresh_interval",
	"countries_refresh_on_startup": "countries.refresh_on_startup",
	"countries_gdp_multiplier_min": "countries.gdp_multiplier_min",
	"countries_gdp_multiplier_max": "countries.gdp_multiplier_max",
	"countries_cache_ttl":          "countries.cache_ttl",

	// Summary image store
	"summary_store_path": "summary.store_path",

	// LLM
	"llm_provider":            "llm.provider",
	"gemini_api_key":          "llm.gemini_api_key",
	"gemini_url":              "llm.gemini_url",
	"gemini_model":            "llm.gemini_model",
	"openai_api_key":          "llm.openai_api_key",
	"openai_base_url":         "llm.openai_base_url",
	"openai_model":            "llm.openai_model",
	"llm_timeout":             "llm.timeout",
	"llm_requests_per_minute": "llm.requests_per_minute",

	// Cat facts
	"cat_facts_url":     "catfacts.url",
	"cat_facts_timeout": "catfacts.timeout",

	// Profile fallback
	"profile_email": "profile.email",
	"profile_name":  "profile.name",
	"profile_stack": "profile.stack",
}

// envTransformFunc returns "" for unmapped variables so koanf skips them.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
