// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package config

import "time"

// Config is the root configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Logging   LoggingConfig   `koanf:"logging"`
	Security  SecurityConfig  `koanf:"security"`
	Analysis  AnalysisConfig  `koanf:"analysis"`
	Countries CountriesConfig `koanf:"countries"`
	Summary   SummaryConfig   `koanf:"summary"`
	LLM       LLMConfig       `koanf:"llm"`
	CatFacts  CatFactsConfig  `koanf:"catfacts"`
	Profile   ProfileConfig   `koanf:"profile"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development or production
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	Path      string `koanf:"path"` // ":memory:" for an in-process database
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = runtime.NumCPU()
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// SecurityConfig holds request throttling and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`

	// ProfileRateLimitReqs throttles GET /api/me per client IP.
	ProfileRateLimitReqs   int           `koanf:"profile_rate_limit_reqs"`
	ProfileRateLimitWindow time.Duration `koanf:"profile_rate_limit_window"`
}

// Palindrome evaluation modes.
const (
	PalindromeStrict = "strict"
	PalindromeLegacy = "legacy"
)

// AnalysisConfig controls the string-analysis engine.
type AnalysisConfig struct {
	PalindromeMode string `koanf:"palindrome_mode"`
	MaxValueLength int    `koanf:"max_value_length"`
	MinQueryLength int    `koanf:"min_query_length"`
}

// CountriesConfig controls the country refresh pipeline.
type CountriesConfig struct {
	CountriesURL string        `koanf:"countries_url"`
	ExchangeURL  string        `koanf:"exchange_url"`
	Timeout      time.Duration `koanf:"timeout"`

	// RefreshInterval enables a scheduled refresh when > 0.
	RefreshInterval  time.Duration `koanf:"refresh_interval"`
	RefreshOnStartup bool          `koanf:"refresh_on_startup"`

	GDPMultiplierMin int `koanf:"gdp_multiplier_min"`
	GDPMultiplierMax int `koanf:"gdp_multiplier_max"`

	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// SummaryConfig locates the badger store that keeps the rendered summary image.
type SummaryConfig struct {
	StorePath string `koanf:"store_path"` // empty = in-memory
}

// LLM providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// LLMConfig selects and configures the rephrasing model.
type LLMConfig struct {
	Provider string `koanf:"provider"`

	GeminiAPIKey string `koanf:"gemini_api_key"`
	GeminiURL    string `koanf:"gemini_url"`
	GeminiModel  string `koanf:"gemini_model"`

	OpenAIAPIKey  string `koanf:"openai_api_key"`
	OpenAIBaseURL string `koanf:"openai_base_url"`
	OpenAIModel   string `koanf:"openai_model"`

	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerMinute int           `koanf:"requests_per_minute"`
}

// CatFactsConfig configures the fact source used by /api/me.
type CatFactsConfig struct {
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
}

// ProfileConfig is the identity returned by /api/me when the users table is empty.
type ProfileConfig struct {
	Email string `koanf:"email"`
	Name  string `koanf:"name"`
	Stack string `koanf:"stack"`
}

// Load is the entry point used by main.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
