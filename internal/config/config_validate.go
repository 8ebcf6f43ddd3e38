// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateDatabase,
		c.validateLogging,
		c.validateSecurity,
		c.validateAnalysis,
		c.validateCountries,
		c.validateLLM,
		c.validateCatFacts,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	switch c.Server.Environment {
	case "development", "production", "test":
	default:
		return fmt.Errorf("ENVIRONMENT must be development, production or test, got %q", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DUCKDB_PATH is required")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be >= 0")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 || c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be positive when rate limiting is enabled")
		}
	}
	if c.Security.ProfileRateLimitReqs < 1 || c.Security.ProfileRateLimitWindow <= 0 {
		return fmt.Errorf("PROFILE_RATE_LIMIT_REQUESTS and PROFILE_RATE_LIMIT_WINDOW must be positive")
	}
	if c.Server.Environment == "production" {
		for _, o := range c.Security.CORSOrigins {
			if o == "*" {
				return fmt.Errorf("CORS_ORIGINS must not contain * when ENVIRONMENT=production")
			}
		}
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	switch c.Analysis.PalindromeMode {
	case PalindromeStrict, PalindromeLegacy:
	default:
		return fmt.Errorf("ANALYSIS_PALINDROME_MODE must be %s or %s, got %q",
			PalindromeStrict, PalindromeLegacy, c.Analysis.PalindromeMode)
	}
	if c.Analysis.MaxValueLength < 1 {
		return fmt.Errorf("ANALYSIS_MAX_VALUE_LENGTH must be positive")
	}
	if c.Analysis.MinQueryLength < 0 {
		return fmt.Errorf("ANALYSIS_MIN_QUERY_LENGTH must be >= 0")
	}
	return nil
}

func (c *Config) validateCountries() error {
	if err := validateHTTPURL("COUNTRIES_API_URL", c.Countries.CountriesURL); err != nil {
		return err
	}
	if err := validateHTTPURL("EXCHANGE_API_URL", c.Countries.ExchangeURL); err != nil {
		return err
	}
	if c.Countries.Timeout <= 0 {
		return fmt.Errorf("COUNTRIES_TIMEOUT must be positive")
	}
	if c.Countries.RefreshInterval < 0 {
		return fmt.Errorf("COUNTRIES_REFRESH_INTERVAL must be >= 0")
	}
	if c.Countries.GDPMultiplierMin < 1 || c.Countries.GDPMultiplierMax < c.Countries.GDPMultiplierMin {
		return fmt.Errorf("COUNTRIES_GDP_MULTIPLIER_MIN must be >= 1 and <= COUNTRIES_GDP_MULTIPLIER_MAX")
	}
	return nil
}

func (c *Config) validateLLM() error {
	switch c.LLM.Provider {
	case ProviderGemini:
		if err := validateHTTPURL("GEMINI_URL", c.LLM.GeminiURL); err != nil {
			return err
		}
		if c.LLM.GeminiModel == "" {
			return fmt.Errorf("GEMINI_MODEL is required when LLM_PROVIDER=gemini")
		}
	case ProviderOpenAI:
		if err := validateHTTPURL("OPENAI_BASE_URL", c.LLM.OpenAIBaseURL); err != nil {
			return err
		}
		if c.LLM.OpenAIModel == "" {
			return fmt.Errorf("OPENAI_MODEL is required when LLM_PROVIDER=openai")
		}
	default:
		return fmt.Errorf("LLM_PROVIDER must be %s or %s, got %q", ProviderGemini, ProviderOpenAI, c.LLM.Provider)
	}
	if c.LLM.RequestsPerMinute < 1 {
		return fmt.Errorf("LLM_REQUESTS_PER_MINUTE must be positive")
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateCatFacts() error {
	if err := validateHTTPURL("CAT_FACTS_URL", c.CatFacts.URL); err != nil {
		return err
	}
	if c.CatFacts.Timeout <= 0 {
		return fmt.Errorf("CAT_FACTS_TIMEOUT must be positive")
	}
	return nil
}

func validateHTTPURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", name, raw)
	}
	return nil
}
