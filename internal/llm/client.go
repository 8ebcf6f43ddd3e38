// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/stringwise/internal/config"
	"github.com/tomtom215/stringwise/internal/logging"
	"github.com/tomtom215/stringwise/internal/metrics"
	extsync "github.com/tomtom215/stringwise/internal/sync"
)

// ErrUpstream reports that the model could not be reached or refused the request.
var ErrUpstream = errors.New("language model unavailable")

// Client generates a completion for a single prompt.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GuardedClient rate-limits and circuit-breaks another Client.
type GuardedClient struct {
	inner    Client
	provider string
	limiter  *rate.Limiter
	breaker  *extsync.Breaker
}

// NewGuardedClient wraps inner. requestsPerMinute must be positive.
func NewGuardedClient(inner Client, provider string, requestsPerMinute int) *GuardedClient {
	perSecond := rate.Limit(float64(requestsPerMinute) / 60.0)
	burst := requestsPerMinute / 10
	if burst < 1 {
		burst = 1
	}
	return &GuardedClient{
		inner:    inner,
		provider: provider,
		limiter:  rate.NewLimiter(perSecond, burst),
		breaker:  extsync.NewBreaker("llm-" + provider),
	}
}

// Generate waits for a rate-limit token and calls the wrapped client.
func (g *GuardedClient) Generate(ctx context.Context, prompt string) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		metrics.RecordLLMRequest(g.provider, "throttled", 0)
		return "", fmt.Errorf("%w: rate limit wait: %v", ErrUpstream, err)
	}

	start := time.Now()
	out, err := extsync.Execute(g.breaker, func() (string, error) {
		return g.inner.Generate(ctx, prompt)
	})
	switch {
	case extsync.IsRejection(err):
		metrics.RecordLLMRequest(g.provider, "rejected", 0)
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	case err != nil:
		metrics.RecordLLMRequest(g.provider, "error", time.Since(start))
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	metrics.RecordLLMRequest(g.provider, "success", time.Since(start))
	return out, nil
}

// New builds the configured provider wrapped in a GuardedClient.
func New(cfg *config.LLMConfig) (*GuardedClient, error) {
	var (
		inner  Client
		apiKey string
	)
	switch cfg.Provider {
	case config.ProviderGemini:
		inner = NewGeminiClient(cfg.GeminiURL, cfg.GeminiModel, cfg.GeminiAPIKey, cfg.Timeout)
		apiKey = cfg.GeminiAPIKey
	case config.ProviderOpenAI:
		inner = NewOpenAIClient(cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.OpenAIAPIKey, cfg.Timeout)
		apiKey = cfg.OpenAIAPIKey
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}

	if strings.TrimSpace(apiKey) == "" {
		logging.Warn().Str("provider", cfg.Provider).Msg("No API key configured; rephrase requests will be rejected upstream")
	}

	logging.Info().Str("provider", cfg.Provider).Int("requests_per_minute", cfg.RequestsPerMinute).Msg("LLM client initialized")
	return NewGuardedClient(inner, cfg.Provider, cfg.RequestsPerMinute), nil
}
