// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	// API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Circuit breakers
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Response cache
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of response cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of response cache misses",
		},
		[]string{"cache"},
	)

	// String analysis
	StringsAnalyzed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strings_analyzed_total",
			Help: "Total number of analyze requests by outcome",
		},
		[]string{"outcome"}, // created, conflict, error
	)

	NLQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strings_nl_queries_total",
			Help: "Total number of natural-language filter queries by outcome",
		},
		[]string{"outcome"}, // parsed, unparseable, conflicting
	)

	// Country refresh
	CountryRefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "country_refresh_duration_seconds",
			Help:    "Duration of a full country refresh in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	CountryRefreshErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "country_refresh_errors_total",
			Help: "Total number of failed country refreshes by stage",
		},
		[]string{"stage"}, // countries_api, exchange_api, database, summary
	)

	CountriesStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "country_refresh_countries",
			Help: "Number of countries written by the last successful refresh",
		},
	)

	CountryRefreshLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "country_refresh_last_success_timestamp",
			Help: "Unix timestamp of the last successful country refresh",
		},
	)

	// LLM
	LLMRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_requests_total",
			Help: "Total number of LLM rephrase requests",
		},
		[]string{"provider", "result"}, // success, empty, error, throttled
	)

	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_request_duration_seconds",
			Help:    "LLM request duration in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"provider"},
	)
)

// RecordDBQuery records the duration and, on failure, the error of one query.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		DBQueryErrors.WithLabelValues(operation, table, errorType).Inc()
	}
}

// RecordAPIRequest records one completed HTTP request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCountryRefresh records a refresh attempt. stage is ignored on success.
func RecordCountryRefresh(duration time.Duration, countries int, stage string, err error) {
	CountryRefreshDuration.Observe(duration.Seconds())
	if err != nil {
		CountryRefreshErrors.WithLabelValues(stage).Inc()
		return
	}
	CountriesStored.Set(float64(countries))
	CountryRefreshLastSuccess.Set(float64(time.Now().Unix()))
}

// RecordLLMRequest records one provider call.
func RecordLLMRequest(provider, result string, duration time.Duration) {
	LLMRequests.WithLabelValues(provider, result).Inc()
	if duration > 0 {
		LLMRequestDuration.WithLabelValues(provider).Observe(duration.Seconds())
	}
}
