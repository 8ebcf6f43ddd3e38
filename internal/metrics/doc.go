// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

// Package metrics declares the Prometheus collectors exported on /metrics.
//
// All collectors are registered with the default registry through promauto
// at package init, so callers only use the Record* helpers or the exported
// vectors directly.
//
// Families:
//   - api_*: request count, latency and in-flight requests
//   - duckdb_*: query latency and errors by operation and table
//   - circuit_breaker_*: state and outcomes of each upstream breaker
//   - cache_*: response cache efficiency
//   - strings_*: analysis engine activity
//   - country_refresh_*: the refresh pipeline
//   - llm_*: rephrasing requests
package metrics
