// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

/*
Package middleware provides HTTP middleware shared by every API route.

Key Components:

  - RequestID: accepts or generates X-Request-ID and seeds the logging context
  - PrometheusMetrics: request count, latency, and in-flight gauge labelled by
    the chi route pattern, so /api/strings/{string_value} is one series rather
    than one per value
  - RequestLogger: one structured log line per request

The functions use the http.HandlerFunc shape; the router adapts them to chi's
func(http.Handler) http.Handler.
*/
package middleware
