// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

// Package database is the DuckDB persistence layer.
//
// It owns three tables:
//
//   - string_analyses: analyzed strings, unique by value and by fingerprint,
//     with the derived properties stored both as typed columns (for filter
//     push-down) and as the full JSON document
//   - countries: the refreshed country dataset, unique by name
//   - users: the identity shown by the profile endpoint
//
// DB implements analysis.Store. Every query reports its latency and errors
// through metrics.RecordDBQuery.
//
// Use ":memory:" as the path for tests and throwaway instances.
package database
