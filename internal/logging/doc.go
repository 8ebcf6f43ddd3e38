// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

// Package logging provides the process-wide zerolog logger for Stringwise.
//
// A single global logger is configured once at startup from the logging
// section of the configuration and then used everywhere through the
// level helpers:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("fingerprint", fp).Msg("string analyzed")
//
// Request-scoped logging goes through Ctx, which attaches the request and
// correlation IDs carried by the context:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("cat fact unavailable")
//
// # Configuration
//
// Environment variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// # Suture integration
//
// NewSlogLogger returns an slog.Logger backed by zerolog so that the
// supervisor tree can hook sutureslog into the same output.
package logging
