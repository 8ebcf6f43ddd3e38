// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

// Package models holds the data types shared between the database layer,
// the upstream clients and the HTTP handlers: countries, users and the
// JSON envelopes written by the API.
//
// String-analysis records live in package analysis, which owns their
// derivation rules.
package models
