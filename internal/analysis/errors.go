// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package analysis

import "errors"

var (
	// ErrConflict means a record with the same fingerprint already exists.
	ErrConflict = errors.New("string already exists")

	// ErrNotFound means no record has the requested fingerprint.
	ErrNotFound = errors.New("string not found")

	// ErrUnparseable means no interpreter rule matched the query.
	ErrUnparseable = errors.New("unable to parse natural language query")

	// ErrConflictingFilters means the interpreted filters can never match.
	ErrConflictingFilters = errors.New("query parsed but resulted in conflicting filters")

	// ErrInvalidInput means a filter or value failed validation.
	ErrInvalidInput = errors.New("invalid input")
)
