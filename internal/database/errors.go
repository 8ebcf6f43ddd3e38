// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package database

import (
	"errors"
	"io"
	"strings"

	"github.com/tomtom215/stringwise/internal/logging"
)

var (
	// ErrCountryNotFound is returned when no country matches the name.
	ErrCountryNotFound = errors.New("country not found")

	// ErrUserNotFound is returned when the users table is empty.
	ErrUserNotFound = errors.New("user not found")
)

// isUniqueConstraintError matches DuckDB's unique and primary key violations.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

// closeWithLog closes a resource and logs the error, if any.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly is for error paths where a Close failure is not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
