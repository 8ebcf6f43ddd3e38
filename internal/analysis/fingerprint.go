// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package analysis

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/text/cases"
)

// Fingerprint returns the lowercase hex SHA-256 of the case-folded value.
// Case folding makes "Hello" and "HELLO" share an identity; for ASCII it is
// the same as lowercasing.
func Fingerprint(value string) string {
	sum := sha256.Sum256([]byte(foldCase(value)))
	return hex.EncodeToString(sum[:])
}

// foldCase allocates a fresh Caser per call; cases.Caser is not safe for
// concurrent use.
func foldCase(s string) string {
	return cases.Fold().String(s)
}
