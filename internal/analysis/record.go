// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package analysis

import "time"

// Record is one analyzed string. Its ID is the fingerprint.
type Record struct {
	ID         string     `json:"id"`
	Value      string     `json:"value"`
	Properties Properties `json:"properties"`
	CreatedAt  time.Time  `json:"created_at"`
}

// NewRecord derives a record for value stamped with createdAt.
func NewRecord(value string, mode PalindromeMode, createdAt time.Time) *Record {
	props := Derive(value, mode)
	return &Record{
		ID:         props.Fingerprint,
		Value:      value,
		Properties: props,
		CreatedAt:  createdAt.UTC(),
	}
}
