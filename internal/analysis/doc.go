// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

// Package analysis implements the string-analysis engine.
//
// A submitted value is fingerprinted (SHA-256 of its case-folded form),
// its properties are derived once, and the resulting Record is persisted
// through a Store. Records can then be fetched or deleted by value, or
// listed through a FilterSet built from query parameters or from a small
// rule-based natural-language interpreter.
//
// # Identity
//
// Two values that differ only in letter case share a fingerprint and are
// therefore the same record: "Racecar" conflicts with "racecar", and a
// lookup for "RACECAR" finds whichever was stored first.
//
// # Errors
//
// Operations return the sentinels ErrConflict, ErrNotFound, ErrUnparseable,
// ErrConflictingFilters and ErrInvalidInput (possibly wrapped); match them
// with errors.Is.
package analysis
