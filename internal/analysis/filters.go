// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package analysis

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SortOrder orders a scan by created_at. The zero value keeps insertion order.
type SortOrder string

const (
	SortNone SortOrder = ""
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder accepts asc or desc in any case.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return SortNone, nil
	case "asc":
		return SortAsc, nil
	case "desc":
		return SortDesc, nil
	}
	return SortNone, fmt.Errorf("%w: sort must be asc or desc", ErrInvalidInput)
}

// FilterSet is a conjunction of optional predicates over a record.
// A nil field is not applied; the empty set matches every record.
type FilterSet struct {
	IsPalindrome      *bool   `json:"is_palindrome,omitempty"`
	MinLength         *int    `json:"min_length,omitempty"`
	MaxLength         *int    `json:"max_length,omitempty"`
	WordCount         *int    `json:"word_count,omitempty"`
	ContainsCharacter *string `json:"contains_character,omitempty"`

	// Search is a case-insensitive substring match on the value.
	Search *string `json:"search,omitempty"`

	Sort SortOrder `json:"sort,omitempty"`
}

// IsEmpty reports whether no predicate is set. Sort is not a predicate.
func (f FilterSet) IsEmpty() bool {
	return f.IsPalindrome == nil && f.MinLength == nil && f.MaxLength == nil &&
		f.WordCount == nil && f.ContainsCharacter == nil && f.Search == nil
}

// Validate rejects predicate values that are malformed rather than merely
// unsatisfiable.
func (f FilterSet) Validate() error {
	if f.MinLength != nil && *f.MinLength < 0 {
		return fmt.Errorf("%w: min_length must be greater than or equal to 0", ErrInvalidInput)
	}
	if f.MaxLength != nil && *f.MaxLength < 1 {
		return fmt.Errorf("%w: max_length must be greater than or equal to 1", ErrInvalidInput)
	}
	if f.WordCount != nil && *f.WordCount < 0 {
		return fmt.Errorf("%w: word_count must be greater than or equal to 0", ErrInvalidInput)
	}
	if f.ContainsCharacter != nil && utf8.RuneCountInString(*f.ContainsCharacter) != 1 {
		return fmt.Errorf("%w: contains_character must be exactly one character", ErrInvalidInput)
	}
	if f.Sort != SortNone && f.Sort != SortAsc && f.Sort != SortDesc {
		return fmt.Errorf("%w: sort must be asc or desc", ErrInvalidInput)
	}
	return nil
}

// Contradictory reports whether the length bounds exclude every value.
func (f FilterSet) Contradictory() bool {
	return f.MinLength != nil && f.MaxLength != nil && *f.MinLength > *f.MaxLength
}

// Matches evaluates the predicates against rec in process. Stores that push
// filtering down to a query engine must agree with it.
func (f FilterSet) Matches(rec *Record) bool {
	p := rec.Properties
	if f.IsPalindrome != nil && p.IsPalindrome != *f.IsPalindrome {
		return false
	}
	if f.MinLength != nil && p.Length < *f.MinLength {
		return false
	}
	if f.MaxLength != nil && p.Length > *f.MaxLength {
		return false
	}
	if f.WordCount != nil && p.WordCount != *f.WordCount {
		return false
	}
	if f.ContainsCharacter != nil && !strings.Contains(rec.Value, *f.ContainsCharacter) {
		return false
	}
	if f.Search != nil && !strings.Contains(strings.ToLower(rec.Value), strings.ToLower(*f.Search)) {
		return false
	}
	return true
}
