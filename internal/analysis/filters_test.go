// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package analysis

import (
	"errors"
	"testing"
	"time"
)

func rec(value string) *Record {
	return NewRecord(value, PalindromeStrict, time.Unix(0, 0))
}

func TestFilterSet_Matches(t *testing.T) {
	tests := []struct {
		name    string
		filters FilterSet
		value   string
		want    bool
	}{
		{"empty matches all", FilterSet{}, "anything", true},
		{"palindrome true", FilterSet{IsPalindrome: ptrTo(true)}, "racecar", true},
		{"palindrome false", FilterSet{IsPalindrome: ptrTo(false)}, "racecar", false},
		{"min length inclusive", FilterSet{MinLength: ptrTo(5)}, "hello", true},
		{"min length excludes", FilterSet{MinLength: ptrTo(6)}, "hello", false},
		{"max length inclusive", FilterSet{MaxLength: ptrTo(5)}, "hello", true},
		{"exact length window", FilterSet{MinLength: ptrTo(5), MaxLength: ptrTo(5)}, "hello", true},
		{"word count", FilterSet{WordCount: ptrTo(2)}, "hello world", true},
		{"word count mismatch", FilterSet{WordCount: ptrTo(1)}, "hello world", false},
		{"contains is case sensitive", FilterSet{ContainsCharacter: ptrTo("H")}, "hello", false},
		{"contains", FilterSet{ContainsCharacter: ptrTo("e")}, "hello", true},
		{"search ignores case", FilterSet{Search: ptrTo("WOR")}, "hello world", true},
		{"search miss", FilterSet{Search: ptrTo("xyz")}, "hello world", false},
		{"conjunction", FilterSet{IsPalindrome: ptrTo(true), WordCount: ptrTo(1), MinLength: ptrTo(8)}, "racecar", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filters.Matches(rec(tt.value)); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestFilterSet_Validate(t *testing.T) {
	tests := []struct {
		name    string
		filters FilterSet
		wantErr bool
	}{
		{"empty", FilterSet{}, false},
		{"zero min length", FilterSet{MinLength: ptrTo(0), MaxLength: ptrTo(1)}, false},
		{"zero max length", FilterSet{MaxLength: ptrTo(0)}, true},
		{"negative min", FilterSet{MinLength: ptrTo(-1)}, true},
		{"negative word count", FilterSet{WordCount: ptrTo(-2)}, true},
		{"multi-char contains", FilterSet{ContainsCharacter: ptrTo("ab")}, true},
		{"empty contains", FilterSet{ContainsCharacter: ptrTo("")}, true},
		{"multibyte contains", FilterSet{ContainsCharacter: ptrTo("é")}, false},
		{"bad sort", FilterSet{Sort: SortOrder("up")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filters.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error %v is not ErrInvalidInput", err)
			}
		})
	}
}

func TestParseSortOrder(t *testing.T) {
	for in, want := range map[string]SortOrder{"": SortNone, "asc": SortAsc, "DESC": SortDesc} {
		got, err := ParseSortOrder(in)
		if err != nil || got != want {
			t.Errorf("ParseSortOrder(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseSortOrder("newest"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ParseSortOrder(newest) error = %v, want ErrInvalidInput", err)
	}
}

func TestFilterSet_IsEmpty(t *testing.T) {
	if !(FilterSet{Sort: SortDesc}).IsEmpty() {
		t.Error("sort alone should not count as a predicate")
	}
	if (FilterSet{Search: ptrTo("")}).IsEmpty() {
		t.Error("set search should count as a predicate")
	}
}
