// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package analysis

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	longerThanRe   = regexp.MustCompile(`longer than (\d+)`)
	shorterThanRe  = regexp.MustCompile(`shorter than (\d+)`)
	firstVowelRe   = regexp.MustCompile(`contain.*first vowel`)
	containsLetter = regexp.MustCompile(`strings containing the letter (\w)`)
)

// Interpret translates an English query into a FilterSet. Rules are applied
// in order and later rules overwrite earlier ones. It returns ErrUnparseable
// when no rule matches.
func Interpret(query string) (FilterSet, error) {
	q := strings.ToLower(strings.TrimSpace(query))

	var (
		fs      FilterSet
		matched bool
	)

	if strings.Contains(q, "palindromic") {
		fs.IsPalindrome = ptrTo(true)
		matched = true
	}

	if strings.Contains(q, "single word") {
		fs.WordCount = ptrTo(1)
		matched = true
	}

	if m := longerThanRe.FindStringSubmatch(q); m != nil {
		n, err := parseLength(m[1])
		if err != nil {
			return FilterSet{}, err
		}
		fs.MinLength = ptrTo(n + 1)
		matched = true
	}

	if m := shorterThanRe.FindStringSubmatch(q); m != nil {
		n, err := parseLength(m[1])
		if err != nil {
			return FilterSet{}, err
		}
		fs.MaxLength = ptrTo(n - 1)
		matched = true
	}

	if firstVowelRe.MatchString(q) {
		fs.ContainsCharacter = ptrTo("a")
		matched = true
	}

	if m := containsLetter.FindStringSubmatch(q); m != nil {
		fs.ContainsCharacter = ptrTo(strings.ToLower(m[1]))
		matched = true
	}

	if !matched {
		return FilterSet{}, ErrUnparseable
	}
	if fs.Contradictory() {
		return fs, ErrConflictingFilters
	}
	return fs, nil
}

// maxQueryLength bounds the N of "longer/shorter than N" so N+1 cannot wrap.
const maxQueryLength = 1 << 30

// parseLength reads the digits captured by a length rule.
func parseLength(digits string) (int, error) {
	n, err := strconv.Atoi(digits)
	if err != nil || n > maxQueryLength {
		return 0, fmt.Errorf("%w: length %q out of range", ErrInvalidInput, digits)
	}
	return n, nil
}

func ptrTo[T any](v T) *T { return &v }
