// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package analysis

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// PalindromeMode selects how is_palindrome is computed.
type PalindromeMode string

const (
	// PalindromeStrict folds case, drops whitespace and compares with the reverse.
	PalindromeStrict PalindromeMode = "strict"

	// PalindromeLegacy reproduces the historical service, which compared a
	// boolean with a string and so never reported a palindrome.
	PalindromeLegacy PalindromeMode = "legacy"
)

// Properties are derived from a value once and never change.
// Every count is in Unicode code points. Derive expects valid UTF-8; each
// invalid byte would be counted as U+FFFD.
type Properties struct {
	Length             int            `json:"length"`
	IsPalindrome       bool           `json:"is_palindrome"`
	UniqueCharacters   int            `json:"unique_characters"`
	WordCount          int            `json:"word_count"`
	Fingerprint        string         `json:"fingerprint"`
	CharacterFrequency map[string]int `json:"character_frequency"`
}

// Derive computes the properties of value.
func Derive(value string, mode PalindromeMode) Properties {
	freq := make(map[string]int)
	for _, r := range value {
		freq[string(r)]++
	}

	return Properties{
		Length:             utf8.RuneCountInString(value),
		IsPalindrome:       isPalindrome(value, mode),
		UniqueCharacters:   len(freq),
		WordCount:          countWords(value),
		Fingerprint:        Fingerprint(value),
		CharacterFrequency: freq,
	}
}

func isPalindrome(value string, mode PalindromeMode) bool {
	if mode == PalindromeLegacy {
		return false
	}

	cleaned := []rune(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, foldCase(value)))

	for i, j := 0, len(cleaned)-1; i < j; i, j = i+1, j-1 {
		if cleaned[i] != cleaned[j] {
			return false
		}
	}
	return true
}

// countWords counts maximal runs of letters, apostrophes and hyphens that
// contain at least one letter. "don't" is one word; a lone "-" is none.
func countWords(value string) int {
	words := 0
	inToken, hasLetter := false, false

	for _, r := range value {
		if isWordRune(r) {
			inToken = true
			if unicode.IsLetter(r) {
				hasLetter = true
			}
			continue
		}
		if inToken && hasLetter {
			words++
		}
		inToken, hasLetter = false, false
	}
	if inToken && hasLetter {
		words++
	}
	return words
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || r == '\'' || r == '’' || r == '-'
}
