// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package api

import (
	"strings"

	"github.com/tomtom215/stringwise/internal/analysis"
	"github.com/tomtom215/stringwise/internal/models"
)

// CreateStringRequest is the body of POST /api/strings.
type CreateStringRequest struct {
	Value string `json:"value" validate:"notblank"`
}

// FilterStringsRequest holds the query parameters of GET /api/strings.
// The query tags name the fields in validation messages.
type FilterStringsRequest struct {
	IsPalindrome      *bool   `query:"is_palindrome"`
	MinLength         *int    `query:"min_length" validate:"omitempty,gte=0"`
	MaxLength         *int    `query:"max_length" validate:"omitempty,gte=1"`
	WordCount         *int    `query:"word_count" validate:"omitempty,gte=0"`
	ContainsCharacter *string `query:"contains_character" validate:"omitempty,singlechar"`
	Search            *string `query:"search"`
	Sort              string  `query:"sort" validate:"omitempty,filtersort"`
}

// FilterSet converts the request into the analysis predicate set.
func (r *FilterStringsRequest) FilterSet() analysis.FilterSet {
	return analysis.FilterSet{
		IsPalindrome:      r.IsPalindrome,
		MinLength:         r.MinLength,
		MaxLength:         r.MaxLength,
		WordCount:         r.WordCount,
		ContainsCharacter: r.ContainsCharacter,
		Search:            r.Search,
		Sort:              analysis.SortOrder(strings.ToLower(r.Sort)),
	}
}

// NaturalLanguageRequest holds the query of the natural-language filter.
type NaturalLanguageRequest struct {
	Query string `query:"query" validate:"required"`
}

// CountryListRequest holds the query parameters of GET /api/countries.
type CountryListRequest struct {
	Region   string `query:"region"`
	Currency string `query:"currency"`
	Sort     string `query:"sort" validate:"omitempty,oneof=gdp_asc gdp_desc"`
}

// Filter returns the normalised filter used for the query and cache key.
func (r *CountryListRequest) Filter() models.CountryFilter {
	return models.CountryFilter{
		Region:   strings.ToLower(strings.TrimSpace(r.Region)),
		Currency: strings.ToUpper(strings.TrimSpace(r.Currency)),
		Sort:     r.Sort,
	}
}
