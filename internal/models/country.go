// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package models

import "time"

// Country is one row of the countries table.
type Country struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Capital         *string   `json:"capital"`
	Region          *string   `json:"region"`
	Population      int64     `json:"population"`
	CurrencyCode    *string   `json:"currency_code"`
	ExchangeRate    *float64  `json:"exchange_rate"`
	EstimatedGDP    float64   `json:"estimated_gdp"`
	FlagURL         *string   `json:"flag_url"`
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
}

// Country list orderings.
const (
	SortGDPAsc  = "gdp_asc"
	SortGDPDesc = "gdp_desc"
)

// CountryFilter narrows GET /api/countries. Empty fields are not applied.
type CountryFilter struct {
	Region   string
	Currency string
	Sort     string
}

// CacheKey is a stable key for the response cache.
func (f CountryFilter) CacheKey() string {
	return "countries|" + f.Region + "|" + f.Currency + "|" + f.Sort
}

// CountryStatus summarises the table for GET /api/status.
type CountryStatus struct {
	TotalCountries  int        `json:"total_countries"`
	LastRefreshedAt *time.Time `json:"last_refreshed_at"`
}

// RefreshResult is returned by POST /api/countries/refresh.
type RefreshResult struct {
	Message         string    `json:"message"`
	TotalCountries  int       `json:"total_countries"`
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
}
