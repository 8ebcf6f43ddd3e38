// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package sync

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// RestCountry is one entry of the RestCountries v2 response.
type RestCountry struct {
	Name       string         `json:"name"`
	Capital    string         `json:"capital"`
	Region     string         `json:"region"`
	Population int64          `json:"population"`
	Flag       string         `json:"flag"`
	Currencies []RestCurrency `json:"currencies"`
}

// RestCurrency is a currency entry inside RestCountry.
type RestCurrency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// PrimaryCurrency returns the code of the first listed currency, or "".
func (c *RestCountry) PrimaryCurrency() string {
	if len(c.Currencies) == 0 {
		return ""
	}
	return strings.TrimSpace(c.Currencies[0].Code)
}

// RestCountriesClient fetches the country list.
type RestCountriesClient struct {
	url     string
	client  *http.Client
	breaker *Breaker
}

// NewRestCountriesClient creates a client for url.
func NewRestCountriesClient(url string, timeout time.Duration) *RestCountriesClient {
	return &RestCountriesClient{
		url:     url,
		client:  newHTTPClient(timeout),
		breaker: NewBreaker("restcountries-api"),
	}
}

// FetchCountries returns every country the source lists.
func (c *RestCountriesClient) FetchCountries(ctx context.Context) ([]RestCountry, error) {
	return Execute(c.breaker, func() ([]RestCountry, error) {
		var out []RestCountry
		if err := getJSON(ctx, c.client, c.url, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// ExchangeRateClient fetches USD exchange rates.
type ExchangeRateClient struct {
	url     string
	client  *http.Client
	breaker *Breaker
}

// NewExchangeRateClient creates a client for url.
func NewExchangeRateClient(url string, timeout time.Duration) *ExchangeRateClient {
	return &ExchangeRateClient{
		url:     url,
		client:  newHTTPClient(timeout),
		breaker: NewBreaker("exchange-rate-api"),
	}
}

type exchangeRateResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

// FetchRates returns rates keyed by currency code. A missing rates object
// yields an empty map.
func (c *ExchangeRateClient) FetchRates(ctx context.Context) (map[string]float64, error) {
	return Execute(c.breaker, func() (map[string]float64, error) {
		var resp exchangeRateResponse
		if err := getJSON(ctx, c.client, c.url, &resp); err != nil {
			return nil, err
		}
		if resp.Result == "error" {
			return nil, errors.New("exchange rate source reported an error")
		}
		if resp.Rates == nil {
			return map[string]float64{}, nil
		}
		return resp.Rates, nil
	})
}

// CatFactClient fetches a single fact.
type CatFactClient struct {
	url     string
	client  *http.Client
	breaker *Breaker
}

// NewCatFactClient creates a client for url.
func NewCatFactClient(url string, timeout time.Duration) *CatFactClient {
	return &CatFactClient{
		url:     url,
		client:  newHTTPClient(timeout),
		breaker: NewBreaker("catfact-api"),
	}
}

type catFactResponse struct {
	Fact   string `json:"fact"`
	Length int    `json:"length"`
}

// FetchFact returns one fact. An empty fact is an error.
func (c *CatFactClient) FetchFact(ctx context.Context) (string, error) {
	return Execute(c.breaker, func() (string, error) {
		var resp catFactResponse
		if err := getJSON(ctx, c.client, c.url, &resp); err != nil {
			return "", err
		}
		if strings.TrimSpace(resp.Fact) == "" {
			return "", fmt.Errorf("fact source returned no fact")
		}
		return resp.Fact, nil
	})
}
