// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package sync

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/stringwise/internal/blobstore"
	"github.com/tomtom215/stringwise/internal/config"
	"github.com/tomtom215/stringwise/internal/logging"
	"github.com/tomtom215/stringwise/internal/metrics"
	"github.com/tomtom215/stringwise/internal/models"
	"github.com/tomtom215/stringwise/internal/summary"
)

// Source names reported when a fetch fails.
const (
	SourceRestCountries = "RestCountries API"
	SourceExchangeRate  = "Exchange Rate API"
)

// ErrSourceUnavailable matches any *SourceError.
var ErrSourceUnavailable = errors.New("external data source unavailable")

// SourceError reports which upstream failed during a refresh.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("fetch from %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrSourceUnavailable) hold.
func (e *SourceError) Is(target error) bool { return target == ErrSourceUnavailable }

// Details is the client-facing explanation.
func (e *SourceError) Details() string {
	return "Could not fetch data from " + e.Source
}

// CountrySource lists countries.
type CountrySource interface {
	FetchCountries(ctx context.Context) ([]RestCountry, error)
}

// RateSource lists exchange rates.
type RateSource interface {
	FetchRates(ctx context.Context) (map[string]float64, error)
}

// CountryStore is the persistence the refresh needs.
type CountryStore interface {
	UpsertCountries(ctx context.Context, countries []models.Country) error
	CountryStatus(ctx context.Context) (*models.CountryStatus, error)
	TopCountriesByGDP(ctx context.Context, n int) ([]models.Country, error)
}

// BlobWriter stores the rendered summary.
type BlobWriter interface {
	Put(ctx context.Context, key string, blob *blobstore.Blob) error
}

// Flusher drops cached responses derived from the countries table.
type Flusher interface {
	Flush()
}

// CountryManager runs the country refresh pipeline.
type CountryManager struct {
	countries CountrySource
	rates     RateSource
	store     CountryStore
	blobs     BlobWriter
	cache     Flusher

	multiplier func() float64
	now        func() time.Time

	flight singleflight.Group
}

// NewCountryManager wires a manager. cache may be nil.
func NewCountryManager(cfg *config.CountriesConfig, countries CountrySource, rates RateSource,
	store CountryStore, blobs BlobWriter, cache Flusher) *CountryManager {
	lo, hi := cfg.GDPMultiplierMin, cfg.GDPMultiplierMax
	return &CountryManager{
		countries: countries,
		rates:     rates,
		store:     store,
		blobs:     blobs,
		cache:     cache,
		multiplier: func() float64 {
			return float64(lo + rand.IntN(hi-lo+1))
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

// SetMultiplier replaces the random GDP multiplier. Tests use it to pin results.
func (m *CountryManager) SetMultiplier(fn func() float64) {
	m.multiplier = fn
}

// refreshTimeout bounds one shared refresh run.
const refreshTimeout = 2 * time.Minute

// Refresh fetches both sources and rewrites the countries table. Calls made
// while a refresh is running share its result. The run is detached from the
// caller that started it, so a cancelled caller stops waiting without
// aborting the refresh for the others.
func (m *CountryManager) Refresh(ctx context.Context) (*models.RefreshResult, error) {
	ch := m.flight.DoChan("refresh", func() (any, error) {
		runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()
		return m.refresh(runCtx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			logging.Debug().Msg("Joined in-flight country refresh")
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*models.RefreshResult), nil
	}
}

func (m *CountryManager) refresh(ctx context.Context) (*models.RefreshResult, error) {
	start := time.Now()
	logger := logging.Ctx(ctx).With().Str("component", "country-refresh").Logger()

	fail := func(stage string, err error) (*models.RefreshResult, error) {
		metrics.RecordCountryRefresh(time.Since(start), 0, stage, err)
		logger.Error().Err(err).Str("stage", stage).Msg("Country refresh failed")
		return nil, err
	}

	restCountries, err := m.countries.FetchCountries(ctx)
	if err != nil {
		return fail("fetch_countries", &SourceError{Source: SourceRestCountries, Err: err})
	}
	rates, err := m.rates.FetchRates(ctx)
	if err != nil {
		return fail("fetch_rates", &SourceError{Source: SourceExchangeRate, Err: err})
	}

	refreshedAt := m.now()
	rows := BuildCountries(restCountries, rates, m.multiplier, refreshedAt)

	if err := m.store.UpsertCountries(ctx, rows); err != nil {
		return fail("store", fmt.Errorf("store countries: %w", err))
	}
	if m.cache != nil {
		m.cache.Flush()
	}

	status, err := m.store.CountryStatus(ctx)
	if err != nil {
		return fail("status", fmt.Errorf("read country status: %w", err))
	}

	if err := m.renderSummary(ctx, status.TotalCountries, refreshedAt); err != nil {
		return fail("summary", err)
	}

	metrics.RecordCountryRefresh(time.Since(start), status.TotalCountries, "", nil)
	logger.Info().
		Int("fetched", len(restCountries)).
		Int("total_countries", status.TotalCountries).
		Dur("duration", time.Since(start)).
		Msg("Countries refreshed")

	return &models.RefreshResult{
		Message:         "Countries refreshed successfully",
		TotalCountries:  status.TotalCountries,
		LastRefreshedAt: refreshedAt,
	}, nil
}

func (m *CountryManager) renderSummary(ctx context.Context, total int, refreshedAt time.Time) error {
	top, err := m.store.TopCountriesByGDP(ctx, summary.TopN)
	if err != nil {
		return fmt.Errorf("read top countries: %w", err)
	}
	png, err := summary.Render(total, top, refreshedAt)
	if err != nil {
		return err
	}
	if err := m.blobs.Put(ctx, blobstore.SummaryKey, &blobstore.Blob{
		Data:        png,
		ContentType: summary.ContentType,
		CreatedAt:   refreshedAt,
	}); err != nil {
		return fmt.Errorf("store summary image: %w", err)
	}
	return nil
}

// BuildCountries joins the country list with exchange rates. Entries without a
// name are skipped. A country without a usable rate gets an estimated GDP of 0.
func BuildCountries(src []RestCountry, rates map[string]float64, multiplier func() float64, at time.Time) []models.Country {
	out := make([]models.Country, 0, len(src))
	for i := range src {
		rc := &src[i]
		if rc.Name == "" {
			continue
		}

		c := models.Country{
			Name:            rc.Name,
			Capital:         optional(rc.Capital),
			Region:          optional(rc.Region),
			Population:      rc.Population,
			FlagURL:         optional(rc.Flag),
			LastRefreshedAt: at,
		}

		if code := rc.PrimaryCurrency(); code != "" {
			c.CurrencyCode = &code
			if rate, ok := rates[code]; ok {
				r := rate
				c.ExchangeRate = &r
				if rate > 0 {
					c.EstimatedGDP = float64(rc.Population) * multiplier() / rate
				}
			}
		}
		out = append(out, c)
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
