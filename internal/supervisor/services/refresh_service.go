// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package services

import (
	"context"
	"time"

	"github.com/tomtom215/stringwise/internal/logging"
	"github.com/tomtom215/stringwise/internal/models"
)

// defaultRefreshTimeout bounds one scheduled refresh.
const defaultRefreshTimeout = 2 * time.Minute

// Refresher rebuilds the country table. Satisfied by *sync.CountryManager.
type Refresher interface {
	Refresh(ctx context.Context) (*models.RefreshResult, error)
}

// CountryRefreshService refreshes country data on startup and then every
// interval. A failed refresh is logged and retried at the next tick; it never
// ends Serve, so an unreachable upstream cannot push suture into backoff.
type CountryRefreshService struct {
	refresher Refresher
	interval  time.Duration
	onStartup bool
	timeout   time.Duration
}

// NewCountryRefreshService creates the service. interval <= 0 disables the
// schedule; onStartup still runs one refresh.
func NewCountryRefreshService(refresher Refresher, interval time.Duration, onStartup bool) *CountryRefreshService {
	return &CountryRefreshService{
		refresher: refresher,
		interval:  interval,
		onStartup: onStartup,
		timeout:   defaultRefreshTimeout,
	}
}

// Serve implements suture.Service.
func (s *CountryRefreshService) Serve(ctx context.Context) error {
	if s.onStartup {
		s.runOnce(ctx, "startup")
	}

	if s.interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.runOnce(ctx, "scheduled")
		}
	}
}

func (s *CountryRefreshService) runOnce(parent context.Context, trigger string) {
	ctx, cancel := context.WithTimeout(parent, s.timeout)
	defer cancel()

	result, err := s.refresher.Refresh(ctx)
	if err != nil {
		if parent.Err() != nil {
			return // shutting down
		}
		logging.Warn().Err(err).Str("trigger", trigger).Msg("Country refresh failed")
		return
	}
	logging.Info().
		Str("trigger", trigger).
		Int("total_countries", result.TotalCountries).
		Msg("Country refresh completed")
}

// String names the service in supervisor logs.
func (s *CountryRefreshService) String() string {
	return "country-refresh"
}
