// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package api

import (
	"context"
	"time"

	"github.com/tomtom215/stringwise/internal/analysis"
	"github.com/tomtom215/stringwise/internal/blobstore"
	"github.com/tomtom215/stringwise/internal/cache"
	"github.com/tomtom215/stringwise/internal/config"
	"github.com/tomtom215/stringwise/internal/database"
	"github.com/tomtom215/stringwise/internal/logging"
	"github.com/tomtom215/stringwise/internal/models"
)

// CountryRefresher rebuilds the country table from the upstream sources.
type CountryRefresher interface {
	Refresh(ctx context.Context) (*models.RefreshResult, error)
}

// BlobReader serves generated artifacts such as the summary image.
type BlobReader interface {
	Get(ctx context.Context, key string) (*blobstore.Blob, error)
}

// Rephraser rewrites text in a kinder tone.
type Rephraser interface {
	Rephrase(ctx context.Context, text string) (string, error)
}

// ProfileProvider builds the /api/me response.
type ProfileProvider interface {
	Me(ctx context.Context) *models.ProfileResponse
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_strings.go: string analysis endpoints
//   - handlers_countries.go: country, status and summary image endpoints
//   - handlers_agent.go: Say-It-Nicer agent
//   - handlers_profile.go: /api/me
//   - handlers_health.go: liveness and readiness
type Handler struct {
	config    *config.Config
	db        *database.DB
	strings   *analysis.Service
	countries CountryRefresher
	blobs     BlobReader
	cache     *cache.Cache
	rephraser Rephraser
	profile   ProfileProvider
	startTime time.Time
}

// NewHandler creates the API handler. countryCache may be shared with the
// refresh path, which flushes it after every successful refresh.
func NewHandler(
	cfg *config.Config,
	db *database.DB,
	strings *analysis.Service,
	countries CountryRefresher,
	blobs BlobReader,
	countryCache *cache.Cache,
	rephraser Rephraser,
	profile ProfileProvider,
) *Handler {
	return &Handler{
		config:    cfg,
		db:        db,
		strings:   strings,
		countries: countries,
		blobs:     blobs,
		cache:     countryCache,
		rephraser: rephraser,
		profile:   profile,
		startTime: time.Now(),
	}
}

// ClearCache drops every cached country response.
func (h *Handler) ClearCache() {
	if h.cache != nil {
		h.cache.Flush()
		logging.Debug().Msg("Country response cache cleared")
	}
}
