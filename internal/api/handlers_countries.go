// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tomtom215/stringwise/internal/blobstore"
	"github.com/tomtom215/stringwise/internal/logging"
	"github.com/tomtom215/stringwise/internal/models"
)

// statusCacheKey holds the cached GET /api/status body.
const statusCacheKey = "status"

// RefreshCountries rebuilds the country table from the upstream APIs.
//
// @Summary Refresh countries
// @Description Fetches countries and USD exchange rates, recomputes estimated GDP, upserts by name and regenerates the summary image.
// @Tags Countries
// @Produce json
// @Success 200 {object} models.RefreshResult
// @Failure 503 {object} models.ErrorResponse "An upstream source is unavailable"
// @Failure 500 {object} models.ErrorResponse
// @Router /countries/refresh [post]
func (h *Handler) RefreshCountries(w http.ResponseWriter, r *http.Request) {
	result, err := h.countries.Refresh(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// ListCountries returns cached countries with optional filters.
//
// @Summary List countries
// @Tags Countries
// @Produce json
// @Param region query string false "Region, case-insensitive" example(Africa)
// @Param currency query string false "Currency code, case-insensitive" example(NGN)
// @Param sort query string false "Order by estimated GDP" Enums(gdp_asc, gdp_desc)
// @Success 200 {array} models.Country
// @Failure 400 {object} models.ErrorResponse
// @Router /countries [get]
func (h *Handler) ListCountries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := CountryListRequest{
		Region:   q.Get("region"),
		Currency: q.Get("currency"),
		Sort:     strings.ToLower(strings.TrimSpace(q.Get("sort"))),
	}
	if !validateRequest(w, r, &req) {
		return
	}

	filter := req.Filter()
	key := filter.CacheKey()
	if cached, ok := h.cacheGet(key); ok {
		respondJSON(w, http.StatusOK, cached)
		return
	}
	gen := h.cacheGeneration()

	countries, err := h.db.ListCountries(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if countries == nil {
		countries = []models.Country{}
	}
	h.cacheSet(key, countries, gen)
	respondJSON(w, http.StatusOK, countries)
}

// GetCountry returns one country by name.
//
// @Summary Get a country
// @Tags Countries
// @Produce json
// @Param name path string true "Country name, case-insensitive" example(Nigeria)
// @Success 200 {object} models.Country
// @Failure 404 {object} models.ErrorResponse
// @Router /countries/{name} [get]
func (h *Handler) GetCountry(w http.ResponseWriter, r *http.Request) {
	country, err := h.db.GetCountryByName(r.Context(), pathParam(r, "name"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, country)
}

// DeleteCountry removes a country by name.
//
// @Summary Delete a country
// @Tags Countries
// @Produce json
// @Param name path string true "Country name, case-insensitive"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /countries/{name} [delete]
func (h *Handler) DeleteCountry(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "name")
	if err := h.db.DeleteCountryByName(r.Context(), name); err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.ClearCache()
	logging.Ctx(r.Context()).Info().Str("country", sanitizeLogValue(name)).Msg("Country deleted")
	respondJSON(w, http.StatusOK, &models.MessageResponse{Message: msgCountryDeleted})
}

// CountryImage serves the summary PNG produced by the last refresh.
//
// @Summary Country summary image
// @Tags Countries
// @Produce png
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse
// @Router /countries/image [get]
func (h *Handler) CountryImage(w http.ResponseWriter, r *http.Request) {
	blob, err := h.blobs.Get(r.Context(), blobstore.SummaryKey)
	if errors.Is(err, blobstore.ErrNotFound) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, msgImageNotFound, nil)
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", blob.ContentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Last-Modified", blob.CreatedAt.UTC().Format(http.TimeFormat))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(blob.Data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write summary image")
	}
}

// Status reports the number of countries and the last refresh time.
//
// @Summary Country data status
// @Tags Countries
// @Produce json
// @Success 200 {object} models.CountryStatus
// @Router /status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	if cached, ok := h.cacheGet(statusCacheKey); ok {
		respondJSON(w, http.StatusOK, cached)
		return
	}
	gen := h.cacheGeneration()

	status, err := h.db.CountryStatus(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.cacheSet(statusCacheKey, status, gen)
	respondJSON(w, http.StatusOK, status)
}

func (h *Handler) cacheGet(key string) (any, bool) {
	if h.cache == nil {
		return nil, false
	}
	return h.cache.Get(key)
}

func (h *Handler) cacheGeneration() uint64 {
	if h.cache == nil {
		return 0
	}
	return h.cache.Generation()
}

// cacheSet drops v if the cache was flushed after gen was read, so a read
// that raced a refresh cannot repopulate stale rows.
func (h *Handler) cacheSet(key string, v any, gen uint64) {
	if h.cache != nil {
		h.cache.SetIfGeneration(key, v, gen)
	}
}
