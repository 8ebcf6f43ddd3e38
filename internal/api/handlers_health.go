// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/stringwise/internal/models"
)

// readyTimeout bounds the database ping of the readiness probe.
const readyTimeout = 2 * time.Second

// HealthLive reports that the process is serving requests.
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.HealthResponse{
		Status:        "ok",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady reports whether DuckDB answers a ping.
//
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if h.db == nil || h.db.Ping(ctx) != nil {
		respondJSON(w, http.StatusServiceUnavailable, &models.HealthResponse{
			Status:   "not_ready",
			Database: "unavailable",
		})
		return
	}
	respondJSON(w, http.StatusOK, &models.HealthResponse{
		Status:        "ready",
		Database:      "ok",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}
