// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package api

import "net/http"

// Me returns the profile card with a fresh cat fact.
//
// @Summary Profile
// @Description Returns the first stored user (or the configured fallback) with a random cat fact. Limited per client IP.
// @Tags Profile
// @Produce json
// @Success 200 {object} models.ProfileResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, http.StatusOK, h.profile.Me(r.Context()))
}
