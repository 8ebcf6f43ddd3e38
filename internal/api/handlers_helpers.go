// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/stringwise/internal/analysis"
	"github.com/tomtom215/stringwise/internal/database"
	"github.com/tomtom215/stringwise/internal/llm"
	"github.com/tomtom215/stringwise/internal/logging"
	"github.com/tomtom215/stringwise/internal/models"
	extsync "github.com/tomtom215/stringwise/internal/sync"
	"github.com/tomtom215/stringwise/internal/validation"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// sanitizeLogValue replaces control characters so client input cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// respondJSON writes v as JSON with the given status.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError writes the error envelope. err, when set, is logged but never
// sent to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	respondErrorDetails(w, r, status, code, message, "", err)
}

func respondErrorDetails(w http.ResponseWriter, r *http.Request, status int, code, message, details string, err error) {
	if err != nil {
		logger := logging.Ctx(r.Context())
		event := logger.Warn()
		if status >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.Str("code", code).Str("error", sanitizeLogValue(err.Error())).Msg("API error")
	}

	respondJSON(w, status, &models.ErrorResponse{
		Status:    models.StatusError,
		Message:   message,
		ErrorCode: code,
		Details:   details,
	})
}

// writeServiceError maps a domain error to its HTTP response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var sourceErr *extsync.SourceError
	switch {
	case errors.Is(err, analysis.ErrConflict):
		respondError(w, r, http.StatusConflict, ErrCodeConflict, msgStringExists, nil)
	case errors.Is(err, analysis.ErrNotFound):
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, msgStringNotFound, nil)
	case errors.Is(err, database.ErrCountryNotFound):
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, msgCountryNotFound, nil)
	case errors.Is(err, analysis.ErrUnparseable):
		respondError(w, r, http.StatusBadRequest, ErrCodeUnparseableQuery, msgUnparseable, nil)
	case errors.Is(err, analysis.ErrConflictingFilters):
		respondError(w, r, http.StatusUnprocessableEntity, ErrCodeConflictingFilters, msgConflictingFilters, nil)
	case errors.Is(err, analysis.ErrInvalidInput):
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, validationMessage(err), nil)
	case errors.As(err, &sourceErr):
		respondErrorDetails(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			msgSourceUnavailable, sourceErr.Details(), err)
	case errors.Is(err, llm.ErrEmptyInput):
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, msgTextRequired, nil)
	case errors.Is(err, llm.ErrUpstream):
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, msgLLMUnavailable, err)
	default:
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, msgInternal, err)
	}
}

// validationMessage strips the sentinel prefix from an ErrInvalidInput chain.
func validationMessage(err error) string {
	msg := err.Error()
	if _, rest, ok := strings.Cut(msg, analysis.ErrInvalidInput.Error()+": "); ok {
		return rest
	}
	return msg
}

// validateRequest runs go-playground/validator over v and writes a 400 on
// failure. It reports whether the request is valid.
func validateRequest(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	verr := validation.ValidateStruct(v)
	if verr == nil {
		return true
	}
	apiErr := verr.ToAPIError()
	respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
	return false
}

// decodeJSON reads at most maxBodyBytes of JSON into v.
func decodeJSON(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if len(body) == 0 {
		return errors.New("empty body")
	}
	return json.Unmarshal(body, v)
}

// pathParam returns a decoded chi URL parameter. chi matches on RawPath when
// the request has one, so escaped values still need unescaping.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// parseOptionalInt parses an optional integer query parameter.
func parseOptionalInt(q url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	return &n, nil
}

// parseOptionalBool accepts true/false and 1/0.
func parseOptionalBool(q url.Values, key string) (*bool, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	switch strings.ToLower(raw) {
	case "true", "1":
		v := true
		return &v, nil
	case "false", "0":
		v := false
		return &v, nil
	}
	return nil, fmt.Errorf("%s must be true or false", key)
}

// optionalString returns nil for an absent or empty query parameter.
func optionalString(q url.Values, key string) *string {
	if !q.Has(key) || q.Get(key) == "" {
		return nil
	}
	v := q.Get(key)
	return &v
}
