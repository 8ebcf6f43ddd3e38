// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/stringwise/internal/analysis"
	"github.com/tomtom215/stringwise/internal/database"
	"github.com/tomtom215/stringwise/internal/llm"
	extsync "github.com/tomtom215/stringwise/internal/sync"
)

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"line\nbreak", `line\x0abreak`},
		{"tab\there", `tab\x09here`},
		{"del\x7f", `del\x7f`},
		{"héllo", "héllo"},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"conflict", fmt.Errorf("insert: %w", analysis.ErrConflict), http.StatusConflict, ErrCodeConflict, msgStringExists},
		{"string not found", analysis.ErrNotFound, http.StatusNotFound, ErrCodeNotFound, msgStringNotFound},
		{"country not found", database.ErrCountryNotFound, http.StatusNotFound, ErrCodeNotFound, msgCountryNotFound},
		{"unparseable", analysis.ErrUnparseable, http.StatusBadRequest, ErrCodeUnparseableQuery, msgUnparseable},
		{"conflicting", analysis.ErrConflictingFilters, http.StatusUnprocessableEntity, ErrCodeConflictingFilters, msgConflictingFilters},
		{"invalid input", fmt.Errorf("%w: sort must be asc or desc", analysis.ErrInvalidInput), http.StatusBadRequest, ErrCodeValidation, "sort must be asc or desc"},
		{"source", &extsync.SourceError{Source: extsync.SourceExchangeRate, Err: errors.New("boom")}, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, msgSourceUnavailable},
		{"empty llm input", llm.ErrEmptyInput, http.StatusBadRequest, ErrCodeValidation, msgTextRequired},
		{"llm upstream", fmt.Errorf("%w: timeout", llm.ErrUpstream), http.StatusServiceUnavailable, ErrCodeServiceUnavailable, msgLLMUnavailable},
		{"unknown", context.DeadlineExceeded, http.StatusInternalServerError, ErrCodeInternal, msgInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			resp := assertError(t, rec, tt.status, tt.code)
			if resp.Message != tt.message {
				t.Errorf("message = %q, want %q", resp.Message, tt.message)
			}
		})
	}
}

func TestPathParam(t *testing.T) {
	var got string
	r := chi.NewRouter()
	r.Get("/strings/{string_value}", func(w http.ResponseWriter, req *http.Request) {
		got = pathParam(req, "string_value")
	})

	tests := []struct {
		target, want string
	}{
		{"/strings/hello%20world", "hello world"},
		{"/strings/a%2Fb", "a/b"},
		{"/strings/caf%C3%A9", "café"},
	}
	for _, tt := range tests {
		got = ""
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.target, nil))
		if got != tt.want {
			t.Errorf("pathParam(%s) = %q, want %q", tt.target, got, tt.want)
		}
	}
}
