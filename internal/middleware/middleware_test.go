// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/stringwise/internal/logging"
	"github.com/tomtom215/stringwise/internal/metrics"
)

func adapt(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"generated when absent", "", false},
		{"kept when well formed", "abc-123", true},
		{"replaced when too long", strings.Repeat("x", 200), false},
		{"replaced when it has control characters", "bad\nid", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ctxID, corrID string
			h := RequestID(func(w http.ResponseWriter, r *http.Request) {
				ctxID = logging.RequestIDFromContext(r.Context())
				corrID = logging.CorrelationIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/api/strings", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if got != ctxID {
				t.Errorf("header %q != context %q", got, ctxID)
			}
			if corrID == "" {
				t.Error("correlation ID missing from context")
			}
			if tt.keep {
				if got != tt.incoming {
					t.Errorf("request ID = %q, want %q", got, tt.incoming)
				}
				return
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Errorf("generated ID %q is not a UUID", got)
			}
		})
	}
}

func TestPrometheusMetrics_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(adapt(PrometheusMetrics))
	r.Get("/api/strings/{string_value}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, v := range []string{"hello", "world"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/strings/"+v, nil))
	}

	got := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/api/strings/{string_value}", "404"))
	if got != 2 {
		t.Errorf("requests for route pattern = %v, want 2", got)
	}
}

func TestPrometheusMetrics_Unmatched(t *testing.T) {
	h := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("PATCH", unmatchedRoute, "418"))
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodPatch, "/nowhere", nil))

	after := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("PATCH", unmatchedRoute, "418"))
	if after-before != 1 {
		t.Errorf("unmatched counter delta = %v, want 1", after-before)
	}
	if g := testutil.ToFloat64(metrics.APIActiveRequests); g != 0 {
		t.Errorf("active requests gauge = %v after completion", g)
	}
}

func TestStatusRecorder_FirstWriteWins(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &statusRecorder{ResponseWriter: rec, statusCode: http.StatusOK}

	_, _ = rw.Write([]byte("body"))
	rw.WriteHeader(http.StatusInternalServerError)

	if rw.statusCode != http.StatusOK {
		t.Errorf("statusCode = %d, want 200 once the body started", rw.statusCode)
	}
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	var buf bytes.Buffer
	prev := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() { logging.SetLogger(prev) })

	r := chi.NewRouter()
	r.Use(adapt(RequestLogger))
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	out := buf.String()
	if !strings.Contains(out, `"level":"error"`) || !strings.Contains(out, `"route":"/boom"`) || !strings.Contains(out, `"status":503`) {
		t.Errorf("log = %s", out)
	}
}
