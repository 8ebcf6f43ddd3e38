// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/tomtom215/stringwise/internal/llm"
	"github.com/tomtom215/stringwise/internal/models"
)

func TestTelexAgent(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"plain text", `{"text":"you are late again"}`},
		{"nested text", `{"text":{"kind":"text","text":"you are late again"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, nil)
			ts.rephraser.out = "Could you let me know when to expect you?"

			rec := ts.do(t, http.MethodPost, "/api/telex/agent", tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			if ts.rephraser.got != "you are late again" {
				t.Errorf("rephraser input = %q", ts.rephraser.got)
			}
			got := decodeBody[models.AgentResponse](t, rec)
			want := models.NewSayItNicerResponse("you are late again", ts.rephraser.out)
			if got != want {
				t.Errorf("response = %+v, want %+v", got, want)
			}
		})
	}
}

func TestTelexAgent_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
		code   string
	}{
		{"empty body", "", nil, http.StatusBadRequest, ErrCodeValidation},
		{"missing text", `{"message":"hi"}`, nil, http.StatusBadRequest, ErrCodeValidation},
		{"blank text", `{"text":"   "}`, nil, http.StatusBadRequest, ErrCodeValidation},
		{"number text", `{"text":7}`, nil, http.StatusBadRequest, ErrCodeValidation},
		{"llm down", `{"text":"hi"}`, fmt.Errorf("%w: gemini: 500", llm.ErrUpstream), http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, nil)
			ts.rephraser.err = tt.err
			assertError(t, ts.do(t, http.MethodPost, "/api/telex/agent", tt.body), tt.status, tt.code)
		})
	}
}

func TestMe(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodGet, "/api/me", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "no-store" {
		t.Errorf("Cache-Control = %q", cc)
	}
	got := decodeBody[models.ProfileResponse](t, rec)
	if got.User.Email != "dev@example.com" || got.Fact != "Cats sleep a lot." {
		t.Errorf("profile = %+v", got)
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil)

	live := decodeBody[models.HealthResponse](t, ts.do(t, http.MethodGet, "/api/health/live", ""))
	if live.Status != "ok" {
		t.Errorf("live = %+v", live)
	}

	rec := ts.do(t, http.MethodGet, "/api/health/ready", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("ready status = %d", rec.Code)
	}
	if ready := decodeBody[models.HealthResponse](t, rec); ready.Status != "ready" || ready.Database != "ok" {
		t.Errorf("ready = %+v", ready)
	}

	if err := ts.db.Close(); err != nil {
		t.Fatal(err)
	}
	rec = ts.do(t, http.MethodGet, "/api/health/ready", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("ready after close = %d, want 503", rec.Code)
	}
}
