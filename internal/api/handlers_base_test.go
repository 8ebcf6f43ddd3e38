// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/stringwise/internal/analysis"
	"github.com/tomtom215/stringwise/internal/blobstore"
	"github.com/tomtom215/stringwise/internal/cache"
	"github.com/tomtom215/stringwise/internal/config"
	"github.com/tomtom215/stringwise/internal/database"
	"github.com/tomtom215/stringwise/internal/models"
)

// testDBSemaphore serializes DuckDB creation across parallel tests.
var testDBSemaphore = make(chan struct{}, 1)

type stubRefresher struct {
	result *models.RefreshResult
	err    error
	calls  int
}

func (s *stubRefresher) Refresh(ctx context.Context) (*models.RefreshResult, error) {
	s.calls++
	return s.result, s.err
}

type stubRephraser struct {
	out string
	err error
	got string
}

func (s *stubRephraser) Rephrase(ctx context.Context, text string) (string, error) {
	s.got = text
	return s.out, s.err
}

type stubProfile struct{ resp *models.ProfileResponse }

func (s *stubProfile) Me(ctx context.Context) *models.ProfileResponse { return s.resp }

type testServer struct {
	handler   http.Handler
	db        *database.DB
	blobs     *blobstore.Store
	cache     *cache.Cache
	refresher *stubRefresher
	rephraser *stubRephraser
	profile   *stubProfile
}

func testConfig() *config.Config {
	return &config.Config{
		Analysis: config.AnalysisConfig{
			PalindromeMode: config.PalindromeStrict,
			MaxValueLength: 255,
			MinQueryLength: 3,
		},
		Security: config.SecurityConfig{
			RateLimitDisabled: true,
		},
	}
}

// newTestServer builds the full router over an in-memory DuckDB and badger.
// mw may be nil for the defaults with rate limiting disabled.
func newTestServer(t *testing.T, mw *ChiMiddleware) *testServer {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	db, err := database.New(&config.DatabaseConfig{Path: ":memory:", MaxMemory: "256MB", Threads: 1})
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	blobs, err := blobstore.Open("")
	if err != nil {
		t.Fatalf("blobstore.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = blobs.Close() })

	c := cache.New("countries_test", time.Minute)
	t.Cleanup(c.Close)

	ts := &testServer{
		db:        db,
		blobs:     blobs,
		cache:     c,
		refresher: &stubRefresher{},
		rephraser: &stubRephraser{},
		profile: &stubProfile{resp: &models.ProfileResponse{
			Status: models.StatusSuccess,
			User:   models.User{Email: "dev@example.com", Name: "Dev", Stack: "Go"},
			Fact:   "Cats sleep a lot.",
		}},
	}

	cfg := testConfig()
	h := NewHandler(cfg, db, analysis.NewService(db, analysis.PalindromeStrict),
		ts.refresher, blobs, c, ts.rephraser, ts.profile)

	if mw == nil {
		mw = NewChiMiddlewareFromConfig(&cfg.Security)
	}
	ts.handler = NewRouter(h, mw).SetupChi()
	return ts
}

func (ts *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) models.ErrorResponse {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	resp := decodeBody[models.ErrorResponse](t, rec)
	if resp.Status != models.StatusError {
		t.Errorf("status field = %q, want %q", resp.Status, models.StatusError)
	}
	if code != "" && resp.ErrorCode != code {
		t.Errorf("error_code = %q, want %q", resp.ErrorCode, code)
	}
	return resp
}
