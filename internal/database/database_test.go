// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/tomtom215/stringwise/internal/analysis"
	"github.com/tomtom215/stringwise/internal/config"
)

// testDBSemaphore serializes DuckDB creation; many concurrent CGO opens
// can stall under load.
var testDBSemaphore = make(chan struct{}, 1)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	db, err := New(&config.DatabaseConfig{Path: ":memory:", MaxMemory: "256MB", Threads: 1})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

func TestNew_InMemory(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
	for _, table := range []string{"string_analyses", "countries", "users"} {
		var n int
		if err := db.Conn().QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestNew_FileSurvivesReopen(t *testing.T) {
	testDBSemaphore <- struct{}{}
	defer func() { <-testDBSemaphore }()

	path := filepath.Join(t.TempDir(), "nested", "stringwise.duckdb")
	cfg := &config.DatabaseConfig{Path: path, MaxMemory: "256MB", Threads: 1}
	ctx := context.Background()

	db, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := db.InsertString(ctx, analysis.NewRecord("persisted", analysis.PalindromeStrict, fixedTime(0))); err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	db, err = New(cfg)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer db.Close()

	if _, err := db.GetStringByFingerprint(ctx, analysis.Fingerprint("PERSISTED")); err != nil {
		t.Errorf("record lost across reopen: %v", err)
	}
}

func TestIsUniqueConstraintError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New(`Constraint Error: Duplicate key "value: x" violates unique constraint`), true},
		{errors.New("PRIMARY KEY or UNIQUE constraint violated"), true},
		{errors.New("connection reset"), false},
	}
	for _, tt := range tests {
		if got := isUniqueConstraintError(tt.err); got != tt.want {
			t.Errorf("isUniqueConstraintError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
