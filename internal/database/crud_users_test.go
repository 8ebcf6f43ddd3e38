// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package database

import (
	"context"
	"errors"
	"testing"
)

func TestFirstUser(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if _, err := db.FirstUser(ctx); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("FirstUser() on empty table error = %v, want ErrUserNotFound", err)
	}

	_, err := db.Conn().ExecContext(ctx,
		"INSERT INTO users (email, name, stack) VALUES (?, ?, ?), (?, ?, ?)",
		"first@example.com", "First User", "Go",
		"second@example.com", "Second User", "Rust",
	)
	if err != nil {
		t.Fatal(err)
	}

	u, err := db.FirstUser(ctx)
	if err != nil {
		t.Fatalf("FirstUser() error = %v", err)
	}
	if u.Email != "first@example.com" || u.Name != "First User" || u.Stack != "Go" {
		t.Errorf("FirstUser() = %+v", u)
	}
}
