// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/stringwise/internal/models"
)

// FirstUser returns the earliest user row, or ErrUserNotFound when the
// table is empty.
func (db *DB) FirstUser(ctx context.Context) (user *models.User, err error) {
	defer observe("select", "users", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var u models.User
	err = db.conn.QueryRowContext(ctx,
		"SELECT email, name, stack FROM users ORDER BY id ASC LIMIT 1").Scan(&u.Email, &u.Name, &u.Stack)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}
