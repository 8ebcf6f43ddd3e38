// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package database

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE SEQUENCE IF NOT EXISTS string_analyses_id_seq START 1`,
	`CREATE TABLE IF NOT EXISTS string_analyses (
		id                BIGINT PRIMARY KEY DEFAULT nextval('string_analyses_id_seq'),
		value             VARCHAR NOT NULL UNIQUE,
		fingerprint       VARCHAR NOT NULL UNIQUE,
		length            INTEGER NOT NULL,
		is_palindrome     BOOLEAN NOT NULL,
		unique_characters INTEGER NOT NULL,
		word_count        INTEGER NOT NULL,
		properties        VARCHAR NOT NULL,
		created_at        TIMESTAMP NOT NULL
	)`,

	`CREATE SEQUENCE IF NOT EXISTS countries_id_seq START 1`,
	`CREATE TABLE IF NOT EXISTS countries (
		id                BIGINT PRIMARY KEY DEFAULT nextval('countries_id_seq'),
		name              VARCHAR NOT NULL UNIQUE,
		capital           VARCHAR,
		region            VARCHAR,
		population        BIGINT NOT NULL,
		currency_code     VARCHAR,
		exchange_rate     DOUBLE,
		estimated_gdp     DOUBLE NOT NULL DEFAULT 0,
		flag_url          VARCHAR,
		last_refreshed_at TIMESTAMP NOT NULL
	)`,

	`CREATE SEQUENCE IF NOT EXISTS users_id_seq START 1`,
	`CREATE TABLE IF NOT EXISTS users (
		id         BIGINT PRIMARY KEY DEFAULT nextval('users_id_seq'),
		email      VARCHAR NOT NULL,
		name       VARCHAR NOT NULL,
		stack      VARCHAR NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT current_timestamp
	)`,
}

func (db *DB) createTables(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
