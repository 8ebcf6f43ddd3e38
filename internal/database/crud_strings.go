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
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/stringwise/internal/analysis"
)

const tableStrings = "string_analyses"

var _ analysis.Store = (*DB)(nil)

// InsertString stores rec. A duplicate value or fingerprint returns
// analysis.ErrConflict; the UNIQUE constraints make the check atomic.
func (db *DB) InsertString(ctx context.Context, rec *analysis.Record) (err error) {
	defer observe("insert", tableStrings, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	props, err := json.Marshal(rec.Properties)
	if err != nil {
		return fmt.Errorf("failed to encode properties: %w", err)
	}

	_, err = db.conn.ExecContext(ctx, `
		INSERT INTO string_analyses
			(value, fingerprint, length, is_palindrome, unique_characters, word_count, properties, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Value, rec.ID,
		rec.Properties.Length, rec.Properties.IsPalindrome,
		rec.Properties.UniqueCharacters, rec.Properties.WordCount,
		string(props), rec.CreatedAt.UTC(),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return analysis.ErrConflict
		}
		return fmt.Errorf("failed to insert string: %w", err)
	}
	return nil
}

// GetStringByFingerprint returns the record or analysis.ErrNotFound.
func (db *DB) GetStringByFingerprint(ctx context.Context, fingerprint string) (rec *analysis.Record, err error) {
	defer observe("select", tableStrings, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	row := db.conn.QueryRowContext(ctx, `
		SELECT value, fingerprint, properties, created_at
		FROM string_analyses WHERE fingerprint = ?`, fingerprint)

	rec, err = scanString(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, analysis.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get string: %w", err)
	}
	return rec, nil
}

// DeleteStringByFingerprint removes the record or returns analysis.ErrNotFound.
func (db *DB) DeleteStringByFingerprint(ctx context.Context, fingerprint string) (err error) {
	defer observe("delete", tableStrings, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	res, err := db.conn.ExecContext(ctx, `DELETE FROM string_analyses WHERE fingerprint = ?`, fingerprint)
	if err != nil {
		return fmt.Errorf("failed to delete string: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return analysis.ErrNotFound
	}
	return nil
}

// ScanStrings returns the records matching filters, evaluated in SQL.
// Without a sort the result is in insertion order.
func (db *DB) ScanStrings(ctx context.Context, filters analysis.FilterSet) (recs []analysis.Record, err error) {
	defer observe("scan", tableStrings, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	where, args := buildStringFilter(filters)
	query := "SELECT value, fingerprint, properties, created_at FROM string_analyses" +
		where + stringOrderBy(filters.Sort)

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to scan strings: %w", err)
	}
	defer closeWithLog(rows, "rows")

	recs = make([]analysis.Record, 0)
	for rows.Next() {
		rec, err := scanString(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read string row: %w", err)
		}
		recs = append(recs, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating strings: %w", err)
	}
	return recs, nil
}

// buildStringFilter mirrors analysis.FilterSet.Matches.
func buildStringFilter(f analysis.FilterSet) (string, []interface{}) {
	var (
		clauses []string
		args    []interface{}
	)
	add := func(clause string, arg interface{}) {
		clauses = append(clauses, clause)
		args = append(args, arg)
	}

	if f.IsPalindrome != nil {
		add("is_palindrome = ?", *f.IsPalindrome)
	}
	if f.MinLength != nil {
		add("length >= ?", *f.MinLength)
	}
	if f.MaxLength != nil {
		add("length <= ?", *f.MaxLength)
	}
	if f.WordCount != nil {
		add("word_count = ?", *f.WordCount)
	}
	if f.ContainsCharacter != nil {
		add("strpos(value, ?) > 0", *f.ContainsCharacter)
	}
	if f.Search != nil {
		add("strpos(lower(value), lower(?)) > 0", *f.Search)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func stringOrderBy(order analysis.SortOrder) string {
	switch order {
	case analysis.SortAsc:
		return " ORDER BY created_at ASC, id ASC"
	case analysis.SortDesc:
		return " ORDER BY created_at DESC, id ASC"
	default:
		return " ORDER BY id ASC"
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanString(row rowScanner) (*analysis.Record, error) {
	var (
		rec   analysis.Record
		props string
	)
	if err := row.Scan(&rec.Value, &rec.ID, &props, &rec.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(props), &rec.Properties); err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	return &rec, nil
}
