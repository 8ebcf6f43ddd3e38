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

const tableCountries = "countries"

const countryColumns = `id, name, capital, region, population, currency_code,
	exchange_rate, estimated_gdp, flag_url, last_refreshed_at`

// UpsertCountries inserts or updates every country by name in a single
// transaction. Either all rows are written or none are.
func (db *DB) UpsertCountries(ctx context.Context, countries []models.Country) (err error) {
	defer observe("upsert", tableCountries, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO countries
			(name, capital, region, population, currency_code, exchange_rate,
			 estimated_gdp, flag_url, last_refreshed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			capital = excluded.capital,
			region = excluded.region,
			population = excluded.population,
			currency_code = excluded.currency_code,
			exchange_rate = excluded.exchange_rate,
			estimated_gdp = excluded.estimated_gdp,
			flag_url = excluded.flag_url,
			last_refreshed_at = excluded.last_refreshed_at`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer closeWithLog(stmt, "statement")

	for i := range countries {
		c := &countries[i]
		if _, err = stmt.ExecContext(ctx,
			c.Name, nullable(c.Capital), nullable(c.Region), c.Population, nullable(c.CurrencyCode),
			nullable(c.ExchangeRate), c.EstimatedGDP, nullable(c.FlagURL), c.LastRefreshedAt.UTC(),
		); err != nil {
			return fmt.Errorf("failed to upsert country %q: %w", c.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit countries: %w", err)
	}
	return nil
}

// ListCountries returns countries filtered by region and currency
// (case-insensitive) in the requested order.
func (db *DB) ListCountries(ctx context.Context, filter models.CountryFilter) (countries []models.Country, err error) {
	defer observe("list", tableCountries, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := "SELECT " + countryColumns + " FROM countries WHERE 1=1"
	var args []interface{}

	if filter.Region != "" {
		query += " AND lower(region) = lower(?)"
		args = append(args, filter.Region)
	}
	if filter.Currency != "" {
		query += " AND lower(currency_code) = lower(?)"
		args = append(args, filter.Currency)
	}

	switch filter.Sort {
	case models.SortGDPDesc:
		query += " ORDER BY estimated_gdp DESC, id ASC"
	case models.SortGDPAsc:
		query += " ORDER BY estimated_gdp ASC, id ASC"
	default:
		query += " ORDER BY id ASC"
	}

	return db.queryCountries(ctx, query, args...)
}

// TopCountriesByGDP returns the n countries with the highest estimated GDP.
func (db *DB) TopCountriesByGDP(ctx context.Context, n int) (countries []models.Country, err error) {
	defer observe("top_gdp", tableCountries, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	return db.queryCountries(ctx,
		"SELECT "+countryColumns+" FROM countries ORDER BY estimated_gdp DESC, id ASC LIMIT ?", n)
}

// GetCountryByName matches the name case-insensitively.
func (db *DB) GetCountryByName(ctx context.Context, name string) (c *models.Country, err error) {
	defer observe("select", tableCountries, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	row := db.conn.QueryRowContext(ctx,
		"SELECT "+countryColumns+" FROM countries WHERE lower(name) = lower(?) ORDER BY id LIMIT 1", name)
	c, err = scanCountry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCountryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get country: %w", err)
	}
	return c, nil
}

// DeleteCountryByName removes every country whose name matches case-insensitively.
func (db *DB) DeleteCountryByName(ctx context.Context, name string) (err error) {
	defer observe("delete", tableCountries, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	res, err := db.conn.ExecContext(ctx, "DELETE FROM countries WHERE lower(name) = lower(?)", name)
	if err != nil {
		return fmt.Errorf("failed to delete country: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrCountryNotFound
	}
	return nil
}

// CountryStatus returns the row count and the latest refresh time, which is
// nil before the first refresh.
func (db *DB) CountryStatus(ctx context.Context) (status *models.CountryStatus, err error) {
	defer observe("status", tableCountries, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var (
		total int
		last  sql.NullTime
	)
	err = db.conn.QueryRowContext(ctx,
		"SELECT COUNT(*), MAX(last_refreshed_at) FROM countries").Scan(&total, &last)
	if err != nil {
		return nil, fmt.Errorf("failed to read country status: %w", err)
	}

	status = &models.CountryStatus{TotalCountries: total}
	if last.Valid {
		t := last.Time.UTC()
		status.LastRefreshedAt = &t
	}
	return status, nil
}

func (db *DB) queryCountries(ctx context.Context, query string, args ...interface{}) ([]models.Country, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query countries: %w", err)
	}
	defer closeWithLog(rows, "rows")

	countries := make([]models.Country, 0)
	for rows.Next() {
		c, err := scanCountry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read country row: %w", err)
		}
		countries = append(countries, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating countries: %w", err)
	}
	return countries, nil
}

func scanCountry(row rowScanner) (*models.Country, error) {
	var (
		c                               models.Country
		capital, region, currency, flag sql.NullString
		rate                            sql.NullFloat64
	)
	if err := row.Scan(&c.ID, &c.Name, &capital, &region, &c.Population, &currency,
		&rate, &c.EstimatedGDP, &flag, &c.LastRefreshedAt); err != nil {
		return nil, err
	}
	c.Capital = nullString(capital)
	c.Region = nullString(region)
	c.CurrencyCode = nullString(currency)
	c.FlagURL = nullString(flag)
	if rate.Valid {
		c.ExchangeRate = &rate.Float64
	}
	c.LastRefreshedAt = c.LastRefreshedAt.UTC()
	return &c, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// nullable unwraps an optional value for binding; nil binds as SQL NULL.
func nullable[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
