// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/tomtom215/stringwise/internal/logging"
	"github.com/tomtom215/stringwise/internal/metrics"
)

// Store persists records. Implementations must enforce uniqueness of the
// fingerprint atomically and report duplicates as ErrConflict and missing
// records as ErrNotFound.
type Store interface {
	InsertString(ctx context.Context, rec *Record) error
	GetStringByFingerprint(ctx context.Context, fingerprint string) (*Record, error)
	DeleteStringByFingerprint(ctx context.Context, fingerprint string) error
	ScanStrings(ctx context.Context, filters FilterSet) ([]Record, error)
}

// FilterResult is the response of a structured filter.
type FilterResult struct {
	Data           []Record  `json:"data"`
	Count          int       `json:"count"`
	FiltersApplied FilterSet `json:"filters_applied"`
}

// InterpretedQuery echoes the query and the filters derived from it.
type InterpretedQuery struct {
	Original      string    `json:"original"`
	ParsedFilters FilterSet `json:"parsed_filters"`
}

// NaturalLanguageResult is the response of a natural-language filter.
type NaturalLanguageResult struct {
	Data             []Record         `json:"data"`
	Count            int              `json:"count"`
	InterpretedQuery InterpretedQuery `json:"interpreted_query"`
}

// Service coordinates derivation, persistence and filtering.
type Service struct {
	store Store
	mode  PalindromeMode
	now   func() time.Time
}

// NewService returns a Service over store. An empty mode means PalindromeStrict.
func NewService(store Store, mode PalindromeMode) *Service {
	if mode == "" {
		mode = PalindromeStrict
	}
	return &Service{store: store, mode: mode, now: time.Now}
}

// Analyze derives and stores value. It returns ErrConflict if a
// case-insensitively equal value is already stored, and ErrInvalidInput if
// value is not valid UTF-8.
func (s *Service) Analyze(ctx context.Context, value string) (*Record, error) {
	if !utf8.ValidString(value) {
		metrics.StringsAnalyzed.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("%w: value must be valid UTF-8", ErrInvalidInput)
	}
	rec := NewRecord(value, s.mode, s.now())

	if err := s.store.InsertString(ctx, rec); err != nil {
		if errors.Is(err, ErrConflict) {
			metrics.StringsAnalyzed.WithLabelValues("conflict").Inc()
			return nil, err
		}
		metrics.StringsAnalyzed.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("store string: %w", err)
	}

	metrics.StringsAnalyzed.WithLabelValues("created").Inc()
	logging.Ctx(ctx).Debug().
		Str("fingerprint", rec.ID).
		Int("length", rec.Properties.Length).
		Msg("String analyzed")
	return rec, nil
}

// GetByValue looks a record up by the fingerprint of value.
func (s *Service) GetByValue(ctx context.Context, value string) (*Record, error) {
	return s.store.GetStringByFingerprint(ctx, Fingerprint(value))
}

// DeleteByValue removes the record whose fingerprint matches value.
func (s *Service) DeleteByValue(ctx context.Context, value string) error {
	fp := Fingerprint(value)
	if err := s.store.DeleteStringByFingerprint(ctx, fp); err != nil {
		return err
	}
	logging.Ctx(ctx).Debug().Str("fingerprint", fp).Msg("String deleted")
	return nil
}

// Filter lists the records matching filters.
func (s *Service) Filter(ctx context.Context, filters FilterSet) (*FilterResult, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}
	recs, err := s.scan(ctx, filters)
	if err != nil {
		return nil, err
	}
	return &FilterResult{Data: recs, Count: len(recs), FiltersApplied: filters}, nil
}

// FilterByNaturalLanguage interprets query and lists the matching records.
func (s *Service) FilterByNaturalLanguage(ctx context.Context, query string) (*NaturalLanguageResult, error) {
	filters, err := Interpret(query)
	switch {
	case errors.Is(err, ErrUnparseable):
		metrics.NLQueries.WithLabelValues("unparseable").Inc()
		return nil, err
	case errors.Is(err, ErrConflictingFilters):
		metrics.NLQueries.WithLabelValues("conflicting").Inc()
		return nil, err
	case err != nil:
		return nil, err
	}
	metrics.NLQueries.WithLabelValues("parsed").Inc()

	recs, err := s.scan(ctx, filters)
	if err != nil {
		return nil, err
	}
	return &NaturalLanguageResult{
		Data:  recs,
		Count: len(recs),
		InterpretedQuery: InterpretedQuery{
			Original:      query,
			ParsedFilters: filters,
		},
	}, nil
}

func (s *Service) scan(ctx context.Context, filters FilterSet) ([]Record, error) {
	recs, err := s.store.ScanStrings(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("scan strings: %w", err)
	}
	if recs == nil {
		recs = []Record{}
	}
	return recs, nil
}
