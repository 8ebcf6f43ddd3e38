// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package analysis

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"
)

// memStore is an in-process Store that evaluates filters with Matches.
type memStore struct {
	mu      sync.Mutex
	records []Record
	failErr error
}

func (m *memStore) InsertString(_ context.Context, r *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	for i := range m.records {
		if m.records[i].ID == r.ID || m.records[i].Value == r.Value {
			return ErrConflict
		}
	}
	m.records = append(m.records, *r)
	return nil
}

func (m *memStore) GetStringByFingerprint(_ context.Context, fp string) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.records {
		if m.records[i].ID == fp {
			r := m.records[i]
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) DeleteStringByFingerprint(_ context.Context, fp string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.records {
		if m.records[i].ID == fp {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *memStore) ScanStrings(_ context.Context, f FilterSet) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Record
	for i := range m.records {
		if f.Matches(&m.records[i]) {
			out = append(out, m.records[i])
		}
	}
	if f.Sort != SortNone {
		sort.SliceStable(out, func(i, j int) bool {
			if f.Sort == SortDesc {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			}
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	}
	return out, nil
}

func newTestService(t *testing.T) (*Service, *memStore) {
	t.Helper()
	store := &memStore{}
	svc := NewService(store, PalindromeStrict)
	tick := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	return svc, store
}

func mustAnalyze(t *testing.T, svc *Service, values ...string) {
	t.Helper()
	for _, v := range values {
		if _, err := svc.Analyze(context.Background(), v); err != nil {
			t.Fatalf("Analyze(%q) error = %v", v, err)
		}
	}
}

func TestService_Analyze(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	got, err := svc.Analyze(ctx, "Hello World")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if got.ID != Fingerprint("hello world") || got.Properties.Fingerprint != got.ID {
		t.Errorf("ID = %s, want fingerprint of value", got.ID)
	}
	if got.Value != "Hello World" {
		t.Errorf("Value = %q, original case must be kept", got.Value)
	}
	if got.CreatedAt.IsZero() || got.CreatedAt.Location() != time.UTC {
		t.Errorf("CreatedAt = %v, want UTC timestamp", got.CreatedAt)
	}

	for _, dup := range []string{"Hello World", "hello world", "HELLO WORLD"} {
		if _, err := svc.Analyze(ctx, dup); !errors.Is(err, ErrConflict) {
			t.Errorf("Analyze(%q) error = %v, want ErrConflict", dup, err)
		}
	}
}

func TestService_Analyze_StoreFailure(t *testing.T) {
	svc, store := newTestService(t)
	store.failErr = errors.New("disk full")

	_, err := svc.Analyze(context.Background(), "x")
	if err == nil || errors.Is(err, ErrConflict) {
		t.Fatalf("Analyze() error = %v, want wrapped store error", err)
	}
}

func TestService_Analyze_RejectsInvalidUTF8(t *testing.T) {
	svc, store := newTestService(t)

	_, err := svc.Analyze(context.Background(), "a\xffb")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Analyze() error = %v, want ErrInvalidInput", err)
	}
	if len(store.records) != 0 {
		t.Errorf("stored %d records, want 0", len(store.records))
	}
}

func TestService_GetAndDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	mustAnalyze(t, svc, "Racecar")

	got, err := svc.GetByValue(ctx, "RACECAR")
	if err != nil {
		t.Fatalf("GetByValue() error = %v", err)
	}
	if got.Value != "Racecar" {
		t.Errorf("Value = %q, want stored original", got.Value)
	}

	if err := svc.DeleteByValue(ctx, "racecar"); err != nil {
		t.Fatalf("DeleteByValue() error = %v", err)
	}
	if _, err := svc.GetByValue(ctx, "Racecar"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByValue after delete error = %v, want ErrNotFound", err)
	}
	if err := svc.DeleteByValue(ctx, "racecar"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteByValue error = %v, want ErrNotFound", err)
	}

	// Recreate after delete is allowed.
	mustAnalyze(t, svc, "racecar")
}

func TestService_Filter(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	mustAnalyze(t, svc, "hello", "world", "racecar", "level", "hello world", "abc")

	res, err := svc.Filter(ctx, FilterSet{MinLength: ptrTo(5), MaxLength: ptrTo(5)})
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	if res.Count != 3 {
		t.Fatalf("Count = %d, want 3 (hello, world, level)", res.Count)
	}
	for _, r := range res.Data {
		if r.Properties.Length != 5 {
			t.Errorf("%q has length %d", r.Value, r.Properties.Length)
		}
	}
	if res.Data[0].Value != "hello" {
		t.Errorf("first = %q, want insertion order", res.Data[0].Value)
	}

	res, err = svc.Filter(ctx, FilterSet{Sort: SortDesc})
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 6 || res.Data[0].Value != "abc" {
		t.Errorf("desc scan first = %q (count %d), want abc", res.Data[0].Value, res.Count)
	}

	if _, err := svc.Filter(ctx, FilterSet{ContainsCharacter: ptrTo("ab")}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Filter(bad contains) error = %v, want ErrInvalidInput", err)
	}
}

func TestService_Filter_EmptyStoreReturnsEmptySlice(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.Filter(context.Background(), FilterSet{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Data == nil || res.Count != 0 {
		t.Errorf("Data = %v, Count = %d; want non-nil empty slice", res.Data, res.Count)
	}
}

func TestService_FilterByNaturalLanguage(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	mustAnalyze(t, svc, "racecar", "level", "hello world", "noon", "a man a plan")

	res, err := svc.FilterByNaturalLanguage(ctx, "all single word palindromic strings")
	if err != nil {
		t.Fatalf("FilterByNaturalLanguage() error = %v", err)
	}
	if res.Count != 3 {
		t.Errorf("Count = %d, want 3", res.Count)
	}
	if res.InterpretedQuery.Original != "all single word palindromic strings" {
		t.Errorf("Original = %q", res.InterpretedQuery.Original)
	}
	if pf := res.InterpretedQuery.ParsedFilters; pf.IsPalindrome == nil || pf.WordCount == nil || *pf.WordCount != 1 {
		t.Errorf("ParsedFilters = %+v", pf)
	}

	if _, err := svc.FilterByNaturalLanguage(ctx, "something vague"); !errors.Is(err, ErrUnparseable) {
		t.Errorf("error = %v, want ErrUnparseable", err)
	}
	if _, err := svc.FilterByNaturalLanguage(ctx, "longer than 9 shorter than 3"); !errors.Is(err, ErrConflictingFilters) {
		t.Errorf("error = %v, want ErrConflictingFilters", err)
	}
}

func TestService_LegacyPalindromeMode(t *testing.T) {
	svc := NewService(&memStore{}, PalindromeLegacy)

	got, err := svc.Analyze(context.Background(), "racecar")
	if err != nil {
		t.Fatal(err)
	}
	if got.Properties.IsPalindrome {
		t.Error("legacy mode should never report a palindrome")
	}
}
