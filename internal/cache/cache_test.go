// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/stringwise/internal/metrics"
)

// newTestCache returns a cache driven by a manual clock.
func newTestCache(t *testing.T, name string, ttl time.Duration) (*Cache, *time.Time) {
	t.Helper()
	c := New(name, ttl)
	t.Cleanup(c.Close)
	clock := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }
	return c, &clock
}

func TestCache_GetSet(t *testing.T) {
	c, _ := newTestCache(t, "test-getset", time.Minute)

	c.Set("k", "v")
	if v, ok := c.Get("k"); !ok || v != "v" {
		t.Errorf("Get(k) = %v, %v", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) should miss")
	}

	if got := testutil.ToFloat64(metrics.CacheHits.WithLabelValues("test-getset")); got != 1 {
		t.Errorf("hits = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.CacheMisses.WithLabelValues("test-getset")); got != 1 {
		t.Errorf("misses = %v, want 1", got)
	}
}

func TestCache_Expiry(t *testing.T) {
	c, clock := newTestCache(t, "test-expiry", time.Minute)

	c.Set("k", 1)
	*clock = clock.Add(59 * time.Second)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("entry expired early")
	}

	*clock = clock.Add(2 * time.Second)
	if _, ok := c.Get("k"); ok {
		t.Error("entry should have expired")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, expired entry not removed", c.Len())
	}
}

func TestCache_Cleanup(t *testing.T) {
	c, clock := newTestCache(t, "test-cleanup", time.Minute)

	c.Set("old", 1)
	*clock = clock.Add(30 * time.Second)
	c.Set("new", 2)
	*clock = clock.Add(45 * time.Second)

	c.cleanup()
	if c.Len() != 1 {
		t.Fatalf("Len() = %d after cleanup, want 1", c.Len())
	}
	if _, ok := c.Get("new"); !ok {
		t.Error("unexpired entry removed")
	}
}

func TestCache_DeleteAndFlush(t *testing.T) {
	c, _ := newTestCache(t, "test-flush", time.Minute)

	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}
	c.Delete("k0")
	if _, ok := c.Get("k0"); ok {
		t.Error("deleted key still present")
	}

	c.Flush()
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Flush", c.Len())
	}
}

func TestCache_ZeroTTLDisables(t *testing.T) {
	c := New("test-disabled", 0)
	t.Cleanup(c.Close)

	c.Set("k", 1)
	if _, ok := c.Get("k"); ok {
		t.Error("zero TTL cache should not store")
	}
}

func TestCache_Concurrent(t *testing.T) {
	c := New("test-concurrent", time.Minute)
	t.Cleanup(c.Close)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", i%10)
				c.Set(key, g)
				c.Get(key)
				if i%50 == 0 {
					c.Flush()
				}
			}
		}(g)
	}
	wg.Wait()
}

func TestCache_CloseTwice(t *testing.T) {
	c := New("test-close", time.Minute)
	c.Close()
	c.Close()
}

func TestCache_SetIfGenerationDropsValuesReadBeforeFlush(t *testing.T) {
	c, _ := newTestCache(t, "test-generation", time.Minute)

	gen := c.Generation()
	c.Flush() // a refresh lands between the read and the store

	if c.SetIfGeneration("countries", "stale rows", gen) {
		t.Error("SetIfGeneration stored a value loaded before Flush")
	}
	if _, ok := c.Get("countries"); ok {
		t.Error("stale value is cached")
	}

	gen = c.Generation()
	if !c.SetIfGeneration("countries", "fresh rows", gen) {
		t.Fatal("SetIfGeneration rejected a current generation")
	}
	if v, ok := c.Get("countries"); !ok || v != "fresh rows" {
		t.Errorf("Get(countries) = %v, %v", v, ok)
	}
}

func TestCache_SetIfGenerationDisabledTTL(t *testing.T) {
	c := New("test-generation-off", 0)
	t.Cleanup(c.Close)
	if c.SetIfGeneration("k", 1, c.Generation()) {
		t.Error("SetIfGeneration stored with caching disabled")
	}
}
