// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

/*
Package cache provides a thread-safe in-memory response cache with TTL expiry.

The countries API caches list and status responses here. Entries expire
lazily on Get and in a background sweep. The refresh pipeline and the country
delete handler call Flush so clients never see rows that are gone.

Each cache has a name used as the "cache" label on the
cache_hits_total and cache_misses_total counters.

	c := cache.New("countries", 5*time.Minute)
	defer c.Close()

	if v, ok := c.Get(filter.CacheKey()); ok {
	    return v.([]models.Country), nil
	}
*/
package cache
