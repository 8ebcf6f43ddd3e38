// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

/*
Package sync pulls data from external HTTP sources and folds it into the database.

Key Components:

  - RestCountriesClient: country list (name, capital, region, population, flag, currencies)
  - ExchangeRateClient: USD exchange rates keyed by currency code
  - CatFactClient: a single random fact for the profile endpoint
  - CountryManager: the refresh pipeline that joins both country sources,
    estimates GDP, upserts rows, renders the summary image, and flushes the
    response cache

Resilience:

Every client runs its requests through a sony/gobreaker circuit breaker. A
breaker opens once it has seen at least 10 requests with a failure rate of
60% or more, and half-opens two minutes later. Breaker state, transitions,
and request outcomes are exported through internal/metrics.

Concurrent Refresh calls share one in-flight run.
*/
package sync
