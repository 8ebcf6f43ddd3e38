// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

/*
Package api provides the HTTP surface of Stringwise.

Routes are served by a chi router (see SetupChi) under /api:

  - /api/strings: analyse, fetch, delete and filter strings, including
    the natural-language filter endpoint
  - /api/countries and /api/status: cached country data refreshed from the
    public REST Countries and exchange-rate APIs, plus the summary image
  - /api/telex/agent: the Say-It-Nicer rephrasing agent
  - /api/me: profile card with a cat fact, throttled per client IP
  - /api/health/live and /api/health/ready: liveness and readiness probes

Every failure is written as the models.ErrorResponse envelope:

	{"status":"error","message":"String already exists in the system","error_code":"CONFLICT"}

Domain errors are mapped to HTTP statuses in one place (writeServiceError), so
handlers return as soon as a service call fails.

Middleware:

  - request ID and correlation ID in the logging context
  - go-chi/cors for CORS, go-chi/httprate for per-IP rate limiting
  - security headers and Prometheus metrics on every /api route

The Swagger UI is served at /swagger/index.html from the registered docs
package.
*/
package api
