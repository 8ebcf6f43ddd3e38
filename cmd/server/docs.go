// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

// @title Stringwise API
// @version 1.0
// @description String analysis, country data and small helper endpoints.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "message": "Human-readable error message",
// @description   "error_code": "ERROR_CODE",
// @description   "details": "optional context"
// @description }
// @description ```
// @description
// @description ## Rate Limiting
// @description
// @description 100 requests per minute per IP by default; GET /me allows 5 per minute.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/stringwise/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api
// @schemes http https
//
// @tag.name Strings
// @tag.description Analyse, fetch, delete and filter strings
//
// @tag.name Countries
// @tag.description Country data merged from REST Countries and exchange rates
//
// @tag.name Agent
// @tag.description Say-It-Nicer rephrasing agent
//
// @tag.name Profile
// @tag.description Profile card with a cat fact
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main
