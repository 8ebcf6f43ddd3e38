// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

/*
Package main is the entry point for the Stringwise server.

Stringwise serves three small APIs from one process:

  - string analysis: length, palindrome check, word count, character
    frequencies and a natural-language filter over stored strings
  - country data: REST Countries merged with USD exchange rates, an estimated
    GDP per country, cached listings and a PNG summary
  - helpers: the Say-It-Nicer rephrasing agent and a profile card with a cat fact

# Application Architecture

	RootSupervisor ("stringwise")
	├── "sync-layer"
	│   └── country refresh (optional)
	└── "api-layer"
	    └── HTTP server (chi)

Initialization order:

 1. Configuration: koanf v2 (defaults, YAML file, environment)
 2. Logging: zerolog
 3. Database: DuckDB
 4. Blob store: BadgerDB for the summary image
 5. Response cache, upstream clients and the country manager
 6. Language model client (Gemini or any OpenAI-compatible API)
 7. HTTP handlers and router
 8. Supervisor tree, served until SIGINT or SIGTERM

# Configuration

Common environment variables:

	HTTP_PORT                     listen port (8080)
	DUCKDB_PATH                   database file, ":memory:" for none
	SUMMARY_STORE_PATH            badger directory, empty for in-memory
	COUNTRIES_REFRESH_INTERVAL    e.g. 6h; 0 disables the schedule
	COUNTRIES_REFRESH_ON_STARTUP  refresh once at boot
	LLM_PROVIDER                  gemini or openai
	GEMINI_API_KEY, OPENAI_API_KEY
	LOG_LEVEL, LOG_FORMAT

A YAML file is read from CONFIG_PATH, ./config.yaml or
/etc/stringwise/config.yaml when present.

# Example Usage

	export DUCKDB_PATH=./stringwise.duckdb
	export SUMMARY_STORE_PATH=./summary
	export GEMINI_API_KEY=...
	./stringwise

	curl -X POST localhost:8080/api/strings -d '{"value":"racecar"}'
	curl -X POST localhost:8080/api/countries/refresh
	curl localhost:8080/api/countries?region=Africa&sort=gdp_desc
*/
package main
