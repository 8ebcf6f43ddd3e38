// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

// Package config loads Stringwise configuration with koanf.
//
// Sources are layered, lowest priority first:
//
//  1. Built-in defaults (defaultConfig)
//  2. An optional YAML file: $CONFIG_PATH, ./config.yaml, ./config.yml,
//     /etc/stringwise/config.yaml
//  3. Environment variables, mapped explicitly by envTransformFunc
//
// Only mapped environment variables are read, so unrelated variables in
// the process environment never leak into the configuration.
//
// Example YAML:
//
//	server:
//	  port: 8080
//	analysis:
//	  palindrome_mode: strict
//	countries:
//	  refresh_interval: 6h
//	llm:
//	  provider: gemini
//	  gemini_api_key: "..."
package config
