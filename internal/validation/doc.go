// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

// Package validation wraps a shared go-playground/validator instance.
//
// Request structs declare their rules with `validate` tags; failures are
// reported with the field's JSON name so that messages read like the API:
//
//	type createStringRequest struct {
//	    Value *string `json:"value" validate:"required,max=255"`
//	}
//	// "value is required"
//
// Custom tags:
//   - notblank: the string is not empty or whitespace only
//   - singlechar: the string holds exactly one Unicode code point
//   - filtersort: asc or desc (case-insensitive)
package validation
