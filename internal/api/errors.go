// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package api

// Error codes written in ErrorResponse.ErrorCode.
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeUnparseableQuery   = "UNPARSEABLE_QUERY"
	ErrCodeConflictingFilters = "CONFLICTING_FILTERS"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// Client-facing messages.
const (
	msgStringExists       = "String already exists in the system"
	msgStringNotFound     = "String does not exist in the system"
	msgMissingValue       = "Invalid request body or missing 'value' field"
	msgValueNotString     = "Invalid data type for 'value' (must be string)"
	msgUnparseable        = "Unable to parse natural language query"
	msgConflictingFilters = "Query parsed but resulted in conflicting filters"
	msgCountryNotFound    = "Country not found"
	msgCountryDeleted     = "Country deleted successfully"
	msgImageNotFound      = "Summary image not found"
	msgSourceUnavailable  = "External data source unavailable"
	msgLLMUnavailable     = "Language model unavailable"
	msgTextRequired       = "text is required"
	msgInternal           = "Internal server error"
)
