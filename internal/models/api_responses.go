// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package models

// Status values used in envelopes.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrorResponse is written for every failed request.
//
//	{"status":"error","message":"String already exists in the system","error_code":"CONFLICT"}
type ErrorResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	ErrorCode string `json:"error_code,omitempty"`
	Details   string `json:"details,omitempty"`
}

// MessageResponse acknowledges a mutation that has no other payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the health probes.
type HealthResponse struct {
	Status        string  `json:"status"`
	Database      string  `json:"database,omitempty"`
	UptimeSeconds float64 `json:"uptime_seconds,omitempty"`
}
