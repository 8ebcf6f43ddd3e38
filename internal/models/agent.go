// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package models

// AgentData carries the text before and after rephrasing.
type AgentData struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// AgentResponse is the envelope expected by the Telex agent integration.
type AgentResponse struct {
	Active           bool      `json:"active"`
	Category         string    `json:"category"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description"`
	Data             AgentData `json:"data"`
}

// NewSayItNicerResponse wraps a rephrasing result in the agent envelope.
func NewSayItNicerResponse(input, output string) AgentResponse {
	return AgentResponse{
		Active:           true,
		Category:         "utilities",
		Name:             "say_it_nicer_agent",
		Description:      "Improves message tone to be kind and professional.",
		ShortDescription: "Polishes text tone",
		Data:             AgentData{Input: input, Output: output},
	}
}
