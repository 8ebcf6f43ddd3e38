// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package api

import (
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/stringwise/internal/models"
)

// AgentRequest is the body of POST /api/telex/agent. Text is either a plain
// string or an object with its own "text" field, as Telex nests it.
type AgentRequest struct {
	Text json.RawMessage `json:"text" swaggertype:"string"`
}

// extractText returns the message to rephrase, or "" when the body has none.
func (a *AgentRequest) extractText() string {
	if len(a.Text) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(a.Text, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var nested struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(a.Text, &nested); err == nil {
		return strings.TrimSpace(nested.Text)
	}
	return ""
}

// TelexAgent rephrases a message in a kinder, professional tone.
//
// @Summary Say-It-Nicer agent
// @Description Rewrites the input text using the configured language model and returns it in the Telex agent envelope.
// @Tags Agent
// @Accept json
// @Produce json
// @Param request body AgentRequest true "Text to rephrase"
// @Success 200 {object} models.AgentResponse
// @Failure 400 {object} models.ErrorResponse "Empty text"
// @Failure 503 {object} models.ErrorResponse "Language model unavailable"
// @Router /telex/agent [post]
func (h *Handler) TelexAgent(w http.ResponseWriter, r *http.Request) {
	var req AgentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, msgTextRequired, nil)
		return
	}
	text := req.extractText()
	if text == "" {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, msgTextRequired, nil)
		return
	}

	output, err := h.rephraser.Rephrase(r.Context(), text)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, models.NewSayItNicerResponse(text, output))
}
