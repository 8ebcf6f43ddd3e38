// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package api

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"
)

// CreateString analyses and stores a new string.
//
// @Summary Analyse a string
// @Description Computes the string's properties and stores it. Values are unique case-insensitively.
// @Tags Strings
// @Accept json
// @Produce json
// @Param request body CreateStringRequest true "String to analyse"
// @Success 201 {object} analysis.Record
// @Failure 400 {object} models.ErrorResponse "Missing, blank or too long value"
// @Failure 409 {object} models.ErrorResponse "String already exists"
// @Failure 422 {object} models.ErrorResponse "Value is not a string"
// @Router /strings [post]
func (h *Handler) CreateString(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Value json.RawMessage `json:"value"`
	}
	if err := decodeJSON(r, &body); err != nil || len(body.Value) == 0 || string(body.Value) == "null" {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, msgMissingValue, nil)
		return
	}

	var req CreateStringRequest
	if err := json.Unmarshal(body.Value, &req.Value); err != nil {
		respondError(w, r, http.StatusUnprocessableEntity, ErrCodeValidation, msgValueNotString, nil)
		return
	}
	if !validateRequest(w, r, &req) {
		return
	}
	if limit := h.config.Analysis.MaxValueLength; limit > 0 && utf8.RuneCountInString(req.Value) > limit {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation,
			"value must be at most "+strconv.Itoa(limit)+" characters", nil)
		return
	}

	rec, err := h.strings.Analyze(r.Context(), req.Value)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

// GetString returns a stored string by value.
//
// @Summary Get a string
// @Tags Strings
// @Produce json
// @Param string_value path string true "Exact string value (matched case-insensitively)"
// @Success 200 {object} analysis.Record
// @Failure 404 {object} models.ErrorResponse
// @Router /strings/{string_value} [get]
func (h *Handler) GetString(w http.ResponseWriter, r *http.Request) {
	rec, err := h.strings.GetByValue(r.Context(), pathParam(r, "string_value"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// DeleteString removes a stored string by value.
//
// @Summary Delete a string
// @Tags Strings
// @Param string_value path string true "Exact string value"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /strings/{string_value} [delete]
func (h *Handler) DeleteString(w http.ResponseWriter, r *http.Request) {
	if err := h.strings.DeleteByValue(r.Context(), pathParam(r, "string_value")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListStrings filters stored strings by their properties.
//
// @Summary Filter strings
// @Tags Strings
// @Produce json
// @Param is_palindrome query bool false "Palindrome filter"
// @Param min_length query int false "Minimum length (>= 0)"
// @Param max_length query int false "Maximum length (>= 1)"
// @Param word_count query int false "Exact word count (>= 0)"
// @Param contains_character query string false "Single character the value must contain"
// @Param search query string false "Case-insensitive substring"
// @Param sort query string false "Order by creation time" Enums(asc, desc)
// @Success 200 {object} analysis.FilterResult
// @Failure 400 {object} models.ErrorResponse
// @Router /strings [get]
func (h *Handler) ListStrings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var req FilterStringsRequest
	var err error
	if req.IsPalindrome, err = parseOptionalBool(q, "is_palindrome"); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	for _, p := range []struct {
		key string
		dst **int
	}{
		{"min_length", &req.MinLength},
		{"max_length", &req.MaxLength},
		{"word_count", &req.WordCount},
	} {
		if *p.dst, err = parseOptionalInt(q, p.key); err != nil {
			respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
			return
		}
	}
	req.ContainsCharacter = optionalString(q, "contains_character")
	req.Search = optionalString(q, "search")
	req.Sort = strings.TrimSpace(q.Get("sort"))

	if !validateRequest(w, r, &req) {
		return
	}

	result, err := h.strings.Filter(r.Context(), req.FilterSet())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// FilterByNaturalLanguage interprets an English query as filters.
//
// @Summary Natural-language filter
// @Description Understands phrases such as "single word palindromic strings" or "strings longer than 10 characters".
// @Tags Strings
// @Produce json
// @Param query query string true "Natural-language query (at least 3 characters)"
// @Success 200 {object} analysis.NaturalLanguageResult
// @Failure 400 {object} models.ErrorResponse "Query too short or unparseable"
// @Failure 422 {object} models.ErrorResponse "Conflicting filters"
// @Router /strings/filter-by-natural-language [get]
func (h *Handler) FilterByNaturalLanguage(w http.ResponseWriter, r *http.Request) {
	req := NaturalLanguageRequest{Query: strings.TrimSpace(r.URL.Query().Get("query"))}
	if !validateRequest(w, r, &req) {
		return
	}
	if minLen := h.config.Analysis.MinQueryLength; utf8.RuneCountInString(req.Query) < minLen {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation,
			"query must be at least "+strconv.Itoa(minLen)+" characters", nil)
		return
	}

	result, err := h.strings.FilterByNaturalLanguage(r.Context(), req.Query)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
