// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package api

import (
	"net/http"
	"testing"

	"github.com/goccy/go-json"

	_ "github.com/tomtom215/stringwise/docs"
)

type swaggerParam struct {
	Name        string `json:"name"`
	In          string `json:"in"`
	Description string `json:"description"`
}

type swaggerDoc struct {
	Paths map[string]map[string]struct {
		Parameters []swaggerParam `json:"parameters"`
	} `json:"paths"`
}

func TestSwaggerDoc_SortParameters(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodGet, "/swagger/doc.json", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var doc swaggerDoc
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode doc.json: %v", err)
	}

	tests := []struct {
		path string
		want string
	}{
		{"/strings", "Order by creation time"},
		{"/countries", "Order by estimated GDP"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var found bool
			for _, p := range doc.Paths[tt.path]["get"].Parameters {
				if p.Name == "sort" && p.In == "query" {
					found = true
					if p.Description != tt.want {
						t.Errorf("sort description = %q, want %q", p.Description, tt.want)
					}
				}
			}
			if !found {
				t.Errorf("GET %s has no sort parameter", tt.path)
			}
		})
	}
}
