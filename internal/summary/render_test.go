// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package summary

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/tomtom215/stringwise/internal/models"
)

func TestFormatGDP(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{999.999, "1,000.00"},
		{1234567.891, "1,234,567.89"},
		{25767448125.2, "25,767,448,125.20"},
	}
	for _, tt := range tests {
		if got := FormatGDP(tt.in); got != tt.want {
			t.Errorf("FormatGDP(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLines(t *testing.T) {
	at := time.Date(2025, 10, 22, 18, 0, 0, 0, time.FixedZone("WAT", 3600))
	top := []models.Country{
		{Name: "Nigeria", EstimatedGDP: 1500000.5},
		{Name: "Ghana", EstimatedGDP: 42},
	}

	got := Lines(250, top, at)
	want := []string{
		"Country Summary",
		"Total Countries: 250",
		"Top 5 GDP:",
		"Nigeria: 1,500,000.50",
		"Ghana: 42.00",
		"Last Refresh: 2025-10-22T17:00:00Z",
	}
	if len(got) != len(want) {
		t.Fatalf("Lines() = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRender(t *testing.T) {
	data, err := Render(3, []models.Country{{Name: "Nigeria", EstimatedGDP: 10}}, time.Now())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != Width || b.Dy() != Height {
		t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), Width, Height)
	}

	if !isWhite(img.At(Width-1, Height-1)) {
		t.Error("background corner should be white")
	}
	if !hasDarkPixel(img, image.Rect(marginLeft, firstLine-13, marginLeft+120, firstLine+3)) {
		t.Error("expected title text near the top-left margin")
	}
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func hasDarkPixel(img image.Image, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if !isWhite(img.At(x, y)) {
				return true
			}
		}
	}
	return false
}
