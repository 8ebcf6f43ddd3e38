// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

// Package summary renders the country summary image served by the countries API.
package summary

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tomtom215/stringwise/internal/models"
)

// Canvas geometry.
const (
	Width       = 600
	Height      = 400
	marginLeft  = 30
	firstLine   = 30
	lineSpacing = 20
)

// ContentType of the rendered image.
const ContentType = "image/png"

// TopN is how many countries the image lists by estimated GDP.
const TopN = 5

var printer = message.NewPrinter(language.English)

// Lines returns the text drawn on the image, top to bottom.
func Lines(total int, top []models.Country, refreshedAt time.Time) []string {
	lines := make([]string, 0, len(top)+4)
	lines = append(lines,
		"Country Summary",
		fmt.Sprintf("Total Countries: %d", total),
		fmt.Sprintf("Top %d GDP:", TopN),
	)
	for i := range top {
		lines = append(lines, fmt.Sprintf("%s: %s", top[i].Name, FormatGDP(top[i].EstimatedGDP)))
	}
	lines = append(lines, "Last Refresh: "+refreshedAt.UTC().Format(time.RFC3339))
	return lines
}

// FormatGDP formats v with thousands separators and two decimals.
func FormatGDP(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// Render draws the summary and encodes it as PNG.
func Render(total int, top []models.Country, refreshedAt time.Time) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	for i, line := range Lines(total, top, refreshedAt) {
		d.Dot = fixed.P(marginLeft, firstLine+i*lineSpacing)
		d.DrawString(line)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode summary png: %w", err)
	}
	return buf.Bytes(), nil
}
