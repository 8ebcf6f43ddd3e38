// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/tomtom215/stringwise/internal/logging"
)

// ErrEmptyInput is returned for blank text.
var ErrEmptyInput = errors.New("text is required")

const sayItNicerPrompt = `You are "Say-It-Nicer", a kind communication assistant.

Task:
- Rephrase harsh or blunt messages to be polite, professional, and empathetic.
- If the message is already kind, return it unchanged (you may add a short friendly note).
- Keep the original meaning; avoid exaggeration or robotic tone.
- Respond only with the improved text, no explanations.`

// Rephraser turns blunt messages into polite ones.
type Rephraser struct {
	client Client
}

// NewRephraser creates a Rephraser backed by client.
func NewRephraser(client Client) *Rephraser {
	return &Rephraser{client: client}
}

// Prompt returns the full prompt sent for text.
func Prompt(text string) string {
	return sayItNicerPrompt + "\nInput message: " + text
}

// Rephrase returns the polite form of text. An empty model reply yields text unchanged.
func (r *Rephraser) Rephrase(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}

	reply, err := r.client.Generate(ctx, Prompt(text))
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Rephrase failed")
		if !errors.Is(err, ErrUpstream) {
			return "", errors.Join(ErrUpstream, err)
		}
		return "", err
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return text, nil
	}
	return reply, nil
}
