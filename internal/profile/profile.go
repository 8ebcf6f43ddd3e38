// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

// Package profile assembles the /api/me response: the owner's identity plus a
// random cat fact.
package profile

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/stringwise/internal/config"
	"github.com/tomtom215/stringwise/internal/database"
	"github.com/tomtom215/stringwise/internal/logging"
	"github.com/tomtom215/stringwise/internal/models"
)

// FallbackFact is returned when no fact could be fetched.
const FallbackFact = "Could not fetch a cat fact at this time."

// UserSource returns the profile owner.
type UserSource interface {
	FirstUser(ctx context.Context) (*models.User, error)
}

// FactSource returns a random fact.
type FactSource interface {
	FetchFact(ctx context.Context) (string, error)
}

// Service builds profile responses. It never fails: both lookups degrade to
// configured fallbacks.
type Service struct {
	users    UserSource
	facts    FactSource
	fallback models.User
	now      func() time.Time
}

// NewService creates a Service. cfg supplies the identity used when the
// users table is empty.
func NewService(users UserSource, facts FactSource, cfg *config.ProfileConfig) *Service {
	return &Service{
		users: users,
		facts: facts,
		fallback: models.User{
			Email: cfg.Email,
			Name:  cfg.Name,
			Stack: cfg.Stack,
		},
		now: time.Now,
	}
}

// Me returns the profile payload.
func (s *Service) Me(ctx context.Context) *models.ProfileResponse {
	logger := logging.Ctx(ctx)

	user, err := s.users.FirstUser(ctx)
	switch {
	case errors.Is(err, database.ErrUserNotFound):
		u := s.fallback
		user = &u
	case err != nil:
		logger.Error().Err(err).Msg("Failed to load profile user, using fallback")
		u := s.fallback
		user = &u
	}

	fact, err := s.facts.FetchFact(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Cat Facts API request failed")
		fact = FallbackFact
	}

	resp := &models.ProfileResponse{
		Status:    models.StatusSuccess,
		User:      *user,
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Fact:      fact,
	}

	logger.Info().Str("email", resp.User.Email).Str("fact", resp.Fact).Msg("response generated")
	return resp
}
