// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/models"
)

// localSessionRepository stores at most one session row (id = 1).
type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSessionRepository) SaveSession(ctx context.Context, identity models.Identity) error {
	_, err := l.DB.ExecContext(ctx, saveLocalSession, identity.UserID, identity.Token, identity.SignedInAt.UTC())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (l *localSessionRepository) LoadSession(ctx context.Context) (models.Identity, error) {
	var identity models.Identity

	err := l.DB.QueryRowContext(ctx, loadLocalSession).Scan(&identity.UserID, &identity.Token, &identity.SignedInAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Identity{}, ErrLocalSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.LoadSession").Msg("error loading session")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return identity, nil
}

func (l *localSessionRepository) ClearSession(ctx context.Context) error {
	if _, err := l.DB.ExecContext(ctx, clearLocalSession); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.ClearSession").Msg("error clearing session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
