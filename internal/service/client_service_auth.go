// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-settings-sync/internal/adapter"
	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/store"
	"github.com/MKhiriev/go-settings-sync/internal/utils"
	"github.com/MKhiriev/go-settings-sync/models"
)

type clientAuthService struct {
	sessions store.LocalSessionRepository
	adapter  adapter.SettingsAdapter

	mu      sync.RWMutex
	current *models.Identity

	listeners observers[*models.Identity]

	logger *logger.Logger
	now    func() time.Time
}

func NewClientAuthService(sessions store.LocalSessionRepository, settingsAdapter adapter.SettingsAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions: sessions,
		adapter:  settingsAdapter,
		logger:   logger,
		now:      time.Now,
	}
}

func (a *clientAuthService) CurrentIdentity() *models.Identity {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.current == nil {
		return nil
	}
	identity := *a.current
	return &identity
}

func (a *clientAuthService) OnIdentityChange(fn func(identity *models.Identity)) (unsubscribe func()) {
	return a.listeners.subscribe(fn)
}

// SignIn reads the subject of token without verifying it; the settings
// server verifies every request.
func (a *clientAuthService) SignIn(ctx context.Context, token string) (models.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.Identity{}, ErrEmptyToken
	}

	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !utils.IsValidUserID(userID) {
		return models.Identity{}, fmt.Errorf("%w: subject %q is not a uuid", ErrInvalidToken, userID)
	}

	identity := models.Identity{
		UserID:     userID,
		Token:      token,
		SignedInAt: a.now().UTC(),
	}

	if err = a.sessions.SaveSession(ctx, identity); err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrSavingSession, err)
	}

	a.logger.Info().Str("user_id", userID).Msg("signed in")
	a.setIdentity(&identity)

	return identity, nil
}

func (a *clientAuthService) SignOut(ctx context.Context) error {
	if err := a.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrClearingSession, err)
	}

	a.logger.Info().Msg("signed out")
	a.setIdentity(nil)

	return nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (*models.Identity, error) {
	identity, err := a.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		a.logger.Debug().Msg("no session to restore")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadingSession, err)
	}

	a.logger.Info().Str("user_id", identity.UserID).Msg("session restored")
	a.setIdentity(&identity)

	return &identity, nil
}

// setIdentity publishes identity to the adapter and to every listener.
// Listeners are called after the lock is released.
func (a *clientAuthService) setIdentity(identity *models.Identity) {
	a.mu.Lock()
	a.current = identity
	if identity != nil {
		a.adapter.SetToken(identity.Token)
	} else {
		a.adapter.SetToken("")
	}
	a.mu.Unlock()

	a.listeners.emit(a.CurrentIdentity())
}
