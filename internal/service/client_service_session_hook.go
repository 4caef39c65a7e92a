// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/workers"
	"github.com/MKhiriev/go-settings-sync/models"
)

const reconcileTaskName = "reconcile-settings"

// SessionHook starts one reconcile run per transition to a signed-in
// identity. The run is handed to a [workers.Runner] so the identity
// transition never waits for it, and it is never retried.
type SessionHook struct {
	syncService SettingsSyncService
	runner      workers.Runner
	logger      *logger.Logger
}

func NewSessionHook(syncService SettingsSyncService, runner workers.Runner, logger *logger.Logger) *SessionHook {
	return &SessionHook{
		syncService: syncService,
		runner:      runner,
		logger:      logger,
	}
}

// Attach subscribes the hook to auth and returns a func that detaches it.
func (h *SessionHook) Attach(auth IdentityNotifier) (detach func()) {
	return auth.OnIdentityChange(h.onIdentityChange)
}

func (h *SessionHook) onIdentityChange(identity *models.Identity) {
	if identity == nil {
		h.logger.Debug().Msg("signed out, no reconcile")
		return
	}

	signedIn := *identity
	h.runner.Go(reconcileTaskName, func(ctx context.Context) error {
		outcome, err := h.syncService.Reconcile(ctx, &signedIn)
		if err != nil {
			return err
		}

		h.logger.Info().
			Str("user_id", signedIn.UserID).
			Stringer("outcome", outcome).
			Msg("reconcile finished")
		return nil
	})
}
