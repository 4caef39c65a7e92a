// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/service"
	"github.com/MKhiriev/go-settings-sync/models"
)

// shutdownTimeout bounds how long Run waits for in-flight reconcile runs after
// the UI exits.
const shutdownTimeout = 10 * time.Second

type App struct {
	services   *service.ClientServices
	ui         UI
	workers    Waiter
	importFile string
	logger     *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, workers Waiter, importFile string, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, ErrNoServices
	}
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{
		services:   services,
		ui:         ui,
		workers:    workers,
		importFile: importFile,
		logger:     logger,
	}, nil
}

// Run executes the client lifecycle:
//  1. loads the optional import file into the local store;
//  2. attaches the session hook so every sign-in starts a reconcile run;
//  3. restores the persisted session, which reconciles it in the background;
//  4. runs the UI until the user quits;
//  5. waits for in-flight reconcile runs.
func (a *App) Run(ctx context.Context) error {
	if a.importFile != "" {
		if err := a.importBundle(ctx, a.importFile); err != nil {
			return err
		}
	}

	detach := a.services.SessionHook.Attach(a.services.AuthService)
	defer detach()

	identity, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if identity != nil {
		a.logger.Info().Str("user_id", identity.UserID).Msg("session restored")
	} else {
		a.logger.Info().Msg("no saved session")
	}

	runErr := a.ui.Run(ctx)

	if a.workers != nil {
		waitCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.workers.Wait(waitCtx); err != nil {
			a.logger.Warn().Err(err).Msg("background work did not finish in time")
		}
	}

	return runErr
}

func (a *App) importBundle(ctx context.Context, path string) error {
	bundle, err := readBundleFile(path)
	if err != nil {
		return err
	}

	if err := a.services.SyncService.ImportBundle(ctx, bundle); err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}

	a.logger.Info().Str("file", path).Any("counts", bundle.Counts()).Msg("imported settings bundle")
	return nil
}

// readBundleFile decodes a JSON settings bundle. Slots missing from the file
// stay nil so that importing them leaves the local slot untouched.
func readBundleFile(path string) (models.SettingsBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.SettingsBundle{}, fmt.Errorf("%w: %w", ErrReadImportFile, err)
	}

	var bundle models.SettingsBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return models.SettingsBundle{}, fmt.Errorf("%w: %w", ErrDecodeImportFile, err)
	}
	return bundle, nil
}
