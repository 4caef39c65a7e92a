// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-settings-sync/internal/config"
	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/store"
)

type Services struct {
	AuthService     AuthService
	SettingsService SettingsService
	AppInfoService  AppInfoService
	HealthChecker   store.HealthChecker
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	settingsService := NewSettingsValidationService().Wrap(
		NewSettingsService(storages.SettingsRepository, logger),
	)

	return &Services{
		AuthService:     NewAuthService(cfg, logger),
		SettingsService: settingsService,
		AppInfoService:  appInfoService,
		HealthChecker:   storages.HealthChecker,
	}, nil
}
