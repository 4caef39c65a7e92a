// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/store"
	"github.com/MKhiriev/go-settings-sync/models"
)

type settingsService struct {
	settingsRepository store.SettingsRepository

	logger *logger.Logger
}

func NewSettingsService(settingsRepository store.SettingsRepository, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingsRepository: settingsRepository,
		logger:             logger,
	}
}

func (s *settingsService) GetSettings(ctx context.Context, userID string) (models.RemoteRecord, error) {
	record, err := s.settingsRepository.FetchByUser(ctx, userID)
	if err != nil {
		return models.RemoteRecord{}, fmt.Errorf("fetch settings of user %s: %w", userID, err)
	}

	return record, nil
}

func (s *settingsService) SaveSettings(ctx context.Context, userID string, bundle models.SettingsBundle) (models.RemoteRecord, error) {
	record, err := s.settingsRepository.UpsertByUser(ctx, userID, bundle.Normalize())
	if err != nil {
		return models.RemoteRecord{}, fmt.Errorf("save settings of user %s: %w", userID, err)
	}

	logger.FromContext(ctx).Info().
		Str("user_id", userID).
		Any("counts", record.Counts()).
		Msg("settings saved")

	return record, nil
}
