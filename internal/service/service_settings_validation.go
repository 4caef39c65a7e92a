// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-settings-sync/internal/validators"
	"github.com/MKhiriev/go-settings-sync/models"
)

// SettingsValidationService checks input before it reaches the wrapped
// SettingsService: the user id must be a UUID and every record must be a
// non-empty JSON document. Slots left out of a bundle are stored as empty
// sequences.
type SettingsValidationService struct {
	inner     SettingsService
	validator validators.Validator
}

func NewSettingsValidationService() SettingsServiceWrapper {
	return &SettingsValidationService{validator: validators.NewSettingsValidator()}
}

func (v *SettingsValidationService) GetSettings(ctx context.Context, userID string) (models.RemoteRecord, error) {
	if err := v.validator.Validate(ctx, models.RemoteRecord{UserID: userID}, validators.FieldUserID); err != nil {
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrInvalidUserID, err)
	}

	return v.inner.GetSettings(ctx, userID)
}

func (v *SettingsValidationService) SaveSettings(ctx context.Context, userID string, bundle models.SettingsBundle) (models.RemoteRecord, error) {
	record := models.RemoteRecord{UserID: userID, SettingsBundle: bundle}

	if err := v.validator.Validate(ctx, record, validators.FieldUserID); err != nil {
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrInvalidUserID, err)
	}

	if err := v.validator.Validate(ctx, record, validators.FieldRecords); err != nil {
		return models.RemoteRecord{}, fmt.Errorf("error during settings validation before saving: %w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SaveSettings(ctx, userID, bundle.Normalize())
}

func (v *SettingsValidationService) Wrap(wrapped SettingsService) SettingsService {
	v.inner = wrapped
	return v
}
