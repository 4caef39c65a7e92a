// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-settings-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SettingsRepository is the server-side storage of remote settings records.
// There is at most one record per user.
type SettingsRepository interface {
	// FetchByUser returns the record of userID or [ErrSettingsNotFound].
	FetchByUser(ctx context.Context, userID string) (models.RemoteRecord, error)
	// UpsertByUser replaces the record of userID in full, creating it on first
	// use, and returns the stored row.
	UpsertByUser(ctx context.Context, userID string, bundle models.SettingsBundle) (models.RemoteRecord, error)
}

// HealthChecker reports whether the backing database answers.
type HealthChecker interface {
	Healthy(ctx context.Context) error
}
