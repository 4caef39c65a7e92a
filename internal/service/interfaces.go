// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of both sides of the settings
// sync system.
//
// Server side: [SettingsService] serves the single settings record of each
// user, [AuthService] verifies bearer tokens and [AppInfoService] reports the
// build version.
//
// Client side: [SettingsSyncService] reconciles the device-local bundle with
// the remote record, [SessionHook] runs it once per sign-in,
// [ReloadBroadcaster] tells in-process consumers that the local bundle was
// replaced and [ClientAuthService] tracks who is signed in.
package service

import (
	"context"

	"github.com/MKhiriev/go-settings-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SettingsService reads and replaces the settings record of a user.
type SettingsService interface {
	// GetSettings returns the record of userID or an error matching
	// store.ErrSettingsNotFound.
	GetSettings(ctx context.Context, userID string) (models.RemoteRecord, error)
	// SaveSettings replaces the record of userID with bundle in full.
	SaveSettings(ctx context.Context, userID string, bundle models.SettingsBundle) (models.RemoteRecord, error)
}

// AuthService verifies bearer tokens issued by the identity provider.
type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SettingsServiceWrapper defines middleware composition for SettingsService.
// Implementations wrap an existing SettingsService to add behavior such as
// validation.
type SettingsServiceWrapper interface {
	Wrap(SettingsService) SettingsService
}
