// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-settings-sync/internal/adapter"
	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/store"
	"github.com/MKhiriev/go-settings-sync/internal/workers"
)

type ClientServices struct {
	AuthService   ClientAuthService
	SyncService   SettingsSyncService
	Reloads       *ReloadBroadcaster
	Notifications *NotificationLog
	SessionHook   *SessionHook
}

// NewClientServices wires the client services. The session hook is created
// but not attached; the caller attaches it before restoring the session so
// that a restored session is reconciled too.
func NewClientServices(localStore *store.ClientStorages, settingsAdapter adapter.SettingsAdapter, runner workers.Runner, logger *logger.Logger) *ClientServices {
	notifications := NewNotificationLog(0, logger)
	reloads := NewReloadBroadcaster(logger)
	syncSvc := NewSettingsSyncService(localStore.SettingsRepository, settingsAdapter, notifications, reloads, logger)

	return &ClientServices{
		AuthService:   NewClientAuthService(localStore.SessionRepository, settingsAdapter, logger),
		SyncService:   syncSvc,
		Reloads:       reloads,
		Notifications: notifications,
		SessionHook:   NewSessionHook(syncSvc, runner, logger),
	}
}
