// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-settings-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SettingsSyncService reconciles the device-local settings bundle with the
// single remote record of the signed-in user.
type SettingsSyncService interface {
	// Reconcile runs one sync decision for identity. A nil identity is a
	// no-op. Otherwise the remote record is fetched and exactly one of
	// apply-remote, upload-initial or nothing-to-sync happens. Every failure
	// produces one notification and abandons the run; nothing is retried.
	// Concurrent calls for the same user share a single run.
	Reconcile(ctx context.Context, identity *models.Identity) (models.SyncOutcome, error)

	// ExportUserSettings uploads the current local bundle unconditionally,
	// replacing whatever the remote record holds. Errors are returned to the
	// caller as well as notified.
	ExportUserSettings(ctx context.Context, identity *models.Identity) error

	// ImportBundle writes every non-nil slot of bundle into the local store.
	ImportBundle(ctx context.Context, bundle models.SettingsBundle) error

	// LocalBundle returns the current device-local bundle.
	LocalBundle(ctx context.Context) models.SettingsBundle

	// LastReport returns the latest finished reconcile run, if any.
	LastReport() (models.SyncReport, bool)
}

// Notifier delivers user-facing notifications.
type Notifier interface {
	Notify(ctx context.Context, level models.NotificationLevel, message string)
}

// Reloader tells in-process consumers that the local bundle was replaced.
type Reloader interface {
	Reload(ctx context.Context, bundle models.SettingsBundle)
}

// IdentityNotifier publishes sign-in, sign-out and session-restore events.
type IdentityNotifier interface {
	// CurrentIdentity returns the signed-in identity or nil.
	CurrentIdentity() *models.Identity
	// OnIdentityChange registers fn for every identity transition. fn
	// receives nil on sign-out.
	OnIdentityChange(fn func(identity *models.Identity)) (unsubscribe func())
}

// ClientAuthService tracks who is signed in on this device.
type ClientAuthService interface {
	IdentityNotifier

	// SignIn accepts a bearer token issued by the identity provider, persists
	// the session and emits the new identity.
	SignIn(ctx context.Context, token string) (models.Identity, error)

	// SignOut forgets the session and emits nil.
	SignOut(ctx context.Context) error

	// RestoreSession emits the identity persisted by an earlier run. It
	// returns nil when nobody was signed in.
	RestoreSession(ctx context.Context) (*models.Identity, error)
}
