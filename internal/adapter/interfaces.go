// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the settings server.
//
// The primary abstraction is [SettingsAdapter], which decouples the sync
// engine from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPSettingsAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrSettingsNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-settings-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/settings_adapter_mock.go -package=mock

// SettingsAdapter is the client's view of the remote settings repository.
type SettingsAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// requests. An empty token clears it.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// FetchByUser returns the remote record of userID. When the user has no
	// record yet the error matches [ErrSettingsNotFound]; every other failure
	// is a plain repository error.
	FetchByUser(ctx context.Context, userID string) (models.RemoteRecord, error)

	// UpsertByUser replaces the remote record of userID with bundle and
	// returns the stored record, including the server-assigned UpdatedAt.
	UpsertByUser(ctx context.Context, userID string, bundle models.SettingsBundle) (models.RemoteRecord, error)
}
