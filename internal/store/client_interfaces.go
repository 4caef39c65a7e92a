// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-settings-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSettingsRepository is the device-local key/value store of the five
// settings slots.
type LocalSettingsRepository interface {
	// ReadBundle never fails: a slot that is missing, unreadable or not a
	// JSON array is returned as an empty sequence.
	ReadBundle(ctx context.Context) models.SettingsBundle
	// WriteBundle overwrites every slot present in partial atomically and
	// leaves the other slots untouched.
	WriteBundle(ctx context.Context, partial models.PartialBundle) error
	// SetSlot overwrites a single slot.
	SetSlot(ctx context.Context, slot models.Slot, records models.Records) error
}

// LocalSessionRepository persists the signed-in identity between runs.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, identity models.Identity) error
	// LoadSession returns [ErrLocalSessionNotFound] when nobody is signed in.
	LoadSession(ctx context.Context) (models.Identity, error)
	ClearSession(ctx context.Context) error
}
