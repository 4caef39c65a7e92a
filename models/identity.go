// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Identity is the signed-in user as seen by the client. A nil *Identity means
// that nobody is signed in.
type Identity struct {
	// UserID is the identifier assigned by the external identity provider.
	// It is the key of the user's remote settings record.
	UserID string `json:"user_id"`

	// Token is the bearer token presented to the settings server.
	Token string `json:"-"`

	// SignedInAt is the moment the session was established on this device.
	SignedInAt time.Time `json:"signed_in_at"`
}
