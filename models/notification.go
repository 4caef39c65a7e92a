// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NotificationLevel classifies a user-facing notification.
type NotificationLevel string

const (
	NotificationInfo    NotificationLevel = "info"
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
)

// Notification is a single human-readable message shown to the user.
type Notification struct {
	Level   NotificationLevel
	Message string
	At      time.Time
}
