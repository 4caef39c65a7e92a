// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// NewTraceID returns a time-ordered UUIDv7, falling back to a random v4 when
// the clock source fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidUserID reports whether s is a canonical UUID. Settings records are
// keyed by the identity provider's UUID subject.
func IsValidUserID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
