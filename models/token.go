// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a verified JWT bearer token issued by the external identity
// provider.
//
// It embeds [jwt.Token] for low-level access and [jwt.RegisteredClaims] so the
// standard claims (sub, exp, iss) can be decoded straight into it.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString holds the compact form of the token as received.
	SignedString string `json:"-"`

	// UserID is a cached copy of the "sub" claim.
	UserID string `json:"-"`
}

// GetUserID extracts the user identifier from the "sub" claim.
//
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetUserID() (string, error) {
	userID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if userID == "" {
		return "", fmt.Errorf("error extracting UserID from token: empty subject")
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
