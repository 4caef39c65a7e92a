// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-settings-sync/internal/config"
	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthSvc() AuthService {
	return NewAuthService(config.App{TokenSignKey: "sign-key", TokenIssuer: "identity-provider"}, logger.Nop())
}

func TestAuthService_ParseToken_Valid(t *testing.T) {
	svc := newTestAuthSvc()
	token, err := utils.GenerateJWTToken("identity-provider", testUserID, time.Hour, "sign-key")
	require.NoError(t, err)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)

	require.NoError(t, err)
	assert.Equal(t, testUserID, parsed.UserID)
}

func TestAuthService_ParseToken_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		issuer  string
		subject string
		key     string
		ttl     time.Duration
	}{
		{name: "wrong key", issuer: "identity-provider", subject: testUserID, key: "other", ttl: time.Hour},
		{name: "wrong issuer", issuer: "someone-else", subject: testUserID, key: "sign-key", ttl: time.Hour},
		{name: "expired", issuer: "identity-provider", subject: testUserID, key: "sign-key", ttl: -time.Minute},
		{name: "subject not uuid", issuer: "identity-provider", subject: "u1", key: "sign-key", ttl: time.Hour},
	}

	svc := newTestAuthSvc()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := utils.GenerateJWTToken(tt.issuer, tt.subject, tt.ttl, tt.key)
			require.NoError(t, err)

			_, err = svc.ParseToken(context.Background(), token.SignedString)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	_, err := newTestAuthSvc().ParseToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
