// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-settings-sync/internal/config"
	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/utils"
	"github.com/MKhiriev/go-settings-sync/models"
)

// authService is the concrete implementation of AuthService. Tokens are
// issued by the external identity provider; the settings server only
// verifies them.
type authService struct {
	// tokenSignKey is the HMAC secret shared with the identity provider.
	tokenSignKey string

	// tokenIssuer is the expected "iss" claim.
	tokenIssuer string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the token parameters in cfg.
// The returned service is safe for concurrent use.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer and the expiry. The subject must be a UUID because settings
// records are keyed by it. Any failure is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if !utils.IsValidUserID(token.UserID) {
		logger.FromContext(ctx).Debug().Str("sub", token.UserID).Msg("token subject is not a uuid")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
