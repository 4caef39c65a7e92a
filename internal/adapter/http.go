// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-settings-sync/internal/config"
	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/utils"
	"github.com/MKhiriev/go-settings-sync/models"
	"github.com/go-resty/resty/v2"
)

const settingsPath = "/api/users/{userID}/settings"

type httpSettingsAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPSettingsAdapter constructs an HTTP/REST implementation of
// [SettingsAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPSettingsAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (SettingsAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpSettingsAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [SettingsAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpSettingsAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [SettingsAdapter].
func (h *httpSettingsAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// FetchByUser implements [SettingsAdapter] via
// GET /api/users/{userID}/settings.
func (h *httpSettingsAdapter) FetchByUser(ctx context.Context, userID string) (models.RemoteRecord, error) {
	if userID == "" {
		return models.RemoteRecord{}, ErrInvalidUserID
	}

	var record models.RemoteRecord
	resp, err := h.authedRequest(ctx).
		SetPathParam("userID", userID).
		SetResult(&record).
		Get(settingsPath)
	if err != nil {
		return models.RemoteRecord{}, fmt.Errorf("fetch settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteRecord{}, err
	}

	record.SettingsBundle = record.SettingsBundle.Normalize()
	return record, nil
}

// UpsertByUser implements [SettingsAdapter] via
// PUT /api/users/{userID}/settings with the full bundle as body.
func (h *httpSettingsAdapter) UpsertByUser(ctx context.Context, userID string, bundle models.SettingsBundle) (models.RemoteRecord, error) {
	if userID == "" {
		return models.RemoteRecord{}, ErrInvalidUserID
	}

	var record models.RemoteRecord
	resp, err := h.authedRequest(ctx).
		SetPathParam("userID", userID).
		SetHeader("Content-Type", "application/json").
		SetBody(bundle.Normalize()).
		SetResult(&record).
		Put(settingsPath)
	if err != nil {
		return models.RemoteRecord{}, fmt.Errorf("upsert settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteRecord{}, err
	}

	record.SettingsBundle = record.SettingsBundle.Normalize()
	return record, nil
}

type tokenCtxKey struct{}

// WithToken returns a copy of ctx that pins the bearer token for requests
// made with it. A pinned token takes precedence over the one set with
// [SettingsAdapter.SetToken], so a request started for one identity keeps
// its credentials after a sign-out or an account switch.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey{}, strings.TrimSpace(token))
}

// TokenFromContext returns the token pinned with [WithToken], if any.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenCtxKey{}).(string)
	return token, ok
}

func (h *httpSettingsAdapter) requestToken(ctx context.Context) string {
	if token, ok := TokenFromContext(ctx); ok {
		return token
	}
	return h.Token()
}

func (h *httpSettingsAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.requestToken(ctx); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
