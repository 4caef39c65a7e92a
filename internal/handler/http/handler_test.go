// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-settings-sync/internal/config"
	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/mock"
	"github.com/MKhiriev/go-settings-sync/internal/service"
	"github.com/MKhiriev/go-settings-sync/internal/utils"
	"github.com/MKhiriev/go-settings-sync/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUserID  = "0b5f8c36-6f5e-4c3f-9f0e-3a1f1d6b7c11"
	otherUserID = "7d1c2f44-0a8e-4b8b-a5ad-2f3f2b9c8e01"

	testSignKey = "sign-key"
	testIssuer  = "identity-provider"
)

type testServices struct {
	settings *mock.MockSettingsService
	appInfo  *mock.MockAppInfoService
}

// newTestHandler wires a Handler with a real AuthService and mocked
// settings/app-info services.
func newTestHandler(t *testing.T) (*Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testServices{
		settings: mock.NewMockSettingsService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:     service.NewAuthService(testAppConfig(), logger.Nop()),
		SettingsService: m.settings,
		AppInfoService:  m.appInfo,
	}

	return NewHandler(services, logger.Nop()), m
}

func testAppConfig() config.App {
	return config.App{TokenSignKey: testSignKey, TokenIssuer: testIssuer, Version: "test"}
}

func bearer(t *testing.T, subject string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, subject, time.Hour, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}

// injectNopLogger puts a nop logger into the request context the same way
// withTraceID does.
func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}

func doRequest(router http.Handler, method, path, auth string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func remoteRecord(bundle models.SettingsBundle) models.RemoteRecord {
	return models.RemoteRecord{
		UserID:         testUserID,
		SettingsBundle: bundle.Normalize(),
		UpdatedAt:      time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC),
	}
}

