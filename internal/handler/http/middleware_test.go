// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-settings-sync/internal/app"
	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- getTokenFromAuthHeader ----

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid bearer", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "lower-case scheme", header: "bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "missing token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "blank token", header: "Bearer   ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ---- auth ----

func TestAuth_StoresSubjectInContext(t *testing.T) {
	h, _ := newTestHandler(t)

	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
	req.Header.Set("Authorization", bearer(t, testUserID))
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testUserID, captured)
}

func TestAuth_RejectsWithoutCallingNext(t *testing.T) {
	h, _ := newTestHandler(t)
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next must not be called")
	})

	for _, header := range []string{"", "Bearer", "Bearer not-a-token"} {
		req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()
		h.auth(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, header)
	}
}

// ---- ownerOnly ----

func TestOwnerOnly(t *testing.T) {
	tests := []struct {
		name       string
		subject    string
		pathUserID string
		wantStatus int
	}{
		{name: "own record", subject: testUserID, pathUserID: testUserID, wantStatus: http.StatusOK},
		{name: "upper-case path", subject: testUserID, pathUserID: "0B5F8C36-6F5E-4C3F-9F0E-3A1F1D6B7C11", wantStatus: http.StatusOK},
		{name: "other user", subject: testUserID, pathUserID: otherUserID, wantStatus: http.StatusForbidden},
		{name: "no subject", subject: "", pathUserID: testUserID, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			router := chi.NewRouter()
			router.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					ctx := logger.Nop().WithContext(r.Context())
					if tt.subject != "" {
						ctx = context.WithValue(ctx, utils.UserIDCtxKey, tt.subject)
					}
					next.ServeHTTP(w, r.WithContext(ctx))
				})
			})
			router.With(h.ownerOnly).Get("/api/users/{userID}/settings", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			rr := doRequest(router, http.MethodGet, settingsPath(tt.pathUserID), "", nil)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// ---- withTraceID ----

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
	}{
		{name: "incoming trace id is reused", requestTraceID: "my-custom-trace-id"},
		{name: "trace id is generated", requestTraceID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			var ctxLogger *logger.Logger
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxLogger = logger.FromRequest(r)
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			if tt.requestTraceID != "" {
				assert.Equal(t, tt.requestTraceID, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
			assert.NotNil(t, ctxLogger)
			assert.Equal(t, http.StatusTeapot, rr.Code)
		})
	}
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h, _ := newTestHandler(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	seen := make(map[string]struct{})
	for range 50 {
		rr := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		id := rr.Header().Get(traceIDHeader)
		_, dup := seen[id]
		require.False(t, dup, id)
		seen[id] = struct{}{}
	}
}

// ---- withLogging ----

func TestWithLogging_WritesAccessLog(t *testing.T) {
	h, _ := newTestHandler(t)

	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodPut, "/api/users/x/settings", nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("done"))
	})

	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, req)

	out := buf.String()
	assert.Contains(t, out, `"method":"PUT"`)
	assert.Contains(t, out, `"uri":"/api/users/x/settings"`)
	assert.Contains(t, out, `"status":201`)
	assert.Contains(t, out, `"size":4`)
	assert.Contains(t, out, `"duration":`)
}

// ---- responseWriter ----

func TestResponseWriter_HeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusInternalServerError)
	n, err := w.Write([]byte("abc"))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusAccepted, w.status)
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, 3, w.size)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, _ = w.Write([]byte("a"))
	_, _ = w.Write([]byte("bc"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 3, w.size)
}

// ---- CheckHTTPMethod ----

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("v"))
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method     string
		wantStatus int
		wantAllow  string
	}{
		{http.MethodGet, http.StatusOK, ""},
		{http.MethodPost, http.StatusMethodNotAllowed, "GET"},
		{http.MethodDelete, http.StatusMethodNotAllowed, "GET"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rr := doRequest(router, tt.method, "/api/version", "", nil)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Allow"))
		})
	}
}

// ---- version ----

func TestGetServerVersion(t *testing.T) {
	h, m := newTestHandler(t)
	router := h.Init()

	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rr := doRequest(router, http.MethodGet, "/api/version", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rr.Body.String())
}

// An unsupported method on the settings route is a 405, never a 404 that a
// client could read as "no settings record yet".
func TestRoutes_UnsupportedMethodOnSettingsIs405(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	rr := doRequest(router, http.MethodDelete, settingsPath(testUserID), bearer(t, testUserID), nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "GET, PUT", rr.Header().Get("Allow"))
	assert.Empty(t, rr.Header().Get(app.HeaderErrorCode))
}

func TestRoutes_UnknownRouteHasNoErrorCode(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	rr := doRequest(router, http.MethodGet, "/api/users/"+testUserID+"/profile", bearer(t, testUserID), nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, rr.Header().Get(app.HeaderErrorCode))
}
