// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/mock"
	"github.com/MKhiriev/go-settings-sync/internal/store"
	"github.com/MKhiriev/go-settings-sync/internal/utils"
	"github.com/MKhiriev/go-settings-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientAuthSvc(t *testing.T, ctrl *gomock.Controller) (*clientAuthService, *mock.MockLocalSessionRepository, *mock.MockSettingsAdapter) {
	t.Helper()
	sessions := mock.NewMockLocalSessionRepository(ctrl)
	settingsAdapter := mock.NewMockSettingsAdapter(ctrl)

	svc := NewClientAuthService(sessions, settingsAdapter, logger.Nop()).(*clientAuthService)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc, sessions, settingsAdapter
}

func signedToken(t *testing.T, subject string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("identity-provider", subject, time.Hour, "sign-key")
	require.NoError(t, err)
	return token.SignedString
}

func TestClientAuthService_SignIn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessions, settingsAdapter := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()
	token := signedToken(t, testUserID)

	want := models.Identity{
		UserID:     testUserID,
		Token:      token,
		SignedInAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	var emitted []*models.Identity
	svc.OnIdentityChange(func(identity *models.Identity) { emitted = append(emitted, identity) })

	gomock.InOrder(
		sessions.EXPECT().SaveSession(ctx, want).Return(nil),
		settingsAdapter.EXPECT().SetToken(token),
	)

	got, err := svc.SignIn(ctx, "  "+token+"\n")

	require.NoError(t, err)
	assert.Equal(t, want, got)
	require.Len(t, emitted, 1)
	assert.Equal(t, &want, emitted[0])
	assert.Equal(t, &want, svc.CurrentIdentity())
}

func TestClientAuthService_SignIn_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestClientAuthSvc(t, ctrl)

	_, err := svc.SignIn(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyToken)
	assert.Nil(t, svc.CurrentIdentity())
}

func TestClientAuthService_SignIn_MalformedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestClientAuthSvc(t, ctrl)

	_, err := svc.SignIn(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClientAuthService_SignIn_SubjectNotUUID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestClientAuthSvc(t, ctrl)

	_, err := svc.SignIn(context.Background(), signedToken(t, "u1"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClientAuthService_SignIn_SaveSessionFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessions, _ := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	sessions.EXPECT().SaveSession(ctx, gomock.Any()).Return(errors.New("readonly"))

	var emitted int
	svc.OnIdentityChange(func(*models.Identity) { emitted++ })

	_, err := svc.SignIn(ctx, signedToken(t, testUserID))
	assert.ErrorIs(t, err, ErrSavingSession)
	assert.Zero(t, emitted)
	assert.Nil(t, svc.CurrentIdentity())
}

func TestClientAuthService_SignOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessions, settingsAdapter := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()
	svc.current = testIdentity()

	var emitted []*models.Identity
	svc.OnIdentityChange(func(identity *models.Identity) { emitted = append(emitted, identity) })

	sessions.EXPECT().ClearSession(ctx).Return(nil)
	settingsAdapter.EXPECT().SetToken("")

	require.NoError(t, svc.SignOut(ctx))
	require.Len(t, emitted, 1)
	assert.Nil(t, emitted[0])
	assert.Nil(t, svc.CurrentIdentity())
}

func TestClientAuthService_SignOut_ClearFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessions, _ := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()
	svc.current = testIdentity()

	sessions.EXPECT().ClearSession(ctx).Return(errors.New("locked"))

	assert.ErrorIs(t, svc.SignOut(ctx), ErrClearingSession)
	assert.NotNil(t, svc.CurrentIdentity())
}

func TestClientAuthService_RestoreSession_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessions, _ := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	sessions.EXPECT().LoadSession(ctx).Return(models.Identity{}, store.ErrLocalSessionNotFound)

	var emitted int
	svc.OnIdentityChange(func(*models.Identity) { emitted++ })

	identity, err := svc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, identity)
	assert.Zero(t, emitted)
}

func TestClientAuthService_RestoreSession_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessions, _ := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	sessions.EXPECT().LoadSession(ctx).Return(models.Identity{}, errors.New("corrupt"))

	_, err := svc.RestoreSession(ctx)
	assert.ErrorIs(t, err, ErrLoadingSession)
}

func TestClientAuthService_RestoreSession_Emits(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessions, settingsAdapter := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	sessions.EXPECT().LoadSession(ctx).Return(*testIdentity(), nil)
	settingsAdapter.EXPECT().SetToken("token")

	var emitted []*models.Identity
	unsubscribe := svc.OnIdentityChange(func(identity *models.Identity) { emitted = append(emitted, identity) })
	defer unsubscribe()

	identity, err := svc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, testIdentity(), identity)
	require.Len(t, emitted, 1)
	assert.Equal(t, testUserID, emitted[0].UserID)
}

func TestClientAuthService_CurrentIdentityIsACopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestClientAuthSvc(t, ctrl)
	svc.current = testIdentity()

	got := svc.CurrentIdentity()
	got.UserID = "changed"

	assert.Equal(t, testUserID, svc.CurrentIdentity().UserID)
}
