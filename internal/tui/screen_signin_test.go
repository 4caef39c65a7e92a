// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-settings-sync/internal/app"
	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/mock"
	"github.com/MKhiriev/go-settings-sync/internal/service"
	"github.com/MKhiriev/go-settings-sync/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSignIn(t *testing.T) (*SignInModel, *mock.MockClientAuthService, *service.NotificationLog) {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	notifications := service.NewNotificationLog(0, logger.Nop())

	m := NewSignInModel(context.Background(), auth, notifications)
	m.Init()
	return m, auth, notifications
}

func TestSignInModel_EmptyToken(t *testing.T) {
	m, _, _ := newTestSignIn(t)
	m.input.SetValue("   ")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Contains(t, m.View(), errEmptyToken.Error())
}

func TestSignInModel_Success(t *testing.T) {
	m, auth, notifications := newTestSignIn(t)
	identity := *testIdentity()
	auth.EXPECT().SignIn(gomock.Any(), "header.payload.sig").Return(identity, nil)

	m.input.SetValue("  header.payload.sig ")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)
	assert.Contains(t, m.View(), "[Sign in...]")

	// enter while submitting does nothing
	_, again := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, again)

	done := cmd()
	assert.Equal(t, signInDoneMsg{identity: identity}, done)
	assert.Equal(t, fmt.Sprintf(app.NotifySignedIn, testUserID), lastMessage(t, notifications).Message)

	_, nav := m.Update(done)
	require.NotNil(t, nav)
	assert.Equal(t, NavigateTo{Page: pageStatus}, nav())
	assert.False(t, m.submitting)
	assert.Empty(t, m.input.Value())
}

func TestSignInModel_Failure(t *testing.T) {
	m, auth, notifications := newTestSignIn(t)
	auth.EXPECT().SignIn(gomock.Any(), "bad").Return(models.Identity{}, service.ErrInvalidToken)

	m.input.SetValue("bad")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	_, next := m.Update(cmd())
	assert.Nil(t, next)
	assert.False(t, m.submitting)
	assert.Contains(t, m.View(), service.ErrInvalidToken.Error())

	n := lastMessage(t, notifications)
	assert.Equal(t, models.NotificationError, n.Level)
	assert.Equal(t, fmt.Sprintf(app.NotifySignInFailed, service.ErrInvalidToken.Error()), n.Message)
}

func TestSignInModel_EscGoesBack(t *testing.T) {
	m, _, _ := newTestSignIn(t)
	m.input.SetValue("half typed")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageStatus}, cmd())
	assert.Empty(t, m.input.Value())
}
