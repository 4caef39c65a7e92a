// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-settings-sync/internal/app"
	"github.com/MKhiriev/go-settings-sync/internal/service"
	"github.com/MKhiriev/go-settings-sync/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SignInModel is the Bubble Tea model for the sign-in screen. The user pastes
// the bearer token issued by the identity provider; on success the page goes
// back to the status page.
type SignInModel struct {
	ctx           context.Context
	auth          service.ClientAuthService
	notifications service.Notifier

	input      textinput.Model
	submitting bool
	errMsg     string
}

// NewSignInModel creates a [SignInModel] with a masked token input.
func NewSignInModel(ctx context.Context, auth service.ClientAuthService, notifications service.Notifier) *SignInModel {
	tokenInput := textinput.New()
	tokenInput.Placeholder = "token"
	tokenInput.CharLimit = 4096
	tokenInput.Width = 50
	tokenInput.EchoMode = textinput.EchoPassword
	tokenInput.EchoCharacter = '*'

	return &SignInModel{
		ctx:           ctx,
		auth:          auth,
		notifications: notifications,
		input:         tokenInput,
	}
}

// Init implements [tea.Model]. Focuses the input and starts the cursor blink.
func (m *SignInModel) Init() tea.Cmd {
	return m.input.Focus()
}

// Update implements [tea.Model]. Handled messages:
//   - signInDoneMsg: on error shows it, otherwise returns to the status page.
//   - esc: back to the status page.
//   - enter: dispatches the async sign-in command.
//
// All other messages are forwarded to the token input.
func (m *SignInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(signInDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.errMsg = ""
		m.input.Reset()
		return m, func() tea.Msg { return NavigateTo{Page: pageStatus} }
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			m.input.Reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageStatus} }
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			token := strings.TrimSpace(m.input.Value())
			if token == "" {
				m.errMsg = errEmptyToken.Error()
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignIn(token)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *SignInModel) View() string {
	var b strings.Builder
	b.WriteString("Token │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Sign in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: sign in")
}

func (m *SignInModel) cmdSignIn(token string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	notifications := m.notifications

	return func() tea.Msg {
		identity, err := auth.SignIn(ctx, token)
		if err != nil {
			notifications.Notify(ctx, models.NotificationError, fmt.Sprintf(app.NotifySignInFailed, err.Error()))
			return signInDoneMsg{err: err}
		}

		notifications.Notify(ctx, models.NotificationInfo, fmt.Sprintf(app.NotifySignedIn, identity.UserID))
		return signInDoneMsg{identity: identity}
	}
}
