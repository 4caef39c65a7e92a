// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the settings-sync client. It is
// built on bubbletea and shows the sync state of the signed-in user.
package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/service"
	"github.com/MKhiriev/go-settings-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// sender is the part of [tea.Program] used to push service events into the
// running program.
type sender interface {
	Send(msg tea.Msg)
}

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoClientServices
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the TUI until the user quits or ctx is done. Notifications,
// reloads and identity changes published while it runs are pushed into the
// program as messages.
func (t *TUI) Run(ctx context.Context) error {
	program := tea.NewProgram(t.newRootModel(ctx), tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := t.subscribe(program)
	defer unsubscribe()

	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			t.logger.Info().Err(err).Msg("tui stopped by context")
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageStatus: NewStatusModel(ctx, t.services.AuthService, t.services.SyncService, t.services.Notifications),
		pageSignIn: NewSignInModel(ctx, t.services.AuthService, t.services.Notifications),
	}

	startPage := pageStatus
	if t.services.AuthService.CurrentIdentity() == nil {
		startPage = pageSignIn
	}

	return NewRootModel(pages, startPage, t.buildInfo)
}

func (t *TUI) subscribe(program sender) (unsubscribe func()) {
	unsubscribers := []func(){
		t.services.Notifications.Subscribe(func(notification models.Notification) {
			program.Send(notificationMsg{notification: notification})
		}),
		t.services.Reloads.Subscribe(func(bundle models.SettingsBundle) {
			program.Send(reloadMsg{bundle: bundle})
		}),
		t.services.AuthService.OnIdentityChange(func(identity *models.Identity) {
			program.Send(identityChangedMsg{identity: identity})
		}),
	}

	return func() {
		for _, unsub := range unsubscribers {
			unsub()
		}
	}
}
