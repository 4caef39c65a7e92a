// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-settings-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks [RootModel] to switch the active page. A non-nil Payload is
// delivered to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// snapshotMsg carries a fresh read of the client state for the status page.
type snapshotMsg struct {
	identity      *models.Identity
	bundle        models.SettingsBundle
	report        models.SyncReport
	hasReport     bool
	notifications []models.Notification
}

// notificationMsg is sent by the program for every new notification.
type notificationMsg struct {
	notification models.Notification
}

// reloadMsg is sent by the program after remote settings were applied locally.
type reloadMsg struct {
	bundle models.SettingsBundle
}

// identityChangedMsg is sent by the program whenever the signed-in user changes.
type identityChangedMsg struct {
	identity *models.Identity
}

type signInDoneMsg struct {
	identity models.Identity
	err      error
}

type signOutDoneMsg struct {
	err error
}

type saveDoneMsg struct {
	err error
}
