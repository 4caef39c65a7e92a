// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-settings-sync/internal/app"
	"github.com/MKhiriev/go-settings-sync/internal/service"
	"github.com/MKhiriev/go-settings-sync/internal/utils"
	"github.com/MKhiriev/go-settings-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	maxVisibleNotifications = 8
	notificationWidth       = 70
	timeLayout              = "2006-01-02 15:04:05"
)

// notificationFeed is the part of the notification log the status page needs.
type notificationFeed interface {
	service.Notifier
	Recent() []models.Notification
}

// StatusModel is the main page of the client. It shows who is signed in, the
// record count of every local slot, the bundle fingerprint, the latest sync
// run and the most recent notifications.
type StatusModel struct {
	ctx           context.Context
	auth          service.ClientAuthService
	sync          service.SettingsSyncService
	notifications notificationFeed

	writeClipboard func(text string) error

	identity     *models.Identity
	bundle       models.SettingsBundle
	report       models.SyncReport
	hasReport    bool
	recent       []models.Notification
	saving       bool
	errorOverlay *errorOverlayModel
}

func NewStatusModel(ctx context.Context, auth service.ClientAuthService, sync service.SettingsSyncService, notifications notificationFeed) *StatusModel {
	return &StatusModel{
		ctx:            ctx,
		auth:           auth,
		sync:           sync,
		notifications:  notifications,
		writeClipboard: clipboard.WriteAll,
	}
}

// Init implements [tea.Model]. Loads the first snapshot.
func (m *StatusModel) Init() tea.Cmd {
	return m.cmdSnapshot()
}

// Update implements [tea.Model].
func (m *StatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.identity = msg.identity
		m.bundle = msg.bundle
		m.report = msg.report
		m.hasReport = msg.hasReport
		m.recent = lastNotifications(msg.notifications)
		return m, nil
	case notificationMsg:
		m.recent = lastNotifications(append(m.recent, msg.notification))
		return m, m.cmdSnapshot()
	case reloadMsg:
		m.bundle = msg.bundle
		return m, m.cmdSnapshot()
	case identityChangedMsg:
		m.identity = msg.identity
		return m, m.cmdSnapshot()
	case saveDoneMsg:
		m.saving = false
		if msg.err != nil && !errors.Is(msg.err, service.ErrNotSignedIn) {
			m.errorOverlay = &errorOverlayModel{message: humanizeServerUnavailableError(msg.err)}
		}
		return m, m.cmdSnapshot()
	case signOutDoneMsg:
		if msg.err != nil {
			m.errorOverlay = &errorOverlayModel{message: msg.err.Error()}
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.errorOverlay != nil {
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.errorOverlay = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdSnapshot()
	case key.Matches(keyMsg, keys.signIn):
		if m.identity != nil {
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageSignIn} }
	case key.Matches(keyMsg, keys.signOut):
		if m.identity == nil {
			return m, nil
		}
		return m, m.cmdSignOut()
	case key.Matches(keyMsg, keys.save):
		if m.saving {
			return m, nil
		}
		m.saving = true
		return m, m.cmdSave()
	case key.Matches(keyMsg, keys.copyUser):
		if m.identity == nil {
			return m, nil
		}
		return m, m.cmdCopyUserID(m.identity.UserID)
	}

	return m, nil
}

// View implements [tea.Model].
func (m *StatusModel) View() string {
	if m.errorOverlay != nil {
		return m.errorOverlay.View()
	}

	var b strings.Builder

	if m.identity == nil {
		b.WriteString("User:        not signed in\n")
	} else {
		b.WriteString("User:        ")
		b.WriteString(m.identity.UserID)
		b.WriteString("\n")
		b.WriteString("Signed in:   ")
		b.WriteString(formatTime(m.identity.SignedInAt))
		b.WriteString("\n")
	}

	b.WriteString("\nSlot                  │ Records\n")
	b.WriteString("──────────────────────┼────────\n")
	counts := m.bundle.Counts()
	for _, slot := range models.AllSlots {
		fmt.Fprintf(&b, "%-21s │ %d\n", slot, counts[slot])
	}

	b.WriteString("\nFingerprint: ")
	b.WriteString(valueOrDash(utils.BundleFingerprint(m.bundle)))
	b.WriteString("\nLast sync:   ")
	b.WriteString(m.lastSyncLine())
	b.WriteString("\n")

	if m.saving {
		b.WriteString("\n[Saving...]\n")
	}

	b.WriteString("\nNotifications\n")
	if len(m.recent) == 0 {
		b.WriteString("-\n")
	}
	for _, n := range m.recent {
		line := formatClock(n.At) + " " + fitText(n.Message, notificationWidth)
		b.WriteString(styleForLevel(n.Level).Render(line))
		b.WriteString("\n")
	}

	return renderPage("SETTINGS SYNC", strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m *StatusModel) hotKeys() string {
	if m.identity == nil {
		return "i: sign in │ s: save │ r: refresh │ v: about │ q: quit"
	}
	return "s: save │ u: copy user id │ o: sign out │ r: refresh │ v: about │ q: quit"
}

func (m *StatusModel) lastSyncLine() string {
	if !m.hasReport {
		return "-"
	}

	line := m.report.Outcome.String() + " at " + formatTime(m.report.At)
	if m.report.Err != nil {
		line += " (" + humanizeServerUnavailableError(m.report.Err) + ")"
	}
	return line
}

func (m *StatusModel) cmdSnapshot() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	syncSvc := m.sync
	notifications := m.notifications

	return func() tea.Msg {
		report, ok := syncSvc.LastReport()
		return snapshotMsg{
			identity:      auth.CurrentIdentity(),
			bundle:        syncSvc.LocalBundle(ctx),
			report:        report,
			hasReport:     ok,
			notifications: notifications.Recent(),
		}
	}
}

func (m *StatusModel) cmdSave() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	syncSvc := m.sync

	return func() tea.Msg {
		return saveDoneMsg{err: syncSvc.ExportUserSettings(ctx, auth.CurrentIdentity())}
	}
}

func (m *StatusModel) cmdSignOut() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	notifications := m.notifications

	return func() tea.Msg {
		err := auth.SignOut(ctx)
		if err != nil {
			notifications.Notify(ctx, models.NotificationError, fmt.Sprintf(app.NotifySignOutFailed, err.Error()))
		} else {
			notifications.Notify(ctx, models.NotificationInfo, app.NotifySignedOut)
		}
		return signOutDoneMsg{err: err}
	}
}

func (m *StatusModel) cmdCopyUserID(userID string) tea.Cmd {
	ctx := m.ctx
	write := m.writeClipboard
	notifications := m.notifications

	return func() tea.Msg {
		if err := write(userID); err != nil {
			notifications.Notify(ctx, models.NotificationError, fmt.Sprintf(app.NotifyClipboardFailed, err.Error()))
			return nil
		}
		notifications.Notify(ctx, models.NotificationSuccess, app.NotifyUserIDCopied)
		return nil
	}
}

func lastNotifications(all []models.Notification) []models.Notification {
	if len(all) <= maxVisibleNotifications {
		return all
	}
	return all[len(all)-maxVisibleNotifications:]
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func formatClock(t time.Time) string {
	if t.IsZero() {
		return "--:--:--"
	}
	return t.Local().Format(time.TimeOnly)
}
