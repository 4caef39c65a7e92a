// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/models"
)

const defaultNotificationHistory = 50

// NotificationLog is the [Notifier] of the client. It keeps the most recent
// notifications for the status screen and forwards each new one to its
// subscribers.
type NotificationLog struct {
	mu      sync.RWMutex
	history []models.Notification
	limit   int

	subscribers observers[models.Notification]
	logger      *logger.Logger
	now         func() time.Time
}

// NewNotificationLog keeps up to limit notifications. A non-positive limit
// falls back to 50.
func NewNotificationLog(limit int, logger *logger.Logger) *NotificationLog {
	if limit <= 0 {
		limit = defaultNotificationHistory
	}

	return &NotificationLog{
		limit:  limit,
		logger: logger,
		now:    time.Now,
	}
}

func (n *NotificationLog) Notify(ctx context.Context, level models.NotificationLevel, message string) {
	notification := models.Notification{
		Level:   level,
		Message: message,
		At:      n.now(),
	}

	n.mu.Lock()
	n.history = append(n.history, notification)
	if len(n.history) > n.limit {
		n.history = n.history[len(n.history)-n.limit:]
	}
	n.mu.Unlock()

	n.logger.Info().Str("level", string(level)).Str("message", message).Msg("notification")

	n.subscribers.emit(notification)
}

// Recent returns the kept notifications, oldest first.
func (n *NotificationLog) Recent() []models.Notification {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]models.Notification, len(n.history))
	copy(out, n.history)
	return out
}

func (n *NotificationLog) Subscribe(fn func(notification models.Notification)) (unsubscribe func()) {
	return n.subscribers.subscribe(fn)
}
