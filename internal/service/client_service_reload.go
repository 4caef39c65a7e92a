// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/models"
)

// ReloadBroadcaster is the [Reloader] of the client. Every consumer that
// caches the local bundle subscribes and rebuilds its state from the bundle
// it receives.
type ReloadBroadcaster struct {
	subscribers observers[models.SettingsBundle]
	logger      *logger.Logger
}

func NewReloadBroadcaster(logger *logger.Logger) *ReloadBroadcaster {
	return &ReloadBroadcaster{logger: logger}
}

// Subscribe registers fn for every reload and returns a func that removes it.
func (r *ReloadBroadcaster) Subscribe(fn func(bundle models.SettingsBundle)) (unsubscribe func()) {
	return r.subscribers.subscribe(fn)
}

// Reload hands bundle to every subscriber on the calling goroutine.
func (r *ReloadBroadcaster) Reload(ctx context.Context, bundle models.SettingsBundle) {
	r.logger.Info().
		Int("subscribers", r.subscribers.count()).
		Any("counts", bundle.Counts()).
		Msg("reloading local settings consumers")

	r.subscribers.emit(bundle)
}
