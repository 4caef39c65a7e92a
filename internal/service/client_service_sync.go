// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-settings-sync/internal/adapter"
	"github.com/MKhiriev/go-settings-sync/internal/app"
	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/store"
	"github.com/MKhiriev/go-settings-sync/internal/utils"
	"github.com/MKhiriev/go-settings-sync/models"
	"golang.org/x/sync/singleflight"
)

type settingsSyncService struct {
	localStore store.LocalSettingsRepository
	adapter    adapter.SettingsAdapter
	notifier   Notifier
	reloader   Reloader

	// inFlight coalesces concurrent reconcile runs per user id.
	inFlight singleflight.Group

	mu         sync.RWMutex
	lastReport *models.SyncReport

	logger *logger.Logger
	now    func() time.Time
}

func NewSettingsSyncService(
	localStore store.LocalSettingsRepository,
	settingsAdapter adapter.SettingsAdapter,
	notifier Notifier,
	reloader Reloader,
	logger *logger.Logger,
) SettingsSyncService {
	return &settingsSyncService{
		localStore: localStore,
		adapter:    settingsAdapter,
		notifier:   notifier,
		reloader:   reloader,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *settingsSyncService) Reconcile(ctx context.Context, identity *models.Identity) (models.SyncOutcome, error) {
	if identity == nil || identity.UserID == "" {
		s.logger.Debug().Msg("reconcile skipped: not signed in")
		return models.OutcomeSkipped, nil
	}

	userID := identity.UserID
	result, err, shared := s.inFlight.Do(userID, func() (any, error) {
		outcome, err := s.reconcile(ctx, identity)
		s.report(models.SyncReport{UserID: userID, Outcome: outcome, Err: err, At: s.now()})
		return outcome, err
	})
	if shared {
		s.logger.Debug().Str("user_id", userID).Msg("reconcile joined a run already in flight")
	}

	outcome, ok := result.(models.SyncOutcome)
	if !ok {
		outcome = models.OutcomeFailed
	}

	return outcome, err
}

// reconcile sends every request with the identity's own token, so a sign-out
// or account switch during the run cannot change the credentials.
func (s *settingsSyncService) reconcile(ctx context.Context, identity *models.Identity) (models.SyncOutcome, error) {
	userID := identity.UserID
	remoteCtx := adapter.WithToken(ctx, identity.Token)
	log := s.logger.With().Str("user_id", userID).Logger()

	record, err := s.adapter.FetchByUser(remoteCtx, userID)
	switch {
	case err == nil:
		return s.applyRemote(ctx, record)
	case !errors.Is(err, adapter.ErrSettingsNotFound):
		log.Err(err).Msg("fetching remote settings failed")
		s.notifier.Notify(ctx, models.NotificationError, fmt.Sprintf(app.NotifyLoadFailed, err.Error()))
		return models.OutcomeFailed, fmt.Errorf("%w: %w", ErrFetchingSettings, err)
	}

	local := s.localStore.ReadBundle(ctx).Normalize()
	if !local.HasData() {
		log.Debug().Msg("no remote record and no local data, nothing to sync")
		return models.OutcomeNothingToSync, nil
	}

	if _, err = s.adapter.UpsertByUser(remoteCtx, userID, local); err != nil {
		log.Err(err).Msg("initial upload failed")
		s.notifier.Notify(ctx, models.NotificationError, fmt.Sprintf(app.NotifySaveFailed, err.Error()))
		return models.OutcomeFailed, fmt.Errorf("%w: %w", ErrSavingSettings, err)
	}

	log.Info().
		Any("counts", local.Counts()).
		Str("fingerprint", utils.BundleFingerprint(local)).
		Msg("local settings uploaded for the first time")
	s.notifier.Notify(ctx, models.NotificationSuccess, app.NotifyUploadedInitial)

	return models.OutcomeUploadedInitial, nil
}

// applyRemote overwrites all five local slots with the record and reloads
// consumers only after the write has been committed.
func (s *settingsSyncService) applyRemote(ctx context.Context, record models.RemoteRecord) (models.SyncOutcome, error) {
	bundle := record.SettingsBundle.Normalize()

	if err := s.localStore.WriteBundle(ctx, bundle.Partial()); err != nil {
		s.logger.Err(err).Str("user_id", record.UserID).Msg("writing remote settings locally failed")
		s.notifier.Notify(ctx, models.NotificationError, fmt.Sprintf(app.NotifyLoadFailed, err.Error()))
		return models.OutcomeFailed, fmt.Errorf("%w: %w", ErrApplyingSettings, err)
	}

	s.logger.Info().
		Str("user_id", record.UserID).
		Time("updated_at", record.UpdatedAt).
		Any("counts", bundle.Counts()).
		Str("fingerprint", utils.BundleFingerprint(bundle)).
		Msg("remote settings applied")
	s.notifier.Notify(ctx, models.NotificationInfo, app.NotifySettingsSynced)
	s.reloader.Reload(ctx, bundle)

	return models.OutcomeAppliedRemote, nil
}

func (s *settingsSyncService) ExportUserSettings(ctx context.Context, identity *models.Identity) error {
	if identity == nil || identity.UserID == "" {
		s.notifier.Notify(ctx, models.NotificationError, app.NotifyNotSignedIn)
		return ErrNotSignedIn
	}

	local := s.localStore.ReadBundle(ctx).Normalize()
	remoteCtx := adapter.WithToken(ctx, identity.Token)
	if _, err := s.adapter.UpsertByUser(remoteCtx, identity.UserID, local); err != nil {
		s.logger.Err(err).Str("user_id", identity.UserID).Msg("manual save failed")
		s.notifier.Notify(ctx, models.NotificationError, fmt.Sprintf(app.NotifySaveFailed, err.Error()))
		return fmt.Errorf("%w: %w", ErrSavingSettings, err)
	}

	s.logger.Info().
		Str("user_id", identity.UserID).
		Str("fingerprint", utils.BundleFingerprint(local)).
		Msg("settings saved manually")
	s.notifier.Notify(ctx, models.NotificationSuccess, app.NotifySettingsSaved)

	return nil
}

func (s *settingsSyncService) ImportBundle(ctx context.Context, bundle models.SettingsBundle) error {
	partial := make(models.PartialBundle, len(models.AllSlots))
	for _, slot := range models.AllSlots {
		if records := bundle.Slot(slot); records != nil {
			partial[slot] = records
		}
	}

	if len(partial) == 0 {
		return nil
	}

	if err := s.localStore.WriteBundle(ctx, partial); err != nil {
		return fmt.Errorf("%w: %w", ErrImportingBundle, err)
	}

	s.logger.Info().Int("slots", len(partial)).Msg("settings bundle imported")
	return nil
}

func (s *settingsSyncService) LocalBundle(ctx context.Context) models.SettingsBundle {
	return s.localStore.ReadBundle(ctx).Normalize()
}

func (s *settingsSyncService) LastReport() (models.SyncReport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lastReport == nil {
		return models.SyncReport{}, false
	}
	return *s.lastReport, true
}

func (s *settingsSyncService) report(r models.SyncReport) {
	s.mu.Lock()
	s.lastReport = &r
	s.mu.Unlock()
}
