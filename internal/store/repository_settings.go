// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/models"
)

// settingsRepository is the PostgreSQL-backed implementation of
// [SettingsRepository]. It owns the "user_settings" table and keeps the
// "users" mirror of external identities in step.
type settingsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSettingsRepository constructs a [SettingsRepository] backed by the
// provided database connection and logger.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// FetchByUser loads the single settings row of userID.
//
// Error handling:
//   - no row → [ErrSettingsNotFound].
//   - transient driver errors → [ErrStorageUnavailable].
//   - anything else → [ErrExecutingQuery].
func (r *settingsRepository) FetchByUser(ctx context.Context, userID string) (models.RemoteRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindSettingsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.FetchByUser").Msg("error building query")
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := scanRemoteRecord(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RemoteRecord{}, ErrSettingsNotFound
		}
		log.Err(err).Str("func", "*settingsRepository.FetchByUser").Str("user_id", userID).Msg("error fetching settings")
		return models.RemoteRecord{}, r.db.wrapError(err, ErrExecutingQuery)
	}

	return record, nil
}

// UpsertByUser writes every slot of bundle to the row of userID inside one
// transaction. The identity row in "users" is created on first use, so the
// foreign key holds even for users the server has never seen.
func (r *settingsRepository) UpsertByUser(ctx context.Context, userID string, bundle models.SettingsBundle) (models.RemoteRecord, error) {
	log := logger.FromContext(ctx)

	ensureQuery, ensureArgs, err := buildEnsureUserQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.UpsertByUser").Msg("error building query")
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	upsertQuery, upsertArgs, err := buildUpsertSettingsQuery(userID, bundle.Normalize())
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.UpsertByUser").Msg("error building query")
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.UpsertByUser").Msg("error beginning transaction")
		return models.RemoteRecord{}, r.db.wrapError(err, ErrBeginningTransaction)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, ensureQuery, ensureArgs...); err != nil {
		log.Err(err).Str("func", "*settingsRepository.UpsertByUser").Str("user_id", userID).Msg("error ensuring user row")
		return models.RemoteRecord{}, r.db.wrapError(err, ErrExecutingStatement)
	}

	record, err := scanRemoteRecord(tx.QueryRowContext(ctx, upsertQuery, upsertArgs...))
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.UpsertByUser").Str("user_id", userID).Msg("error upserting settings")
		return models.RemoteRecord{}, r.db.wrapError(err, ErrExecutingQuery)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*settingsRepository.UpsertByUser").Msg("error committing transaction")
		return models.RemoteRecord{}, r.db.wrapError(err, ErrCommitingTransaction)
	}

	log.Debug().
		Str("user_id", userID).
		Time("updated_at", record.UpdatedAt).
		Msg("settings upserted")

	return record, nil
}

// scanRemoteRecord reads one row laid out as [settingsColumns].
func scanRemoteRecord(row *sql.Row) (models.RemoteRecord, error) {
	var record models.RemoteRecord
	raw := make([][]byte, len(models.AllSlots))

	dest := []any{&record.UserID}
	for i := range raw {
		dest = append(dest, &raw[i])
	}
	dest = append(dest, &record.UpdatedAt)

	if err := row.Scan(dest...); err != nil {
		return models.RemoteRecord{}, err
	}

	for i, slot := range models.AllSlots {
		var records models.Records
		if err := json.Unmarshal(raw[i], &records); err != nil {
			return models.RemoteRecord{}, fmt.Errorf("%w (column=%s): %w", ErrScanningRow, slotColumns[slot], err)
		}
		record.SetSlot(slot, records)
	}
	record.SettingsBundle = record.SettingsBundle.Normalize()

	return record, nil
}
