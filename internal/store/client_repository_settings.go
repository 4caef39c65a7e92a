// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/models"
)

// localSettingsRepository keeps each slot as one JSON document in the
// "local_slots" table of the client's SQLite file.
type localSettingsRepository struct {
	*DB
	logger *logger.Logger
}

type slotWrite struct {
	query string
	args  []any
}

func NewLocalSettingsRepository(db *DB, logger *logger.Logger) LocalSettingsRepository {
	return &localSettingsRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSettingsRepository) ReadBundle(ctx context.Context) models.SettingsBundle {
	log := logger.FromContext(ctx)
	stored := make(map[models.Slot]string, len(models.AllSlots))

	query, args, err := buildSelectSlotsQuery()
	if err == nil {
		err = l.readSlots(ctx, query, args, stored)
	}
	if err != nil {
		log.Warn().Err(err).
			Str("func", "localSettingsRepository.ReadBundle").
			Msg("local store is unreadable, using empty settings")
	}

	var bundle models.SettingsBundle
	for _, slot := range models.AllSlots {
		value, ok := stored[slot]
		if !ok {
			continue
		}

		var records models.Records
		if err := json.Unmarshal([]byte(value), &records); err != nil {
			log.Warn().Err(err).
				Str("func", "localSettingsRepository.ReadBundle").
				Str("slot", string(slot)).
				Msg("malformed slot value, using empty sequence")
			continue
		}
		bundle.SetSlot(slot, records)
	}

	return bundle.Normalize()
}

func (l *localSettingsRepository) readSlots(ctx context.Context, query string, args []any, dst map[models.Slot]string) error {
	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		dst[models.Slot(key)] = value
	}

	return rows.Err()
}

func (l *localSettingsRepository) WriteBundle(ctx context.Context, partial models.PartialBundle) error {
	log := logger.FromContext(ctx)

	for slot := range partial {
		if !slot.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownSlot, string(slot))
		}
	}
	if len(partial) == 0 {
		return nil
	}

	// encode everything first so a bad record never leaves a half-written tx
	writes := make([]slotWrite, 0, len(partial))
	for _, slot := range models.AllSlots {
		records, ok := partial[slot]
		if !ok {
			continue
		}

		encoded, err := json.Marshal(records)
		if err != nil {
			return fmt.Errorf("%w (slot=%s): %w", ErrEncodingRecords, slot, err)
		}

		query, args, err := buildUpsertSlotQuery(slot, string(encoded))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		writes = append(writes, slotWrite{query: query, args: args})
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localSettingsRepository.WriteBundle").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, w := range writes {
		if _, err := tx.ExecContext(ctx, w.query, w.args...); err != nil {
			log.Err(err).Str("func", "localSettingsRepository.WriteBundle").Msg("error writing slot")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "localSettingsRepository.WriteBundle").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localSettingsRepository) SetSlot(ctx context.Context, slot models.Slot, records models.Records) error {
	return l.WriteBundle(ctx, models.PartialBundle{slot: records})
}
