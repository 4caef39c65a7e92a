// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-settings-sync/models"
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectSlotsQuery() (string, []any, error) {
	return sqlite.
		Select("slot_key", "value").
		From("local_slots").
		ToSql()
}

func buildUpsertSlotQuery(slot models.Slot, value string) (string, []any, error) {
	return sqlite.
		Insert("local_slots").
		Columns("slot_key", "value", "updated_at").
		Values(string(slot), value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT (slot_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

const (
	saveLocalSession = `
		INSERT INTO local_session (id, user_id, token, signed_in_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_id = excluded.user_id,
			token = excluded.token,
			signed_in_at = excluded.signed_in_at;`

	loadLocalSession = `
		SELECT user_id, token, signed_in_at
		FROM local_session
		WHERE id = 1;`

	clearLocalSession = `DELETE FROM local_session;`
)
