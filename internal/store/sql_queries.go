// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-settings-sync/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// settingsColumns is the column order used by every SELECT and RETURNING of
// user_settings; scanRemoteRecord relies on it.
var settingsColumns = []string{
	"user_id",
	"folders",
	"action_buttons",
	"trainings",
	"statistics",
	"charts",
	"updated_at",
}

// slotColumns maps every slot to its user_settings column.
var slotColumns = map[models.Slot]string{
	models.SlotFolders:       "folders",
	models.SlotActionButtons: "action_buttons",
	models.SlotTrainings:     "trainings",
	models.SlotStatistics:    "statistics",
	models.SlotCharts:        "charts",
}

func buildFindSettingsQuery(userID string) (string, []any, error) {
	return psql.
		Select(settingsColumns...).
		From("user_settings").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildEnsureUserQuery(userID string) (string, []any, error) {
	return psql.
		Insert("users").
		Columns("user_id").
		Values(userID).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSql()
}

// buildUpsertSettingsQuery replaces every slot of the user's row in one
// statement and returns the stored row.
func buildUpsertSettingsQuery(userID string, bundle models.SettingsBundle) (string, []any, error) {
	columns := []string{"user_id"}
	values := []any{userID}
	updates := ""

	for _, slot := range models.AllSlots {
		encoded, err := json.Marshal(bundle.Slot(slot))
		if err != nil {
			return "", nil, fmt.Errorf("%w (slot=%s): %w", ErrEncodingRecords, slot, err)
		}

		column := slotColumns[slot]
		columns = append(columns, column)
		values = append(values, string(encoded))
		updates += fmt.Sprintf("%s = EXCLUDED.%s, ", column, column)
	}

	return psql.
		Insert("user_settings").
		Columns(columns...).
		Values(values...).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET "+updates+"updated_at = NOW()").
		Suffix("RETURNING "+strings.Join(settingsColumns, ", ")).
		ToSql()
}
