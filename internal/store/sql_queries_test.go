// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/MKhiriev/go-settings-sync/models"
	"github.com/stretchr/testify/require"
)

const testUserID = "0f8fad5b-d9cb-469f-a165-70867728950e"

func Test_buildFindSettingsQuery(t *testing.T) {
	query, args, err := buildFindSettingsQuery(testUserID)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, testUserID, args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "from user_settings")
	require.Contains(t, q, "where user_id = $1")
	for _, column := range settingsColumns {
		require.Contains(t, q, column)
	}
}

func Test_buildEnsureUserQuery(t *testing.T) {
	query, args, err := buildEnsureUserQuery(testUserID)
	require.NoError(t, err)

	require.Equal(t, []any{testUserID}, args)
	require.Contains(t, query, "INSERT INTO users")
	require.Contains(t, query, "ON CONFLICT (user_id) DO NOTHING")
}

func Test_buildUpsertSettingsQuery(t *testing.T) {
	bundle := models.SettingsBundle{
		Folders: models.Records{json.RawMessage(`{"id":1}`)},
	}.Normalize()

	query, args, err := buildUpsertSettingsQuery(testUserID, bundle)
	require.NoError(t, err)

	// user id + five slots, in AllSlots order
	require.Len(t, args, 6)
	require.Equal(t, testUserID, args[0])
	require.Equal(t, `[{"id":1}]`, args[1])
	for _, arg := range args[2:] {
		require.Equal(t, "[]", arg)
	}

	require.Contains(t, query, "INSERT INTO user_settings")
	require.Contains(t, query, "$6")
	require.Contains(t, query, "ON CONFLICT (user_id) DO UPDATE SET")
	require.Contains(t, query, "charts = EXCLUDED.charts")
	require.Contains(t, query, "updated_at = NOW()")
	require.Contains(t, query, "RETURNING user_id, folders, action_buttons, trainings, statistics, charts, updated_at")
}

func Test_buildUpsertSettingsQuery_NilSlotsBecomeEmptyArrays(t *testing.T) {
	_, args, err := buildUpsertSettingsQuery(testUserID, models.SettingsBundle{})
	require.NoError(t, err)

	for _, arg := range args[1:] {
		require.Equal(t, "[]", arg)
	}
}

func Test_buildUpsertSettingsQuery_InvalidRecord(t *testing.T) {
	bundle := models.SettingsBundle{
		Charts: models.Records{json.RawMessage(`{broken`)},
	}

	_, _, err := buildUpsertSettingsQuery(testUserID, bundle)
	require.ErrorIs(t, err, ErrEncodingRecords)
}
