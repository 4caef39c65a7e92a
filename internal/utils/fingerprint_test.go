// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-settings-sync/models"
	"github.com/stretchr/testify/assert"
)

func TestBundleFingerprint(t *testing.T) {
	a := models.SettingsBundle{Folders: models.Records{json.RawMessage(`{"id":1}`)}}
	b := models.SettingsBundle{Folders: models.Records{json.RawMessage(`{"id":1}`)}}
	c := models.SettingsBundle{Folders: models.Records{json.RawMessage(`{"id":2}`)}}

	assert.Len(t, BundleFingerprint(a), 2*fingerprintSize)
	assert.Equal(t, BundleFingerprint(a), BundleFingerprint(b))
	assert.NotEqual(t, BundleFingerprint(a), BundleFingerprint(c))
}

func TestBundleFingerprint_NilAndEmptySlotsMatch(t *testing.T) {
	empty := models.SettingsBundle{}.Normalize()

	assert.Equal(t, BundleFingerprint(models.SettingsBundle{}), BundleFingerprint(empty))
}

func TestFingerprint_Deterministic(t *testing.T) {
	assert.Equal(t, Fingerprint([]byte("abc")), Fingerprint([]byte("abc")))
	assert.NotEqual(t, Fingerprint([]byte("abc")), Fingerprint([]byte("abd")))
}
