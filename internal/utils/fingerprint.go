// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"
	"encoding/json"

	"github.com/MKhiriev/go-settings-sync/models"
	"golang.org/x/crypto/blake2b"
)

// fingerprintSize is the digest length in bytes; 8 bytes render as 16 hex
// characters, short enough for a status line.
const fingerprintSize = 8

// BundleFingerprint returns a short BLAKE2b digest of the normalized bundle.
// Two bundles with the same records in the same order share a fingerprint,
// which lets logs and the client UI show whether local and remote state match
// without dumping the records.
func BundleFingerprint(bundle models.SettingsBundle) string {
	data, err := json.Marshal(bundle.Normalize())
	if err != nil {
		return ""
	}

	return Fingerprint(data)
}

// Fingerprint returns the hex encoded BLAKE2b digest of data.
func Fingerprint(data []byte) string {
	h, err := blake2b.New(fingerprintSize, nil)
	if err != nil {
		return ""
	}
	h.Write(data)

	return hex.EncodeToString(h.Sum(nil))
}
