// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-settings-sync/internal/utils"
	"github.com/MKhiriev/go-settings-sync/models"
)

// Field name constants used to restrict validation of a settings record to
// a subset of its fields.
const (
	// FieldUserID targets the owner of the record. It must be a UUID.
	FieldUserID = "user_id"

	// FieldRecords targets every record of every slot. Each one must be a
	// non-empty JSON document.
	FieldRecords = "records"
)

var allSettingsFields = []string{FieldUserID, FieldRecords}

type SettingsValidator struct {
}

func NewSettingsValidator() Validator {
	return &SettingsValidator{}
}

// Validate accepts [models.RemoteRecord] and [models.SettingsBundle] (or
// pointers to them). Without fields every field is checked. A bundle only
// has records, so fields are ignored for it.
func (v *SettingsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RemoteRecord:
		return v.validateRemoteRecord(ctx, value, fields...)
	case *models.RemoteRecord:
		return v.validateRemoteRecord(ctx, *value, fields...)

	case models.SettingsBundle:
		return v.validateBundle(ctx, value)
	case *models.SettingsBundle:
		return v.validateBundle(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *SettingsValidator) validateRemoteRecord(ctx context.Context, record models.RemoteRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = allSettingsFields
	}

	for _, field := range fields {
		switch field {
		case FieldUserID:
			if !utils.IsValidUserID(record.UserID) {
				return fmt.Errorf("%w: %q", ErrInvalidUserID, record.UserID)
			}
		case FieldRecords:
			if err := v.validateBundle(ctx, record.SettingsBundle); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *SettingsValidator) validateBundle(_ context.Context, bundle models.SettingsBundle) error {
	for _, slot := range models.AllSlots {
		for i, record := range bundle.Slot(slot) {
			if len(record) == 0 || !json.Valid(record) {
				return fmt.Errorf("%w: %s[%d]", ErrInvalidRecord, slot, i)
			}
		}
	}
	return nil
}
