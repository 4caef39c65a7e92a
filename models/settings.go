// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Slot names one of the five independent record sequences that make up a
// [SettingsBundle]. The string value is the key the slot is stored under in
// the device-local store.
type Slot string

const (
	SlotFolders       Slot = "folders"
	SlotActionButtons Slot = "action-buttons"
	SlotTrainings     Slot = "training-sessions"
	SlotStatistics    Slot = "training-statistics"
	SlotCharts        Slot = "user-charts"
)

// AllSlots lists every slot in a fixed order. Code that walks the bundle
// (reads, writes, counts) iterates this slice so the order is stable.
var AllSlots = []Slot{
	SlotFolders,
	SlotActionButtons,
	SlotTrainings,
	SlotStatistics,
	SlotCharts,
}

// Valid reports whether s is one of [AllSlots].
func (s Slot) Valid() bool {
	for _, slot := range AllSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Records is an ordered sequence of opaque JSON documents. The sync layer
// never looks inside a record; it only cares about presence and count.
type Records []json.RawMessage

// MarshalJSON encodes a nil Records as an empty JSON array so that a missing
// slot never leaks out as null.
func (r Records) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]json.RawMessage(r))
}

// SettingsBundle is the unit of synchronization: five named slots that are
// always read and written as a whole by the sync engine.
type SettingsBundle struct {
	Folders       Records `json:"folders"`
	ActionButtons Records `json:"action_buttons"`
	Trainings     Records `json:"trainings"`
	Statistics    Records `json:"statistics"`
	Charts        Records `json:"charts"`
}

// Slot returns the records stored in the given slot. Unknown slots yield nil.
func (b SettingsBundle) Slot(slot Slot) Records {
	switch slot {
	case SlotFolders:
		return b.Folders
	case SlotActionButtons:
		return b.ActionButtons
	case SlotTrainings:
		return b.Trainings
	case SlotStatistics:
		return b.Statistics
	case SlotCharts:
		return b.Charts
	}
	return nil
}

// SetSlot replaces the records of the given slot. Unknown slots are ignored.
func (b *SettingsBundle) SetSlot(slot Slot, records Records) {
	switch slot {
	case SlotFolders:
		b.Folders = records
	case SlotActionButtons:
		b.ActionButtons = records
	case SlotTrainings:
		b.Trainings = records
	case SlotStatistics:
		b.Statistics = records
	case SlotCharts:
		b.Charts = records
	}
}

// Normalize replaces every nil slot with an empty sequence and returns the
// bundle for chaining.
func (b SettingsBundle) Normalize() SettingsBundle {
	for _, slot := range AllSlots {
		if b.Slot(slot) == nil {
			b.SetSlot(slot, Records{})
		}
	}
	return b
}

// HasData reports whether at least one slot holds a record.
func (b SettingsBundle) HasData() bool {
	for _, slot := range AllSlots {
		if len(b.Slot(slot)) > 0 {
			return true
		}
	}
	return false
}

// Counts returns the number of records per slot.
func (b SettingsBundle) Counts() map[Slot]int {
	counts := make(map[Slot]int, len(AllSlots))
	for _, slot := range AllSlots {
		counts[slot] = len(b.Slot(slot))
	}
	return counts
}

// Partial converts the bundle into a [PartialBundle] carrying all five slots.
func (b SettingsBundle) Partial() PartialBundle {
	partial := make(PartialBundle, len(AllSlots))
	for _, slot := range AllSlots {
		records := b.Slot(slot)
		if records == nil {
			records = Records{}
		}
		partial[slot] = records
	}
	return partial
}

// PartialBundle carries a subset of slots. A key that is present means
// "overwrite this slot in full"; an absent key means "leave it untouched".
type PartialBundle map[Slot]Records

// RemoteRecord is the single authoritative settings row of one user.
type RemoteRecord struct {
	UserID string `json:"user_id"`
	SettingsBundle
	UpdatedAt time.Time `json:"updated_at"`
}
