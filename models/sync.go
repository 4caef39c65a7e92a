// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncOutcome tells which branch a single reconcile run took.
type SyncOutcome int

const (
	// OutcomeSkipped means no identity was present and nothing was touched.
	OutcomeSkipped SyncOutcome = iota

	// OutcomeAppliedRemote means the remote record overwrote the local slots
	// and a reload was triggered.
	OutcomeAppliedRemote

	// OutcomeUploadedInitial means no remote record existed and the local
	// bundle was uploaded as the first one.
	OutcomeUploadedInitial

	// OutcomeNothingToSync means both sides were empty.
	OutcomeNothingToSync

	// OutcomeFailed means a repository or local write failed and the run was
	// abandoned.
	OutcomeFailed
)

func (o SyncOutcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeAppliedRemote:
		return "applied-remote"
	case OutcomeUploadedInitial:
		return "uploaded-initial"
	case OutcomeNothingToSync:
		return "nothing-to-sync"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// SyncReport describes the latest finished reconcile run.
type SyncReport struct {
	UserID  string
	Outcome SyncOutcome
	Err     error
	At      time.Time
}
