// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSettingsNotFound is returned when the user has no remote settings
	// record yet. It is the only "not found" signal of the server storage.
	ErrSettingsNotFound = errors.New("settings were not found")

	// ErrStorageUnavailable wraps transient failures (lost connection,
	// serialization failure, deadlock) after which the request may be
	// retried by the caller.
	ErrStorageUnavailable = errors.New("storage is temporarily unavailable")

	// ErrUnknownSlot is returned by local writes that name a slot outside
	// [models.AllSlots]. Nothing is written in that case.
	ErrUnknownSlot = errors.New("unknown settings slot")

	// ErrLocalSessionNotFound is returned when no session is persisted on the
	// device.
	ErrLocalSessionNotFound = errors.New("local session was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan settings row")

	// ErrEncodingRecords is returned when a slot cannot be serialized to JSON
	// before it is written.
	ErrEncodingRecords = errors.New("failed to encode settings records")
)
