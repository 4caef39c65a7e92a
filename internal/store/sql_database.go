// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/migrations"
)

// ErrorClassificator decides whether a failed database call is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB is a *sql.DB bound to one dialect, its migrations and its error
// classification rules.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Healthy pings the database.
func (db *DB) Healthy(ctx context.Context) error {
	return db.PingContext(ctx)
}

// wrapError attaches sentinel to err, or [ErrStorageUnavailable] when the
// classifier deems err transient.
func (db *DB) wrapError(err error, sentinel error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
