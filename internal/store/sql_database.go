// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/migrations"
	sq "github.com/Masterminds/squirrel"
)

const (
	retryAttempts = 3
	retryBackoff  = 50 * time.Millisecond
)

// DB is an open SQL connection together with the dialect details the
// repositories need: goose dialect, squirrel placeholder format and an
// optional classifier of transient driver errors.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder using the placeholder format
// of the underlying driver.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// withRetry runs fn until it succeeds, returns an error classified as
// [NonRetryable], the context is done or the attempts are exhausted.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= retryAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt).Msg("retrying transient database error")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}

	return err
}
