// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Each token class must have its own secret so that a token of one class
// can never verify as another.
func (cfg *StructuredConfig) validate() error {
	app := cfg.App

	if app.AccessTokenSecret == "" || app.VerificationTokenSecret == "" || app.ResetTokenSecret == "" {
		return ErrMissingTokenSecrets
	}
	if app.AccessTokenSecret == app.VerificationTokenSecret ||
		app.AccessTokenSecret == app.ResetTokenSecret ||
		app.VerificationTokenSecret == app.ResetTokenSecret {
		return ErrSharedTokenSecrets
	}

	if app.TokenIssuer == "" || app.AccessTokenTTL <= 0 || app.ResetTokenTTL <= 0 || app.VerificationTokenTTL < 0 {
		return ErrInvalidAppConfigs
	}
	if app.DefaultRole == "" || app.SuperuserRole == "" {
		return ErrInvalidAppConfigs
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	case DriverMemory:
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.MailQueueSize <= 0 || cfg.Workers.MailWorkers <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// Supported values of [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
	DriverMemory   = "memory"
)
