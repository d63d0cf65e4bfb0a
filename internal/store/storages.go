package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages groups the repositories and shared clients of the running process.
type Storages struct {
	UserRepository UserRepository

	// Redis is nil when no Redis address is configured.
	Redis *redis.Client

	db *DB
}

// NewStorages opens the credential store selected by cfg.DB.Driver, applies
// migrations for SQL drivers and connects to Redis when configured.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	storages := &Storages{}

	switch cfg.DB.Driver {
	case config.DriverMemory, "":
		log.Info().Msg("using in-memory credential store")
		storages.UserRepository = NewMemoryUserRepository()
	case config.DriverPostgres, config.DriverSQLite:
		db, err := openSQL(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		storages.db = db
		storages.UserRepository = NewUserRepository(db, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DB.Driver)
	}

	if cfg.Redis.Address != "" {
		client, err := NewConnectRedis(ctx, cfg.Redis, log)
		if err != nil {
			_ = storages.Close()
			return nil, err
		}
		storages.Redis = client
	}

	return storages, nil
}

func openSQL(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var (
		db  *DB
		err error
	)

	if cfg.Driver == config.DriverPostgres {
		db, err = NewConnectPostgres(ctx, cfg, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Close releases the database connection and the Redis client, if any.
func (s *Storages) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.Redis != nil {
		errs = append(errs, s.Redis.Close())
	}
	return errors.Join(errs...)
}
