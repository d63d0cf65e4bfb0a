package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/redis/go-redis/v9"
)

// NewConnectRedis opens a Redis client and checks it with PING.
func NewConnectRedis(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Str("address", cfg.Address).Msg("redis is unreachable")
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrRedisUnavailable, err)
	}

	log.Info().Str("address", cfg.Address).Int("db", cfg.DB).Msg("connected to redis")
	return client, nil
}
