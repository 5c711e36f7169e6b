package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/espacio-evento/espacio-ui/config"
	"github.com/espacio-evento/espacio-ui/internal/adapters/memory"
	redisstore "github.com/espacio-evento/espacio-ui/internal/adapters/redis"
	"github.com/espacio-evento/espacio-ui/internal/ports"
)

// ConnectRedis establishes and verifies a Redis connection.
//
//nolint:ireturn // returning redis.UniversalClient keeps sentinel/cluster support flexible.
func ConnectRedis(cfg config.RedisConfig, logger *slog.Logger) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		if closeErr := client.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close redis client: %w", closeErr))
		}
		return nil, fmt.Errorf("ping redis: %w", pingErr)
	}

	if logger != nil {
		logger.Info("redis connected", "addr", cfg.Addr)
	}
	return client, nil
}

// BuildSessionStore picks the session store backing: Redis when
// configured, otherwise the in-memory store. The in-memory store loses
// sessions on restart, so outside development it is only accepted as an
// explicit choice (no Redis address set with DEV=true).
//
//nolint:ireturn // callers program against the SessionStore port.
func BuildSessionStore(cfg *config.AppConfig, logger *slog.Logger) (ports.SessionStore, redis.UniversalClient, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if !cfg.Redis.Enabled() {
		if !cfg.IsDev {
			return nil, nil, errors.New("REDIS_ADDR is required outside development mode")
		}
		logger.Warn("no redis configured, using in-memory session store")
		return memory.NewSessionStore(), nil, nil
	}

	client, err := ConnectRedis(cfg.Redis, logger)
	if err != nil {
		return nil, nil, err
	}
	return redisstore.NewSessionStore(client), client, nil
}
