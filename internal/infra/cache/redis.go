// Package cache provides the redis client and the read-through lodging cache.
package cache

import (
	"context"
	"log/slog"

	"lodging/config"
	"lodging/internal/domain/lifecycle"
	"lodging/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the parameters required for the redis client
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient returns nil when redis is not configured; callers then skip caching.
func NewRedisClient(params Params) *redis.Client {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, lodging cache disabled")

		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// An unreachable redis degrades to uncached reads.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, lodging reads will hit the database",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.Wrap(client.Close(), "failed to close redis client")
		},
	})

	return client
}
