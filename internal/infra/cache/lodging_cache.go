package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"lodging/config"
	deliverycontext "lodging/internal/delivery/context"
	"lodging/internal/domain/entity"
	"lodging/internal/domain/repository"
	"lodging/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "lodging"
	defaultTTL    = 5 * time.Minute
)

// store is the subset of redis commands the cache relies on.
type store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// cachedLodgingRepository serves FindByID from redis and invalidates on writes.
// Searches always reach the underlying repository.
type cachedLodgingRepository struct {
	repository.LodgingRepository

	store  store
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// DecorateLodgingRepository wraps base with the redis cache when a client is available.
func DecorateLodgingRepository(base repository.LodgingRepository, client *redis.Client, cfg *config.Config, logger *slog.Logger) repository.LodgingRepository {
	if client == nil {
		return base
	}

	prefix, ttl := defaultPrefix, defaultTTL
	if cfg.Redis != nil {
		if cfg.Redis.Prefix != "" {
			prefix = cfg.Redis.Prefix
		}
		if cfg.Redis.TTL > 0 {
			ttl = cfg.Redis.TTL
		}
	}

	return newCachedLodgingRepository(base, client, prefix, ttl, logger)
}

func newCachedLodgingRepository(base repository.LodgingRepository, s store, prefix string, ttl time.Duration, logger *slog.Logger) *cachedLodgingRepository {
	return &cachedLodgingRepository{
		LodgingRepository: base,
		store:             s,
		prefix:            prefix,
		ttl:               ttl,
		logger:            logger,
	}
}

func (r *cachedLodgingRepository) key(id uuid.UUID) string {
	return r.prefix + ":lodging:" + id.String()
}

func (r *cachedLodgingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lodging, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)
	key := r.key(id)

	raw, err := r.store.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var lodging entity.Lodging
		if err := json.Unmarshal(raw, &lodging); err == nil {
			return &lodging, nil
		}
		logger.Warn("Discarding undecodable cache entry", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		logger.Warn("Lodging cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	lodging, err := r.LodgingRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(lodging); err == nil {
		if err := r.store.Set(ctx, key, payload, r.ttl).Err(); err != nil {
			logger.Warn("Lodging cache write failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	return lodging, nil
}

func (r *cachedLodgingRepository) Update(ctx context.Context, lodging *entity.Lodging) error {
	if err := r.LodgingRepository.Update(ctx, lodging); err != nil {
		return err
	}
	r.invalidate(ctx, lodging.ID)

	return nil
}

func (r *cachedLodgingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.LodgingRepository.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)

	return nil
}

func (r *cachedLodgingRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.store.Del(ctx, r.key(id)).Err(); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, r.logger).Warn("Lodging cache invalidation failed",
			slog.String("lodging_id", id.String()),
			slog.Any("error", err),
		)
	}
}
