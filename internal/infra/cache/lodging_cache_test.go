package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lodging/config"
	"lodging/internal/domain/entity"
	"lodging/internal/domain/repository"
	mockRepo "lodging/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-memory stand-in for the redis commands used by the cache.
type memoryStore struct {
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (s *memoryStore) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "get", key)
	switch v, ok := s.data[key]; {
	case s.getErr != nil:
		cmd.SetErr(s.getErr)
	case !ok:
		cmd.SetErr(redis.Nil)
	default:
		cmd.SetVal(string(v))
	}

	return cmd
}

func (s *memoryStore) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	s.data[key] = value.([]byte)
	s.ttls[key] = expiration
	cmd := redis.NewStatusCmd(ctx, "set", key)
	cmd.SetVal("OK")

	return cmd
}

func (s *memoryStore) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, key := range keys {
		if _, ok := s.data[key]; ok {
			delete(s.data, key)
			n++
		}
	}
	cmd := redis.NewIntCmd(ctx, "del")
	cmd.SetVal(n)

	return cmd
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleLodging() *entity.Lodging {
	return &entity.Lodging{
		ID:            uuid.New(),
		Name:          "Hotel Sol",
		City:          "Madrid",
		Category:      entity.CategoryHotel,
		Price:         120,
		StarRating:    4,
		AvailableFrom: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		AvailableTo:   time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCachedLodgingRepository_ReadThrough(t *testing.T) {
	ctx := context.Background()
	base := mockRepo.NewMockLodgingRepository(t)
	store := newMemoryStore()
	repo := newCachedLodgingRepository(base, store, "test", time.Minute, discardLogger())
	lodging := sampleLodging()

	// Only the first read reaches the database.
	base.EXPECT().FindByID(ctx, lodging.ID).Return(lodging, nil).Once()

	first, err := repo.FindByID(ctx, lodging.ID)
	require.NoError(t, err)
	second, err := repo.FindByID(ctx, lodging.ID)
	require.NoError(t, err)

	assert.Equal(t, lodging.Name, first.Name)
	assert.Equal(t, lodging.ID, second.ID)
	assert.True(t, lodging.AvailableTo.Equal(second.AvailableTo))
	assert.Equal(t, time.Minute, store.ttls["test:lodging:"+lodging.ID.String()])
}

func TestCachedLodgingRepository_NotFoundIsNotCached(t *testing.T) {
	ctx := context.Background()
	base := mockRepo.NewMockLodgingRepository(t)
	store := newMemoryStore()
	repo := newCachedLodgingRepository(base, store, "test", time.Minute, discardLogger())
	id := uuid.New()

	base.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrLodgingNotFound).Twice()

	for range 2 {
		_, err := repo.FindByID(ctx, id)
		assert.ErrorIs(t, err, repository.ErrLodgingNotFound)
	}
	assert.Empty(t, store.data)
}

func TestCachedLodgingRepository_StoreFailureFallsBack(t *testing.T) {
	ctx := context.Background()
	base := mockRepo.NewMockLodgingRepository(t)
	store := newMemoryStore()
	store.getErr = errors.New("connection refused")
	repo := newCachedLodgingRepository(base, store, "test", time.Minute, discardLogger())
	lodging := sampleLodging()

	base.EXPECT().FindByID(ctx, lodging.ID).Return(lodging, nil)

	got, err := repo.FindByID(ctx, lodging.ID)

	require.NoError(t, err)
	assert.Equal(t, lodging.ID, got.ID)
}

func TestCachedLodgingRepository_WritesInvalidate(t *testing.T) {
	ctx := context.Background()
	base := mockRepo.NewMockLodgingRepository(t)
	store := newMemoryStore()
	repo := newCachedLodgingRepository(base, store, "test", time.Minute, discardLogger())
	lodging := sampleLodging()
	key := "test:lodging:" + lodging.ID.String()

	store.data[key] = []byte(`{}`)
	base.EXPECT().Update(ctx, lodging).Return(nil).Once()
	require.NoError(t, repo.Update(ctx, lodging))
	assert.NotContains(t, store.data, key)

	store.data[key] = []byte(`{}`)
	base.EXPECT().Delete(ctx, lodging.ID).Return(nil).Once()
	require.NoError(t, repo.Delete(ctx, lodging.ID))
	assert.NotContains(t, store.data, key)

	// A failed write leaves the entry alone.
	store.data[key] = []byte(`{}`)
	base.EXPECT().Delete(ctx, lodging.ID).Return(repository.ErrLodgingNotFound).Once()
	assert.Error(t, repo.Delete(ctx, lodging.ID))
	assert.Contains(t, store.data, key)
}

func TestCachedLodgingRepository_SearchPassesThrough(t *testing.T) {
	ctx := context.Background()
	base := mockRepo.NewMockLodgingRepository(t)
	repo := newCachedLodgingRepository(base, newMemoryStore(), "test", time.Minute, discardLogger())
	filter := repository.LodgingFilter{City: "Madrid"}

	base.EXPECT().Search(ctx, filter).Return([]*entity.Lodging{sampleLodging()}, nil)

	got, err := repo.Search(ctx, filter)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestDecorateLodgingRepository_NoClient(t *testing.T) {
	base := mockRepo.NewMockLodgingRepository(t)

	got := DecorateLodgingRepository(base, nil, &config.Config{}, discardLogger())

	assert.Same(t, base, got)
}
