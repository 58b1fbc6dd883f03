//go:build unit

package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stayhub/internal/infra/cache"
	"stayhub/internal/pkg/errs"
	cachemock "stayhub/tests/mock/cache"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	ttl        = time.Hour
	pendingTTL = time.Minute
	key = "payment:guest:abc"
	k   = "idempotency:" + key
)

var errRedisDown = errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")

func newStore(t *testing.T) (*cache.RedisIdempotencyStore, *cachemock.MockCmdable) {
	t.Helper()
	client := cachemock.NewMockCmdable(gomock.NewController(t))
	return cache.NewRedisIdempotencyStore(client, ttl, pendingTTL), client
}

func TestRedisIdempotencyStore_Begin(t *testing.T) {
	ctx := context.Background()

	t.Run("success: fresh key is claimed", func(t *testing.T) {
		store, client := newStore(t)
		client.EXPECT().SetNX(ctx, k, "pending", pendingTTL).Return(redis.NewBoolResult(true, nil))

		prior, err := store.Begin(ctx, key)

		require.NoError(t, err)
		assert.Nil(t, prior)
	})

	t.Run("success: completed key returns the stored result", func(t *testing.T) {
		store, client := newStore(t)
		paymentID := uuid.New()
		client.EXPECT().SetNX(ctx, k, "pending", pendingTTL).Return(redis.NewBoolResult(false, nil))
		client.EXPECT().Get(ctx, k).Return(redis.NewStringResult(paymentID.String(), nil))

		prior, err := store.Begin(ctx, key)

		require.NoError(t, err)
		require.NotNil(t, prior)
		assert.Equal(t, paymentID, *prior)
	})

	t.Run("success: key that expired between calls is claimed on retry", func(t *testing.T) {
		store, client := newStore(t)
		gomock.InOrder(
			client.EXPECT().SetNX(ctx, k, "pending", pendingTTL).Return(redis.NewBoolResult(false, nil)),
			client.EXPECT().Get(ctx, k).Return(redis.NewStringResult("", redis.Nil)),
			client.EXPECT().SetNX(ctx, k, "pending", pendingTTL).Return(redis.NewBoolResult(true, nil)),
		)

		prior, err := store.Begin(ctx, key)

		require.NoError(t, err)
		assert.Nil(t, prior)
	})

	t.Run("error: key still pending", func(t *testing.T) {
		store, client := newStore(t)
		client.EXPECT().SetNX(ctx, k, "pending", pendingTTL).Return(redis.NewBoolResult(false, nil))
		client.EXPECT().Get(ctx, k).Return(redis.NewStringResult("pending", nil))

		_, err := store.Begin(ctx, key)

		assert.ErrorIs(t, err, errs.ErrIdempotencyInProgress)
	})

	t.Run("error: redis unavailable", func(t *testing.T) {
		store, client := newStore(t)
		client.EXPECT().SetNX(ctx, k, "pending", pendingTTL).Return(redis.NewBoolResult(false, errRedisDown))

		_, err := store.Begin(ctx, key)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrIdempotencyCheckFailed))
	})

	t.Run("error: corrupt stored value", func(t *testing.T) {
		store, client := newStore(t)
		client.EXPECT().SetNX(ctx, k, "pending", pendingTTL).Return(redis.NewBoolResult(false, nil))
		client.EXPECT().Get(ctx, k).Return(redis.NewStringResult("not-a-uuid", nil))

		_, err := store.Begin(ctx, key)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrIdempotencyCheckFailed))
		assert.Contains(t, err.Error(), "not-a-uuid")
	})
}

func TestRedisIdempotencyStore_PendingTTL(t *testing.T) {
	ctx := context.Background()

	t.Run("success: abandoned claim expires long before a completed result", func(t *testing.T) {
		client := cachemock.NewMockCmdable(gomock.NewController(t))
		store := cache.NewRedisIdempotencyStore(client, 24*time.Hour, 30*time.Second)
		paymentID := uuid.New()

		gomock.InOrder(
			client.EXPECT().SetNX(ctx, k, "pending", 30*time.Second).Return(redis.NewBoolResult(true, nil)),
			client.EXPECT().Set(ctx, k, paymentID.String(), 24*time.Hour).Return(redis.NewStatusResult("OK", nil)),
		)

		_, err := store.Begin(ctx, key)
		require.NoError(t, err)
		require.NoError(t, store.Complete(ctx, key, paymentID))
	})

	t.Run("success: unset pending ttl falls back to the result ttl", func(t *testing.T) {
		client := cachemock.NewMockCmdable(gomock.NewController(t))
		store := cache.NewRedisIdempotencyStore(client, ttl, 0)
		client.EXPECT().SetNX(ctx, k, "pending", ttl).Return(redis.NewBoolResult(true, nil))

		_, err := store.Begin(ctx, key)
		require.NoError(t, err)
	})
}

func TestRedisIdempotencyStore_CompleteAndRelease(t *testing.T) {
	ctx := context.Background()
	paymentID := uuid.New()

	t.Run("success: complete stores the result id", func(t *testing.T) {
		store, client := newStore(t)
		client.EXPECT().Set(ctx, k, paymentID.String(), ttl).Return(redis.NewStatusResult("OK", nil))

		require.NoError(t, store.Complete(ctx, key, paymentID))
	})

	t.Run("error: complete fails when redis is down", func(t *testing.T) {
		store, client := newStore(t)
		client.EXPECT().Set(ctx, k, paymentID.String(), ttl).Return(redis.NewStatusResult("", errRedisDown))

		err := store.Complete(ctx, key, paymentID)

		assert.True(t, errs.Is(err, errs.ErrIdempotencyCheckFailed))
	})

	t.Run("success: release deletes the key", func(t *testing.T) {
		store, client := newStore(t)
		client.EXPECT().Del(ctx, k).Return(redis.NewIntResult(1, nil))

		require.NoError(t, store.Release(ctx, key))
	})

	t.Run("error: release fails when redis is down", func(t *testing.T) {
		store, client := newStore(t)
		client.EXPECT().Del(ctx, k).Return(redis.NewIntResult(0, errRedisDown))

		err := store.Release(ctx, key)

		assert.True(t, errs.Is(err, errs.ErrIdempotencyCheckFailed))
	})
}

func TestNoopIdempotencyStore(t *testing.T) {
	ctx := context.Background()
	store := cache.NewNoopIdempotencyStore()

	prior, err := store.Begin(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, prior)
	assert.NoError(t, store.Complete(ctx, key, uuid.New()))
	assert.NoError(t, store.Release(ctx, key))
}
