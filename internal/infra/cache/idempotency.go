package cache

import (
	"context"
	"errors"
	"time"

	"stayhub/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	idempotencyKeyPrefix = "idempotency:"
	pendingMarker        = "pending"
)

// Cmdable is the subset of the redis client the store needs.
type Cmdable interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisIdempotencyStore claims a key with a short-lived pending marker and
// replaces it with the result id, kept for ttl, on Complete.
type RedisIdempotencyStore struct {
	client     Cmdable
	ttl        time.Duration
	pendingTTL time.Duration
}

func NewRedisIdempotencyStore(client Cmdable, ttl, pendingTTL time.Duration) *RedisIdempotencyStore {
	if pendingTTL <= 0 || pendingTTL > ttl {
		pendingTTL = ttl
	}
	return &RedisIdempotencyStore{client: client, ttl: ttl, pendingTTL: pendingTTL}
}

func (s *RedisIdempotencyStore) Begin(ctx context.Context, key string) (*uuid.UUID, error) {
	k := idempotencyKeyPrefix + key

	// A key can expire between SetNX and Get, so try the claim twice.
	for range 2 {
		claimed, err := s.client.SetNX(ctx, k, pendingMarker, s.pendingTTL).Result()
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "failed to claim idempotency key"), errs.ErrIdempotencyCheckFailed)
		}
		if claimed {
			return nil, nil
		}

		val, err := s.client.Get(ctx, k).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "failed to read idempotency key"), errs.ErrIdempotencyCheckFailed)
		}
		if val == pendingMarker {
			return nil, errs.ErrIdempotencyInProgress
		}

		id, err := uuid.Parse(val)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "corrupt idempotency result %q", val), errs.ErrIdempotencyCheckFailed)
		}
		return &id, nil
	}
	return nil, errs.ErrIdempotencyInProgress
}

func (s *RedisIdempotencyStore) Complete(ctx context.Context, key string, resultID uuid.UUID) error {
	if err := s.client.Set(ctx, idempotencyKeyPrefix+key, resultID.String(), s.ttl).Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to store idempotency result"), errs.ErrIdempotencyCheckFailed)
	}
	return nil
}

func (s *RedisIdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, idempotencyKeyPrefix+key).Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to release idempotency key"), errs.ErrIdempotencyCheckFailed)
	}
	return nil
}

// NoopIdempotencyStore is used when redis is disabled. Every request runs.
type NoopIdempotencyStore struct{}

func NewNoopIdempotencyStore() NoopIdempotencyStore { return NoopIdempotencyStore{} }

func (NoopIdempotencyStore) Begin(context.Context, string) (*uuid.UUID, error) { return nil, nil }
func (NoopIdempotencyStore) Complete(context.Context, string, uuid.UUID) error { return nil }
func (NoopIdempotencyStore) Release(context.Context, string) error             { return nil }
