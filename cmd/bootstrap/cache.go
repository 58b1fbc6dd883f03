package bootstrap

import (
	"context"
	"log/slog"

	"stayhub/internal/infra/cache"
	"stayhub/internal/pkg/config"
	"stayhub/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewIdempotencyStore,
	),
)

// NewIdempotencyStore falls back to a no-op store when redis is disabled, so
// Idempotency-Key headers are accepted but not deduplicated.
func NewIdempotencyStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.IdempotencyStore, error) {
	if !cfg.Redis.Enabled {
		logger.Info("redis disabled, idempotency keys are not enforced")
		return cache.NewNoopIdempotencyStore(), nil
	}

	client, cleanup, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return cache.NewRedisIdempotencyStore(client, cfg.Redis.IdempotencyTTL, cfg.Redis.PendingTTL), nil
}
