package cache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Gitkbc/Gen-Ai-Tourism/internal/infra"
	"github.com/Gitkbc/Gen-Ai-Tourism/internal/repositories"
	"github.com/Gitkbc/Gen-Ai-Tourism/pkg/config"
)

var Module = fx.Provide(provideCacheStore)

// provideCacheStore prefers Postgres when configured; otherwise the TTL'd
// in-memory store, which is enough for a single instance.
func provideCacheStore(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (repositories.CacheStore, error) {
	if cfg.PostgresURL == "" {
		logger.Info("itinerary cache: in-memory store")
		return repositories.NewMemoryCacheStore(24 * time.Hour), nil
	}

	db, err := infra.InitPostgresql(cfg.PostgresURL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})

	logger.Info("itinerary cache: postgres store")
	return repositories.NewPostgresCacheStore(db), nil
}
