package bootstrap

import (
	"context"
	"log/slog"

	"jersey-storefront/internal/infra/cartstore"
	"jersey-storefront/internal/infra/db"
	"jersey-storefront/internal/pkg/config"
	"jersey-storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

var CartStoreModule = fx.Module("cartstore",
	fx.Provide(
		NewCartStore,
	),
)

// NewCartStore connects redis only when carts are stored there.
func NewCartStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.CartStoreFactory, error) {
	if cfg.Cart.Store == "memory" {
		logger.Warn("cart store is in-memory; carts are lost on restart")
		return cartstore.NewMemoryBackend(), nil
	}

	client, cleanup, err := db.ConnectRedis(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return cartstore.NewRedisBackend(client, cfg.Cart.KeyPrefix, cfg.Cart.TTL, logger), nil
}
