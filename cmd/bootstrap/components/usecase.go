package components

import (
	"log/slog"

	"jersey-storefront/internal/domain/promotion"
	"jersey-storefront/internal/pkg/clock"
	"jersey-storefront/internal/pkg/config"
	"jersey-storefront/internal/usecase/commands"
	"jersey-storefront/internal/usecase/queries"
	"jersey-storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(stores shared.CartStoreFactory, clk clock.Clock, cfg config.Config, logger *slog.Logger) *shared.CartSessions {
		return shared.NewCartSessions(stores, clk, cfg.Cart.TTL, logger)
	},
	func(cfg config.Config, logger *slog.Logger) *promotion.Resolver {
		return promotion.NewResolver(logger, cfg.Cart.MinorUnits)
	},
	func(cfg config.Config) (commands.CartConfig, error) {
		price, err := cfg.Cart.CustomJerseyUnitPrice()
		if err != nil {
			return commands.CartConfig{}, err
		}
		return commands.CartConfig{CustomUnitPrice: price}, nil
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCartUseCase,
		commands.NewPromotionUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCartQueries,
		queries.NewProductQueries,
		queries.NewPromotionQueries,
	),
)
