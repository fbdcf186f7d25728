package components

import (
	"jersey-storefront/internal/handler"
	"jersey-storefront/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewProductHandler,
		api.NewPromotionHandler,
	),
	fx.Invoke(handler.NewRouter),
)
