package bootstrap

import (
	"jersey-storefront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CartStoreModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
