package components

import (
	"jersey-storefront/internal/infra/pgquery"
	"jersey-storefront/internal/infra/repository"
	"jersey-storefront/internal/infra/uow"
	"jersey-storefront/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	repositoryModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Product
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.ProductQueries)),
		),
		fx.Annotate(
			repository.NewProductRepository,
			fx.As(new(shared.ProductRepository)),
		),
		// Promotion
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.PromotionQueries)),
		),
		fx.Annotate(
			repository.NewPromotionRepository,
			fx.As(new(shared.PromotionRepository)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgquery.Queries {
	return pgquery.New()
}

func NewDBTX(pool *pgxpool.Pool) pgquery.DBTX {
	return pool
}
