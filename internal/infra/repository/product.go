package repository

import (
	"context"
	"log/slog"

	"jersey-storefront/internal/domain/catalog"
	"jersey-storefront/internal/infra"
	"jersey-storefront/internal/infra/pgquery"
	"jersey-storefront/internal/infra/repository/converter"
	"jersey-storefront/internal/pkg/pgconv"
)

type ProductQueries interface {
	GetJerseyByID(ctx context.Context, db pgquery.DBTX, id int64) (pgquery.JerseyRow, error)
	ListJerseysByIDs(ctx context.Context, db pgquery.DBTX, ids []int64) ([]pgquery.JerseyRow, error)
}

type ProductRepository struct {
	queries ProductQueries
	db      pgquery.DBTX
	logger  *slog.Logger
}

func NewProductRepository(queries ProductQueries, db pgquery.DBTX, logger *slog.Logger) *ProductRepository {
	return &ProductRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (catalog.Product, error) {
	row, err := r.queries.GetJerseyByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return catalog.Product{}, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return catalog.Product{}, infra.WrapRepoErr("failed to get product by id", err)
	}

	product, err := converter.ProductFromJerseyRow(row)
	if err != nil {
		return catalog.Product{}, infra.WrapRepoErr("failed to decode product", err, infra.KindDecodeFailure)
	}
	return product, nil
}

// FindByIDs loads the requested products. Ids with no row, and rows that cannot be
// decoded, are absent from the result.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []int64) (catalog.Index, error) {
	if len(ids) == 0 {
		return catalog.Index{}, nil
	}

	rows, err := r.queries.ListJerseysByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products by ids", err)
	}

	products := make([]catalog.Product, 0, len(rows))
	for _, row := range rows {
		product, err := converter.ProductFromJerseyRow(row)
		if err != nil {
			r.logger.WarnContext(ctx, "skipping undecodable product",
				slog.Int64("product_id", row.ID),
				slog.String("error", err.Error()))
			continue
		}
		products = append(products, product)
	}
	return catalog.NewIndex(products...), nil
}
