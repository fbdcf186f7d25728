package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"jersey-storefront/internal/domain/promotion"
	"jersey-storefront/internal/infra"
	"jersey-storefront/internal/infra/pgquery"
	"jersey-storefront/internal/infra/repository/converter"
	"jersey-storefront/internal/pkg/pgconv"
	"jersey-storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const uniqueViolation = "23505"

type PromotionQueries interface {
	ListSales(ctx context.Context, db pgquery.DBTX, arg pgquery.ListSalesParams) ([]pgquery.Sale, error)
	ListActiveSales(ctx context.Context, db pgquery.DBTX, at pgtype.Timestamptz) ([]pgquery.Sale, error)
	GetSale(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Sale, error)
	GetSaleForUpdate(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Sale, error)
	CreateSale(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateSaleParams) (pgquery.Sale, error)
	UpdateSale(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateSaleParams) (pgquery.Sale, error)
	DeleteSale(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (int64, error)
}

type PromotionRepository struct {
	queries PromotionQueries
	db      pgquery.DBTX
	logger  *slog.Logger
}

func NewPromotionRepository(queries PromotionQueries, db pgquery.DBTX, logger *slog.Logger) *PromotionRepository {
	return &PromotionRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

// List returns the stored promotions matching filter, newest first.
func (r *PromotionRepository) List(ctx context.Context, filter shared.PromotionFilter) ([]promotion.Promotion, error) {
	rows, err := r.queries.ListSales(ctx, r.db, converter.SaleFilterToParams(filter))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promotions", err)
	}
	return r.decodeAll(ctx, rows), nil
}

// ListActive returns the enabled promotions whose window contains at.
func (r *PromotionRepository) ListActive(ctx context.Context, at time.Time) ([]promotion.Promotion, error) {
	rows, err := r.queries.ListActiveSales(ctx, r.db, pgconv.TimeToPgtype(at))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active promotions", err)
	}
	return r.decodeAll(ctx, rows), nil
}

func (r *PromotionRepository) FindByID(ctx context.Context, id uuid.UUID) (*promotion.Promotion, error) {
	row, err := r.queries.GetSale(ctx, r.db, id)
	return r.decodeOne(row, err)
}

// LockByID reads the stored record and holds a row lock until the surrounding transaction ends.
// The rules are not parsed, so malformed records can be locked and rewritten.
func (r *PromotionRepository) LockByID(ctx context.Context, id uuid.UUID) (*promotion.Record, error) {
	row, err := r.queries.GetSaleForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, notFoundOr(err, "failed to lock promotion")
	}
	rec, err := converter.RecordFromSale(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode promotion", err, infra.KindDecodeFailure)
	}
	return &rec, nil
}

func (r *PromotionRepository) Create(ctx context.Context, p *promotion.Promotion) error {
	_, err := r.queries.CreateSale(ctx, r.db, converter.PromotionToCreateParams(p))
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("promotion already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create promotion", err)
	}
	return nil
}

func (r *PromotionRepository) Update(ctx context.Context, p *promotion.Promotion) error {
	_, err := r.queries.UpdateSale(ctx, r.db, converter.PromotionToUpdateParams(p, p.UpdatedAt()))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update promotion", err)
	}
	return nil
}

func (r *PromotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteSale(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete promotion", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PromotionRepository) decodeOne(row pgquery.Sale, err error) (*promotion.Promotion, error) {
	if err != nil {
		return nil, notFoundOr(err, "failed to get promotion by id")
	}
	p, err := converter.PromotionFromSale(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode promotion", err, infra.KindDecodeFailure)
	}
	return &p, nil
}

// decodeAll skips rows that do not describe a usable promotion.
func (r *PromotionRepository) decodeAll(ctx context.Context, rows []pgquery.Sale) []promotion.Promotion {
	out := make([]promotion.Promotion, 0, len(rows))
	for _, row := range rows {
		p, err := converter.PromotionFromSale(row)
		if err != nil {
			r.logger.WarnContext(ctx, "skipping malformed promotion",
				slog.String("promotion_id", row.ID.String()),
				slog.String("error", err.Error()))
			continue
		}
		out = append(out, p)
	}
	return out
}

func notFoundOr(err error, msg string) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(msg, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
