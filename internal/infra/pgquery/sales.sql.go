package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const saleColumns = `id, sale_type, target_value, discount_type, discount_value,
       start_date, end_date, is_active, created_at, updated_at`

func scanSale(row pgx.Row) (Sale, error) {
	var i Sale
	err := row.Scan(
		&i.ID,
		&i.SaleType,
		&i.TargetValue,
		&i.DiscountType,
		&i.DiscountValue,
		&i.StartDate,
		&i.EndDate,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectSales(rows pgx.Rows) ([]Sale, error) {
	defer rows.Close()
	items := []Sale{}
	for rows.Next() {
		i, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type ListSalesParams struct {
	SaleType     pgtype.Text
	DiscountType pgtype.Text
	IsActive     pgtype.Bool
	Search       pgtype.Text
}

const listSales = `SELECT ` + saleColumns + ` FROM sales
WHERE ($1::text IS NULL OR sale_type = $1)
  AND ($2::text IS NULL OR discount_type = $2)
  AND ($3::boolean IS NULL OR is_active = $3)
  AND ($4::text IS NULL OR target_value ILIKE '%' || $4 || '%')
ORDER BY created_at DESC, id`

func (q *Queries) ListSales(ctx context.Context, db DBTX, arg ListSalesParams) ([]Sale, error) {
	rows, err := db.Query(ctx, listSales, arg.SaleType, arg.DiscountType, arg.IsActive, arg.Search)
	if err != nil {
		return nil, err
	}
	return collectSales(rows)
}

const listActiveSales = `SELECT ` + saleColumns + ` FROM sales
WHERE is_active AND start_date <= $1 AND end_date > $1
ORDER BY id`

func (q *Queries) ListActiveSales(ctx context.Context, db DBTX, at pgtype.Timestamptz) ([]Sale, error) {
	rows, err := db.Query(ctx, listActiveSales, at)
	if err != nil {
		return nil, err
	}
	return collectSales(rows)
}

const getSale = `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`

func (q *Queries) GetSale(ctx context.Context, db DBTX, id uuid.UUID) (Sale, error) {
	return scanSale(db.QueryRow(ctx, getSale, id))
}

const getSaleForUpdate = getSale + ` FOR UPDATE`

func (q *Queries) GetSaleForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Sale, error) {
	return scanSale(db.QueryRow(ctx, getSaleForUpdate, id))
}

type CreateSaleParams struct {
	ID            uuid.UUID
	SaleType      string
	TargetValue   string
	DiscountType  string
	DiscountValue pgtype.Numeric
	StartDate     pgtype.Timestamptz
	EndDate       pgtype.Timestamptz
	IsActive      bool
	CreatedAt     pgtype.Timestamptz
}

const createSale = `INSERT INTO sales (
    id, sale_type, target_value, discount_type, discount_value,
    start_date, end_date, is_active, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
RETURNING ` + saleColumns

func (q *Queries) CreateSale(ctx context.Context, db DBTX, arg CreateSaleParams) (Sale, error) {
	return scanSale(db.QueryRow(ctx, createSale,
		arg.ID,
		arg.SaleType,
		arg.TargetValue,
		arg.DiscountType,
		arg.DiscountValue,
		arg.StartDate,
		arg.EndDate,
		arg.IsActive,
		arg.CreatedAt,
	))
}

type UpdateSaleParams struct {
	ID            uuid.UUID
	SaleType      string
	TargetValue   string
	DiscountType  string
	DiscountValue pgtype.Numeric
	StartDate     pgtype.Timestamptz
	EndDate       pgtype.Timestamptz
	IsActive      bool
	UpdatedAt     pgtype.Timestamptz
}

const updateSale = `UPDATE sales SET
    sale_type = $2,
    target_value = $3,
    discount_type = $4,
    discount_value = $5,
    start_date = $6,
    end_date = $7,
    is_active = $8,
    updated_at = $9
WHERE id = $1
RETURNING ` + saleColumns

func (q *Queries) UpdateSale(ctx context.Context, db DBTX, arg UpdateSaleParams) (Sale, error) {
	return scanSale(db.QueryRow(ctx, updateSale,
		arg.ID,
		arg.SaleType,
		arg.TargetValue,
		arg.DiscountType,
		arg.DiscountValue,
		arg.StartDate,
		arg.EndDate,
		arg.IsActive,
		arg.UpdatedAt,
	))
}

const deleteSale = `DELETE FROM sales WHERE id = $1`

func (q *Queries) DeleteSale(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteSale, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
