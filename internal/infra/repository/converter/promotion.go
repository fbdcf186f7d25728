package converter

import (
	"strings"
	"time"

	"jersey-storefront/internal/domain/promotion"
	"jersey-storefront/internal/infra/pgquery"
	"jersey-storefront/internal/pkg/errs"
	"jersey-storefront/internal/pkg/pgconv"
	"jersey-storefront/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SaleFilterToParams maps empty filter fields to NULL so they match every row.
func SaleFilterToParams(f shared.PromotionFilter) pgquery.ListSalesParams {
	var params pgquery.ListSalesParams
	if f.SaleType != "" {
		params.SaleType = pgtype.Text{String: f.SaleType, Valid: true}
	}
	if f.DiscountType != "" {
		params.DiscountType = pgtype.Text{String: f.DiscountType, Valid: true}
	}
	if f.IsActive != nil {
		params.IsActive = pgtype.Bool{Bool: *f.IsActive, Valid: true}
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		params.Search = pgtype.Text{String: likeEscaper.Replace(search), Valid: true}
	}
	return params
}

// PromotionFromSale decodes a stored sale row. Rows whose target or discount cannot be
// parsed are reported as errors so callers can skip them.
func PromotionFromSale(row pgquery.Sale) (promotion.Promotion, error) {
	scope, err := promotion.ParseTarget(row.SaleType, row.TargetValue)
	if err != nil {
		return promotion.Promotion{}, errs.Wrapf(err, "sale %s target", row.ID)
	}
	value, err := pgconv.DecimalFromNumeric(row.DiscountValue)
	if err != nil {
		return promotion.Promotion{}, errs.Wrapf(err, "sale %s discount value", row.ID)
	}
	discount, err := promotion.ParseDiscount(row.DiscountType, value)
	if err != nil {
		return promotion.Promotion{}, errs.Wrapf(err, "sale %s discount", row.ID)
	}

	return promotion.ReconstructPromotion(
		row.ID,
		scope,
		discount,
		pgconv.TimeFromPgtype(row.StartDate),
		pgconv.TimeFromPgtype(row.EndDate),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

// RecordFromSale keeps the stored rules as text. Only the discount value must decode.
func RecordFromSale(row pgquery.Sale) (promotion.Record, error) {
	value, err := pgconv.DecimalFromNumeric(row.DiscountValue)
	if err != nil {
		return promotion.Record{}, errs.Wrapf(err, "sale %s discount value", row.ID)
	}
	return promotion.Record{
		ID:            row.ID,
		SaleType:      row.SaleType,
		TargetValue:   row.TargetValue,
		DiscountType:  row.DiscountType,
		DiscountValue: value,
		ActiveFrom:    pgconv.TimeFromPgtype(row.StartDate),
		ActiveUntil:   pgconv.TimeFromPgtype(row.EndDate),
		Enabled:       row.IsActive,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func PromotionToCreateParams(p *promotion.Promotion) pgquery.CreateSaleParams {
	return pgquery.CreateSaleParams{
		ID:            p.ID(),
		SaleType:      p.Scope().Kind().String(),
		TargetValue:   p.Scope().TargetValue(),
		DiscountType:  p.Discount().Kind().String(),
		DiscountValue: pgconv.DecimalToNumeric(p.Discount().Value()),
		StartDate:     pgconv.TimeToPgtype(p.ActiveFrom()),
		EndDate:       pgconv.TimeToPgtype(p.ActiveUntil()),
		IsActive:      p.Enabled(),
		CreatedAt:     pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func PromotionToUpdateParams(p *promotion.Promotion, updatedAt time.Time) pgquery.UpdateSaleParams {
	return pgquery.UpdateSaleParams{
		ID:            p.ID(),
		SaleType:      p.Scope().Kind().String(),
		TargetValue:   p.Scope().TargetValue(),
		DiscountType:  p.Discount().Kind().String(),
		DiscountValue: pgconv.DecimalToNumeric(p.Discount().Value()),
		StartDate:     pgconv.TimeToPgtype(p.ActiveFrom()),
		EndDate:       pgconv.TimeToPgtype(p.ActiveUntil()),
		IsActive:      p.Enabled(),
		UpdatedAt:     pgconv.TimeToPgtype(updatedAt),
	}
}
