package request

import (
	"time"

	"jersey-storefront/internal/usecase/commands"
	"jersey-storefront/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type PromotionRequest struct {
	SaleType      string          `json:"sale_type" binding:"required"`
	TargetValue   string          `json:"target_value"`
	DiscountType  string          `json:"discount_type" binding:"required"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	StartDate     time.Time       `json:"start_date" binding:"required"`
	EndDate       time.Time       `json:"end_date" binding:"required"`
	IsActive      *bool           `json:"is_active,omitempty"`
}

func (r PromotionRequest) ToCommand() commands.PromotionInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return commands.PromotionInput{
		SaleType:      r.SaleType,
		TargetValue:   r.TargetValue,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		IsActive:      active,
	}
}

type PatchPromotionRequest struct {
	SaleType      *string          `json:"sale_type,omitempty"`
	TargetValue   *string          `json:"target_value,omitempty"`
	DiscountType  *string          `json:"discount_type,omitempty"`
	DiscountValue *decimal.Decimal `json:"discount_value,omitempty"`
	StartDate     *time.Time       `json:"start_date,omitempty"`
	EndDate       *time.Time       `json:"end_date,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
}

func (r PatchPromotionRequest) ToCommand() commands.PatchPromotionRequest {
	return commands.PatchPromotionRequest{
		SaleType:      r.SaleType,
		TargetValue:   r.TargetValue,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		IsActive:      r.IsActive,
	}
}

// PromotionListQuery holds the admin listing filters from the query string.
type PromotionListQuery struct {
	SaleType     string `form:"sale_type" binding:"omitempty,oneof=ALL PLAYER TEAM LEAGUE"`
	DiscountType string `form:"discount_type" binding:"omitempty,oneof=FLAT PERCENTAGE"`
	IsActive     *bool  `form:"is_active"`
	Search       string `form:"search" binding:"max=100"`
}

func (q PromotionListQuery) ToFilter() shared.PromotionFilter {
	return shared.PromotionFilter{
		SaleType:     q.SaleType,
		DiscountType: q.DiscountType,
		IsActive:     q.IsActive,
		Search:       q.Search,
	}
}
