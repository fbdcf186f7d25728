package queries

import (
	"context"
	"time"

	"jersey-storefront/internal/domain/promotion"
	"jersey-storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromotionView is the admin wire form of a promotion.
type PromotionView struct {
	ID            uuid.UUID       `json:"id"`
	SaleType      string          `json:"sale_type"`
	TargetValue   string          `json:"target_value"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type PromotionQueries interface {
	ListPromotions(ctx context.Context, filter shared.PromotionFilter) ([]PromotionView, error)
	GetPromotion(ctx context.Context, id uuid.UUID) (*PromotionView, error)
}

type promotionQueriesImpl struct {
	repo shared.PromotionRepository
}

func NewPromotionQueries(repo shared.PromotionRepository) PromotionQueries {
	return &promotionQueriesImpl{repo: repo}
}

func (q *promotionQueriesImpl) ListPromotions(ctx context.Context, filter shared.PromotionFilter) ([]PromotionView, error) {
	promotions, err := q.repo.List(ctx, filter)
	if err != nil {
		return nil, shared.TranslatePromotionErr(err)
	}
	views := make([]PromotionView, 0, len(promotions))
	for _, p := range promotions {
		views = append(views, ToPromotionView(p))
	}
	return views, nil
}

func (q *promotionQueriesImpl) GetPromotion(ctx context.Context, id uuid.UUID) (*PromotionView, error) {
	p, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.TranslatePromotionErr(err)
	}
	view := ToPromotionView(*p)
	return &view, nil
}

func ToPromotionView(p promotion.Promotion) PromotionView {
	return PromotionView{
		ID:            p.ID(),
		SaleType:      p.Scope().Kind().String(),
		TargetValue:   p.Scope().TargetValue(),
		DiscountType:  p.Discount().Kind().String(),
		DiscountValue: p.Discount().Value(),
		StartDate:     p.ActiveFrom(),
		EndDate:       p.ActiveUntil(),
		IsActive:      p.Enabled(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}
