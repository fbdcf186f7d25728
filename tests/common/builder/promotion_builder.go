//go:build unit || e2e

package builder

import (
	"time"

	"jersey-storefront/internal/domain/promotion"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reference instant shared by pricing tests.
var Now = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

type PromotionBuilder struct {
	ID          uuid.UUID
	Scope       promotion.Scope
	Discount    promotion.Discount
	ActiveFrom  time.Time
	ActiveUntil time.Time
	Enabled     bool
}

func NewPromotionBuilder() *PromotionBuilder {
	return &PromotionBuilder{
		ID:          uuid.New(),
		Scope:       promotion.AllScope(),
		Discount:    promotion.PercentageDiscount(decimal.NewFromInt(10)),
		ActiveFrom:  Now.Add(-24 * time.Hour),
		ActiveUntil: Now.Add(24 * time.Hour),
		Enabled:     true,
	}
}

func (b *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(b)
	return b
}

func (b *PromotionBuilder) WithScope(s promotion.Scope) *PromotionBuilder {
	b.Scope = s
	return b
}

func (b *PromotionBuilder) WithPercent(pct int64) *PromotionBuilder {
	b.Discount = promotion.PercentageDiscount(decimal.NewFromInt(pct))
	return b
}

func (b *PromotionBuilder) WithFlat(amount int64) *PromotionBuilder {
	b.Discount = promotion.FlatDiscount(decimal.NewFromInt(amount))
	return b
}

func (b *PromotionBuilder) WithWindow(from, until time.Time) *PromotionBuilder {
	b.ActiveFrom = from
	b.ActiveUntil = until
	return b
}

func (b *PromotionBuilder) Disabled() *PromotionBuilder {
	b.Enabled = false
	return b
}

// Build reconstructs without validation so malformed fixtures are possible.
func (b *PromotionBuilder) Build() promotion.Promotion {
	return promotion.ReconstructPromotion(b.ID, b.Scope, b.Discount, b.ActiveFrom, b.ActiveUntil, b.Enabled, Now, Now)
}

func (b *PromotionBuilder) BuildDomain() (*promotion.Promotion, error) {
	return promotion.NewPromotion(b.ID, b.Scope, b.Discount, b.ActiveFrom, b.ActiveUntil, b.Enabled, Now)
}
