package shared

import (
	"context"
	"time"

	"jersey-storefront/internal/domain/cart"
	"jersey-storefront/internal/domain/catalog"
	"jersey-storefront/internal/domain/promotion"

	"github.com/google/uuid"
)

type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (catalog.Product, error)
	FindByIDs(ctx context.Context, ids []int64) (catalog.Index, error)
}

type PromotionRepository interface {
	List(ctx context.Context, filter PromotionFilter) ([]promotion.Promotion, error)
	ListActive(ctx context.Context, at time.Time) ([]promotion.Promotion, error)
	FindByID(ctx context.Context, id uuid.UUID) (*promotion.Promotion, error)
	LockByID(ctx context.Context, id uuid.UUID) (*promotion.Record, error)
	Create(ctx context.Context, p *promotion.Promotion) error
	Update(ctx context.Context, p *promotion.Promotion) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PromotionFilter narrows the admin listing. Zero values match everything.
type PromotionFilter struct {
	SaleType     string
	DiscountType string
	IsActive     *bool
	// Search matches a case-insensitive substring of the stored target_value.
	Search string
}

// CartStoreFactory hands out the durable store of one cart session.
type CartStoreFactory interface {
	ForSession(sessionID string) cart.Store
}
