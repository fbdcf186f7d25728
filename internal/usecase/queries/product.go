package queries

import (
	"context"
	"log/slog"

	"jersey-storefront/internal/domain/promotion"
	"jersey-storefront/internal/pkg/clock"
	"jersey-storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PriceQuoteView struct {
	ProductID   int64           `json:"product_id"`
	Name        string          `json:"name"`
	BasePrice   decimal.Decimal `json:"base_price"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discounted  bool            `json:"discounted"`
	PromotionID *uuid.UUID      `json:"promotion_id,omitempty"`
	PricesLive  bool            `json:"prices_live"`
}

type ProductQueries interface {
	QuotePrice(ctx context.Context, productID int64) (*PriceQuoteView, error)
}

type productQueriesImpl struct {
	products   shared.ProductRepository
	promotions shared.PromotionRepository
	resolver   *promotion.Resolver
	clock      clock.Clock
	logger     *slog.Logger
}

func NewProductQueries(
	products shared.ProductRepository,
	promotions shared.PromotionRepository,
	resolver *promotion.Resolver,
	clk clock.Clock,
	logger *slog.Logger,
) ProductQueries {
	return &productQueriesImpl{
		products:   products,
		promotions: promotions,
		resolver:   resolver,
		clock:      clk,
		logger:     logger,
	}
}

func (q *productQueriesImpl) QuotePrice(ctx context.Context, productID int64) (*PriceQuoteView, error) {
	product, err := q.products.FindByID(ctx, productID)
	if err != nil {
		return nil, shared.TranslateProductErr(err)
	}

	now := q.clock.Now()
	snapshot := activeSnapshot(ctx, q.promotions, now, q.logger)
	res := q.resolver.ResolveWithHints(product, snapshot, now)

	view := &PriceQuoteView{
		ProductID:  product.ID(),
		Name:       product.Name(),
		BasePrice:  product.BasePrice(),
		UnitPrice:  res.UnitPrice,
		Discounted: res.UnitPrice.LessThan(product.BasePrice()),
		PricesLive: snapshot.Live,
	}
	if res.Applied != nil {
		id := res.Applied.ID()
		view.PromotionID = &id
	}
	return view, nil
}
