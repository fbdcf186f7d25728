package queries

import (
	"context"
	"log/slog"

	"jersey-storefront/internal/domain/cart"
	"jersey-storefront/internal/domain/catalog"
	"jersey-storefront/internal/domain/promotion"
	"jersey-storefront/internal/pkg/clock"
	"jersey-storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartView struct {
	Lines      []CartLineView  `json:"lines"`
	ItemCount  int             `json:"item_count"`
	Total      decimal.Decimal `json:"total"`
	PricesLive bool            `json:"prices_live"`
}

type CartLineView struct {
	ID          string                 `json:"id"`
	Kind        string                 `json:"kind"`
	ProductID   *int64                 `json:"product_id,omitempty"`
	ProductName *string                `json:"product_name,omitempty"`
	Custom      *cart.CustomDescriptor `json:"custom,omitempty"`
	Size        string                 `json:"size"`
	Quantity    int                    `json:"quantity"`
	UnitPrice   decimal.Decimal        `json:"unit_price"`
	Subtotal    decimal.Decimal        `json:"subtotal"`
	PromotionID *uuid.UUID             `json:"promotion_id,omitempty"`
	PriceSource string                 `json:"price_source"`
}

type CartQueries interface {
	GetCart(ctx context.Context, sessionID string) (*CartView, error)
}

type cartQueriesImpl struct {
	products   shared.ProductRepository
	promotions shared.PromotionRepository
	sessions   *shared.CartSessions
	resolver   *promotion.Resolver
	clock      clock.Clock
	logger     *slog.Logger
}

func NewCartQueries(
	products shared.ProductRepository,
	promotions shared.PromotionRepository,
	sessions *shared.CartSessions,
	resolver *promotion.Resolver,
	clk clock.Clock,
	logger *slog.Logger,
) CartQueries {
	return &cartQueriesImpl{
		products:   products,
		promotions: promotions,
		sessions:   sessions,
		resolver:   resolver,
		clock:      clk,
		logger:     logger,
	}
}

// GetCart prices the session cart. Catalog and promotion outages degrade pricing
// instead of failing the read. Refreshed unit prices and lines left unsaved by an
// earlier failed write are saved on the way out; a failed save does not fail the read.
func (q *cartQueriesImpl) GetCart(ctx context.Context, sessionID string) (*CartView, error) {
	logger := q.logger.With(slog.String("session_id", sessionID))
	c, release := q.sessions.Acquire(sessionID)
	defer release()
	lines := c.Lines(ctx)

	var productIDs []int64
	for _, l := range lines {
		if l.Kind == cart.KindStock {
			productIDs = append(productIDs, l.ProductID)
		}
	}

	products := catalog.Index{}
	if len(productIDs) > 0 {
		found, err := q.products.FindByIDs(ctx, productIDs)
		if err != nil {
			logger.WarnContext(ctx, "catalog unavailable, using cached line prices",
				slog.String("error", err.Error()))
		} else {
			products = found
		}
	}

	now := q.clock.Now()
	snapshot := activeSnapshot(ctx, q.promotions, now, logger)
	totals := c.Total(ctx, products, q.resolver, snapshot, now)
	if err := c.Flush(ctx); err != nil {
		logger.WarnContext(ctx, "cart prices not saved", slog.String("error", err.Error()))
	}

	return toCartView(totals, products, snapshot.Live), nil
}

func toCartView(totals cart.Totals, products catalog.Index, live bool) *CartView {
	view := &CartView{
		Lines:      make([]CartLineView, 0, len(totals.Lines)),
		ItemCount:  totals.Quantity,
		Total:      totals.Amount,
		PricesLive: live,
	}
	for _, pl := range totals.Lines {
		lv := CartLineView{
			ID:          pl.Line.ID,
			Kind:        string(pl.Line.Kind),
			Custom:      pl.Line.Custom,
			Size:        pl.Line.Size.String(),
			Quantity:    pl.Line.Quantity,
			UnitPrice:   pl.UnitPrice,
			Subtotal:    pl.Subtotal,
			PromotionID: pl.PromotionID,
			PriceSource: string(pl.Source),
		}
		if pl.Line.Kind == cart.KindStock {
			id := pl.Line.ProductID
			lv.ProductID = &id
			if p, ok := products.Product(id); ok {
				name := p.Name()
				lv.ProductName = &name
			}
		}
		view.Lines = append(view.Lines, lv)
	}
	return view
}
