//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"jersey-storefront/internal/domain/cart"
	"jersey-storefront/internal/domain/catalog"
	"jersey-storefront/internal/domain/promotion"
	"jersey-storefront/internal/infra"
	"jersey-storefront/internal/infra/cartstore"
	"jersey-storefront/internal/pkg/clock"
	"jersey-storefront/internal/usecase/queries"
	"jersey-storefront/internal/usecase/shared"
	"jersey-storefront/tests/common/builder"
	"jersey-storefront/tests/common/testutil"
	sharedmock "jersey-storefront/tests/mock/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const sessionID = "0d7f2c3e-52b8-4e0e-a1a4-53c1f3f1a9a2"

type cartQueryFixture struct {
	q          queries.CartQueries
	products   *sharedmock.MockProductRepository
	promotions *sharedmock.MockPromotionRepository
	backend    *cartstore.MemoryBackend
}

func newCartQueryFixture(t *testing.T) cartQueryFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	products := sharedmock.NewMockProductRepository(ctrl)
	promotions := sharedmock.NewMockPromotionRepository(ctrl)
	backend := cartstore.NewMemoryBackend()
	logger := testutil.DiscardLogger()
	clk := clock.NewFixedClock(builder.Now)
	q := queries.NewCartQueries(
		products,
		promotions,
		shared.NewCartSessions(backend, clk, time.Hour, logger),
		promotion.NewResolver(logger, 2),
		clk,
		logger,
	)
	return cartQueryFixture{q: q, products: products, promotions: promotions, backend: backend}
}

// seed writes a cart with a stock line for product 7 (qty 2, cached 800) and a custom line (qty 1, 1499).
func (f cartQueryFixture) seed(t *testing.T) {
	t.Helper()
	err := f.backend.ForSession(sessionID).Save(context.Background(), []cart.Line{
		{ID: "stock-7-m-aaaa", Kind: cart.KindStock, ProductID: 7, Size: cart.SizeM, UnitPrice: decimal.NewFromInt(800), Quantity: 2},
		{
			ID:        "kai-9-l-bbbb",
			Kind:      cart.KindCustom,
			Custom:    &cart.CustomDescriptor{Design: "classic", PlayerName: "Kai", PlayerNumber: "9"},
			Size:      cart.SizeL,
			UnitPrice: decimal.RequireFromString("1499.00"),
			Quantity:  1,
		},
	})
	require.NoError(t, err)
}

func TestCartQueries_GetCart(t *testing.T) {
	ctx := context.Background()
	product := builder.NewProductBuilder().WithID(7).WithBasePrice(1000).WithSalePrice(900).MustBuild()

	t.Run("success: stock lines are repriced with live promotions", func(t *testing.T) {
		f := newCartQueryFixture(t)
		f.seed(t)
		promo := builder.NewPromotionBuilder().WithScope(promotion.TeamScope(product.TeamID())).WithPercent(25).Build()

		f.products.EXPECT().FindByIDs(ctx, []int64{7}).Return(catalog.NewIndex(product), nil)
		f.promotions.EXPECT().ListActive(ctx, builder.Now).Return([]promotion.Promotion{promo}, nil)

		view, err := f.q.GetCart(ctx, sessionID)

		require.NoError(t, err)
		assert.True(t, view.PricesLive)
		assert.Equal(t, 3, view.ItemCount)
		require.Len(t, view.Lines, 2)

		stock := view.Lines[0]
		assert.Equal(t, "catalog", stock.PriceSource)
		assert.True(t, stock.UnitPrice.Equal(decimal.NewFromInt(750)), stock.UnitPrice.String())
		assert.True(t, stock.Subtotal.Equal(decimal.NewFromInt(1500)))
		require.NotNil(t, stock.PromotionID)
		assert.Equal(t, promo.ID(), *stock.PromotionID)
		require.NotNil(t, stock.ProductName)
		assert.Equal(t, product.Name(), *stock.ProductName)

		custom := view.Lines[1]
		assert.Equal(t, "snapshot", custom.PriceSource)
		assert.Nil(t, custom.ProductID)
		assert.True(t, custom.UnitPrice.Equal(decimal.RequireFromString("1499")))

		assert.Equal(t, "2999.00", view.Total.StringFixed(2))
	})

	t.Run("success: refreshed unit prices are saved", func(t *testing.T) {
		f := newCartQueryFixture(t)
		f.seed(t)
		f.products.EXPECT().FindByIDs(ctx, gomock.Any()).Return(catalog.NewIndex(product), nil)
		f.promotions.EXPECT().ListActive(ctx, gomock.Any()).Return(nil, nil)

		_, err := f.q.GetCart(ctx, sessionID)
		require.NoError(t, err)

		lines, err := f.backend.ForSession(sessionID).Load(ctx)
		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.True(t, lines[0].UnitPrice.Equal(decimal.NewFromInt(1000)), lines[0].UnitPrice.String())
	})

	t.Run("degraded: catalog outage uses the latest resolved price", func(t *testing.T) {
		f := newCartQueryFixture(t)
		f.seed(t)
		promo := builder.NewPromotionBuilder().WithScope(promotion.TeamScope(product.TeamID())).WithPercent(25).Build()
		gomock.InOrder(
			f.products.EXPECT().FindByIDs(ctx, gomock.Any()).Return(catalog.NewIndex(product), nil),
			f.products.EXPECT().FindByIDs(ctx, gomock.Any()).Return(nil, errors.New("catalog down")),
		)
		f.promotions.EXPECT().ListActive(ctx, gomock.Any()).Return([]promotion.Promotion{promo}, nil).Times(2)

		_, err := f.q.GetCart(ctx, sessionID)
		require.NoError(t, err)
		view, err := f.q.GetCart(ctx, sessionID)

		require.NoError(t, err)
		assert.Equal(t, "cached", view.Lines[0].PriceSource)
		assert.True(t, view.Lines[0].UnitPrice.Equal(decimal.NewFromInt(750)), view.Lines[0].UnitPrice.String())
	})

	t.Run("degraded: promotion outage prices from display hints", func(t *testing.T) {
		f := newCartQueryFixture(t)
		f.seed(t)
		f.products.EXPECT().FindByIDs(ctx, gomock.Any()).Return(catalog.NewIndex(product), nil)
		f.promotions.EXPECT().ListActive(ctx, gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to list active promotions", errors.New("pool closed")))

		view, err := f.q.GetCart(ctx, sessionID)

		require.NoError(t, err)
		assert.False(t, view.PricesLive)
		assert.True(t, view.Lines[0].UnitPrice.Equal(decimal.NewFromInt(900)))
		assert.Nil(t, view.Lines[0].PromotionID)
		assert.Equal(t, "3299.00", view.Total.StringFixed(2))
	})

	t.Run("degraded: catalog outage uses cached line prices", func(t *testing.T) {
		f := newCartQueryFixture(t)
		f.seed(t)
		f.products.EXPECT().FindByIDs(ctx, gomock.Any()).Return(nil, errors.New("catalog down"))
		f.promotions.EXPECT().ListActive(ctx, gomock.Any()).Return(nil, nil)

		view, err := f.q.GetCart(ctx, sessionID)

		require.NoError(t, err)
		assert.Equal(t, "cached", view.Lines[0].PriceSource)
		assert.True(t, view.Lines[0].UnitPrice.Equal(decimal.NewFromInt(800)))
		assert.Nil(t, view.Lines[0].ProductName)
		assert.Equal(t, "3099.00", view.Total.StringFixed(2))
	})

	t.Run("success: an empty cart skips the catalog", func(t *testing.T) {
		f := newCartQueryFixture(t)
		f.promotions.EXPECT().ListActive(ctx, gomock.Any()).Return(nil, nil)

		view, err := f.q.GetCart(ctx, sessionID)

		require.NoError(t, err)
		assert.NotNil(t, view.Lines)
		assert.Empty(t, view.Lines)
		assert.Equal(t, 0, view.ItemCount)
		assert.True(t, view.Total.IsZero())
	})
}
