//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"jersey-storefront/internal/domain/cart"
	"jersey-storefront/internal/domain/catalog"
	"jersey-storefront/internal/domain/promotion"
	"jersey-storefront/internal/infra"
	"jersey-storefront/internal/infra/cartstore"
	"jersey-storefront/internal/pkg/clock"
	"jersey-storefront/internal/pkg/errs"
	"jersey-storefront/internal/usecase/commands"
	"jersey-storefront/internal/usecase/queries"
	"jersey-storefront/internal/usecase/shared"
	"jersey-storefront/tests/common/builder"
	"jersey-storefront/tests/common/testutil"
	cartmock "jersey-storefront/tests/mock/cart"
	sharedmock "jersey-storefront/tests/mock/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const sessionID = "2f1d7a64-8a5c-4f5e-9d59-0c8a1c6b7e11"

var customUnitPrice = decimal.RequireFromString("1499.00")

type cartFixture struct {
	uc       commands.CartCommands
	products *sharedmock.MockProductRepository
	backend  *cartstore.MemoryBackend
}

func newCartFixture(t *testing.T) cartFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	products := sharedmock.NewMockProductRepository(ctrl)
	backend := cartstore.NewMemoryBackend()
	uc := commands.NewCartUseCase(
		products,
		shared.NewCartSessions(backend, clock.NewFixedClock(builder.Now), time.Hour, testutil.DiscardLogger()),
		commands.CartConfig{CustomUnitPrice: customUnitPrice},
		testutil.DiscardLogger(),
	)
	return cartFixture{uc: uc, products: products, backend: backend}
}

func descriptor(name string) cart.CustomDescriptor {
	return cart.CustomDescriptor{
		Design:       "classic",
		PlayerName:   name,
		PlayerNumber: "9",
		PrimaryColor: "navy",
	}
}

// =============================================================================
// AddStockItem
// =============================================================================

func TestCartUseCase_AddStockItem(t *testing.T) {
	ctx := context.Background()
	product := builder.NewProductBuilder().WithID(7).MustBuild()

	t.Run("success: same product and size merge into one line", func(t *testing.T) {
		f := newCartFixture(t)
		f.products.EXPECT().FindByID(ctx, int64(7)).Return(product, nil).Times(2)

		first, err := f.uc.AddStockItem(ctx, sessionID, commands.AddStockItemRequest{ProductID: 7, Size: "m", Quantity: 1})
		require.NoError(t, err)
		second, err := f.uc.AddStockItem(ctx, sessionID, commands.AddStockItemRequest{ProductID: 7, Size: "M", Quantity: 2})
		require.NoError(t, err)

		require.NotNil(t, second.Line)
		assert.Equal(t, first.Line.ID, second.Line.ID)
		assert.Equal(t, 3, second.Line.Quantity)
		assert.Equal(t, 3, second.ItemCount)
		assert.True(t, strings.HasPrefix(second.Line.ID, "stock-7-m-"), second.Line.ID)
	})

	t.Run("success: a different size is a separate line", func(t *testing.T) {
		f := newCartFixture(t)
		f.products.EXPECT().FindByID(ctx, int64(7)).Return(product, nil).Times(2)

		a, err := f.uc.AddStockItem(ctx, sessionID, commands.AddStockItemRequest{ProductID: 7, Size: "M", Quantity: 1})
		require.NoError(t, err)
		b, err := f.uc.AddStockItem(ctx, sessionID, commands.AddStockItemRequest{ProductID: 7, Size: "L", Quantity: 1})
		require.NoError(t, err)

		assert.NotEqual(t, a.Line.ID, b.Line.ID)
		assert.Equal(t, 2, b.ItemCount)
	})

	t.Run("success: non-positive quantity adds nothing", func(t *testing.T) {
		f := newCartFixture(t)
		f.products.EXPECT().FindByID(ctx, int64(7)).Return(product, nil)

		res, err := f.uc.AddStockItem(ctx, sessionID, commands.AddStockItemRequest{ProductID: 7, Size: "M", Quantity: 0})

		require.NoError(t, err)
		assert.Nil(t, res.Line)
		assert.Equal(t, 0, res.ItemCount)
	})

	t.Run("error: unknown size is rejected before the catalog lookup", func(t *testing.T) {
		f := newCartFixture(t)

		_, err := f.uc.AddStockItem(ctx, sessionID, commands.AddStockItemRequest{ProductID: 7, Size: "XXXXL", Quantity: 1})

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidCartItem))
	})

	t.Run("error: unknown product", func(t *testing.T) {
		f := newCartFixture(t)
		f.products.EXPECT().FindByID(ctx, int64(404)).
			Return(product, infra.WrapRepoErr("product not found", errors.New("no rows"), infra.KindNotFound))

		_, err := f.uc.AddStockItem(ctx, sessionID, commands.AddStockItemRequest{ProductID: 404, Size: "M", Quantity: 1})

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrProductNotFound))
	})

	t.Run("success: concurrent adds in one session are not lost", func(t *testing.T) {
		f := newCartFixture(t)
		f.products.EXPECT().FindByID(gomock.Any(), int64(7)).Return(product, nil).AnyTimes()

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.uc.AddStockItem(ctx, sessionID, commands.AddStockItemRequest{ProductID: 7, Size: "S", Quantity: 1})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		lines, err := f.backend.ForSession(sessionID).Load(ctx)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 20, lines[0].Quantity)
	})
}

// =============================================================================
// AddCustomItem
// =============================================================================

func TestCartUseCase_AddCustomItem(t *testing.T) {
	ctx := context.Background()

	t.Run("success: snapshots the configured unit price", func(t *testing.T) {
		f := newCartFixture(t)

		res, err := f.uc.AddCustomItem(ctx, sessionID, commands.AddCustomItemRequest{Descriptor: descriptor("Kai"), Size: "xl", Quantity: 1})

		require.NoError(t, err)
		require.NotNil(t, res.Line)
		assert.Equal(t, cart.KindCustom, res.Line.Kind)
		assert.True(t, res.Line.UnitPrice.Equal(customUnitPrice))
		assert.Equal(t, cart.SizeXL, res.Line.Size)
	})

	t.Run("success: identical customizations merge, different ones do not", func(t *testing.T) {
		f := newCartFixture(t)

		a, err := f.uc.AddCustomItem(ctx, sessionID, commands.AddCustomItemRequest{Descriptor: descriptor("Kai"), Size: "M", Quantity: 1})
		require.NoError(t, err)
		b, err := f.uc.AddCustomItem(ctx, sessionID, commands.AddCustomItemRequest{Descriptor: descriptor("Kai"), Size: "M", Quantity: 1})
		require.NoError(t, err)
		c, err := f.uc.AddCustomItem(ctx, sessionID, commands.AddCustomItemRequest{Descriptor: descriptor("Mia"), Size: "M", Quantity: 1})
		require.NoError(t, err)

		assert.Equal(t, a.Line.ID, b.Line.ID)
		assert.Equal(t, 2, b.Line.Quantity)
		assert.NotEqual(t, a.Line.ID, c.Line.ID)
		assert.Equal(t, 3, c.ItemCount)
	})

	t.Run("error: unknown size", func(t *testing.T) {
		f := newCartFixture(t)

		_, err := f.uc.AddCustomItem(ctx, sessionID, commands.AddCustomItemRequest{Descriptor: descriptor("Kai"), Size: "huge", Quantity: 1})

		assert.True(t, errs.Is(err, errs.ErrInvalidCartItem))
	})

	t.Run("error: descriptor is validated", func(t *testing.T) {
		testCases := []struct {
			name   string
			mutate func(*cart.CustomDescriptor)
		}{
			{name: "blank player name", mutate: func(d *cart.CustomDescriptor) { d.PlayerName = "  " }},
			{name: "three digit number", mutate: func(d *cart.CustomDescriptor) { d.PlayerNumber = "100" }},
			{name: "non-numeric number", mutate: func(d *cart.CustomDescriptor) { d.PlayerNumber = "1A" }},
			{name: "missing primary colour", mutate: func(d *cart.CustomDescriptor) { d.PrimaryColor = "" }},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				f := newCartFixture(t)
				d := descriptor("Kai")
				tc.mutate(&d)

				_, err := f.uc.AddCustomItem(ctx, sessionID, commands.AddCustomItemRequest{Descriptor: d, Size: "M", Quantity: 1})

				require.Error(t, err)
				assert.True(t, errs.Is(err, errs.ErrInvalidCartItem))
				assert.ErrorIs(t, err, cart.ErrInvalidDescriptor)
			})
		}
	})
}

// =============================================================================
// SetQuantity / RemoveLine / Clear
// =============================================================================

func TestCartUseCase_LineMaintenance(t *testing.T) {
	ctx := context.Background()

	addKai := func(t *testing.T, f cartFixture, qty int) string {
		t.Helper()
		res, err := f.uc.AddCustomItem(ctx, sessionID, commands.AddCustomItemRequest{Descriptor: descriptor("Kai"), Size: "M", Quantity: qty})
		require.NoError(t, err)
		return res.Line.ID
	}

	t.Run("set quantity overwrites", func(t *testing.T) {
		f := newCartFixture(t)
		id := addKai(t, f, 1)

		res, err := f.uc.SetQuantity(ctx, sessionID, id, 5)

		require.NoError(t, err)
		assert.Equal(t, 5, res.ItemCount)
	})

	t.Run("set quantity to zero removes the line", func(t *testing.T) {
		f := newCartFixture(t)
		id := addKai(t, f, 2)

		res, err := f.uc.SetQuantity(ctx, sessionID, id, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, res.ItemCount)
		lines, err := f.backend.ForSession(sessionID).Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("set quantity on an unknown line", func(t *testing.T) {
		f := newCartFixture(t)
		addKai(t, f, 1)

		_, err := f.uc.SetQuantity(ctx, sessionID, "nope", 3)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrCartLineNotFound))
	})

	t.Run("remove of an unknown line is a no-op", func(t *testing.T) {
		f := newCartFixture(t)
		addKai(t, f, 4)

		res, err := f.uc.RemoveLine(ctx, sessionID, "nope")

		require.NoError(t, err)
		assert.Equal(t, 4, res.ItemCount)
	})

	t.Run("remove deletes the line", func(t *testing.T) {
		f := newCartFixture(t)
		id := addKai(t, f, 4)

		res, err := f.uc.RemoveLine(ctx, sessionID, id)

		require.NoError(t, err)
		assert.Equal(t, 0, res.ItemCount)
	})

	t.Run("clear empties only the session cart", func(t *testing.T) {
		f := newCartFixture(t)
		addKai(t, f, 4)
		_, err := f.uc.AddCustomItem(ctx, "other-session", commands.AddCustomItemRequest{Descriptor: descriptor("Mia"), Size: "S", Quantity: 1})
		require.NoError(t, err)

		require.NoError(t, f.uc.Clear(ctx, sessionID))

		mine, err := f.backend.ForSession(sessionID).Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, mine)
		other, err := f.backend.ForSession("other-session").Load(ctx)
		require.NoError(t, err)
		assert.Len(t, other, 1)
	})
}

// =============================================================================
// Persistence failures
// =============================================================================

func TestCartUseCase_PersistFailure(t *testing.T) {
	ctx := context.Background()
	storeErr := infra.WrapRepoErr("failed to write cart", errors.New("connection refused"), infra.KindCacheFailure)

	newFailing := func(t *testing.T) commands.CartCommands {
		t.Helper()
		ctrl := gomock.NewController(t)
		store := cartmock.NewMockStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(nil, nil).AnyTimes()
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(storeErr).AnyTimes()
		stores := sharedmock.NewMockCartStoreFactory(ctrl)
		stores.EXPECT().ForSession(sessionID).Return(store).AnyTimes()

		return commands.NewCartUseCase(
			sharedmock.NewMockProductRepository(ctrl),
			shared.NewCartSessions(stores, clock.NewFixedClock(builder.Now), time.Hour, testutil.DiscardLogger()),
			commands.CartConfig{CustomUnitPrice: customUnitPrice},
			testutil.DiscardLogger(),
		)
	}

	t.Run("add reports the failure", func(t *testing.T) {
		uc := newFailing(t)

		_, err := uc.AddCustomItem(ctx, sessionID, commands.AddCustomItemRequest{Descriptor: descriptor("Kai"), Size: "M", Quantity: 1})

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrCartPersist))
	})

	t.Run("clear reports the failure", func(t *testing.T) {
		uc := newFailing(t)

		err := uc.Clear(ctx, sessionID)

		assert.True(t, errs.Is(err, errs.ErrCartPersist))
	})

	t.Run("changes made while the store is down stay in the session cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := cartmock.NewMockStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(nil, nil).Times(1)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(storeErr).AnyTimes()
		stores := sharedmock.NewMockCartStoreFactory(ctrl)
		stores.EXPECT().ForSession(sessionID).Return(store).Times(1)
		products := sharedmock.NewMockProductRepository(ctrl)
		promotions := sharedmock.NewMockPromotionRepository(ctrl)
		product := builder.NewProductBuilder().WithID(7).WithBasePrice(1000).MustBuild()
		products.EXPECT().FindByID(gomock.Any(), int64(7)).Return(product, nil).Times(2)
		products.EXPECT().FindByIDs(gomock.Any(), []int64{7}).Return(catalog.NewIndex(product), nil)
		promotions.EXPECT().ListActive(gomock.Any(), builder.Now).Return(nil, nil)

		logger := testutil.DiscardLogger()
		clk := clock.NewFixedClock(builder.Now)
		sessions := shared.NewCartSessions(stores, clk, time.Hour, logger)
		uc := commands.NewCartUseCase(products, sessions, commands.CartConfig{CustomUnitPrice: customUnitPrice}, logger)
		q := queries.NewCartQueries(products, promotions, sessions, promotion.NewResolver(logger, 2), clk, logger)

		for range 2 {
			_, err := uc.AddStockItem(ctx, sessionID, commands.AddStockItemRequest{ProductID: 7, Size: "M", Quantity: 1})
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrCartPersist))
		}

		view, err := q.GetCart(ctx, sessionID)

		require.NoError(t, err)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, 2, view.Lines[0].Quantity)
		assert.Equal(t, "2000.00", view.Total.StringFixed(2))
	})

	t.Run("an unreadable store starts an empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := cartmock.NewMockStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(nil, errors.New("decode failure"))
		store.EXPECT().Save(gomock.Any(), gomock.Len(1)).Return(nil)
		stores := sharedmock.NewMockCartStoreFactory(ctrl)
		stores.EXPECT().ForSession(sessionID).Return(store)

		uc := commands.NewCartUseCase(
			sharedmock.NewMockProductRepository(ctrl),
			shared.NewCartSessions(stores, clock.NewFixedClock(builder.Now), time.Hour, testutil.DiscardLogger()),
			commands.CartConfig{CustomUnitPrice: customUnitPrice},
			testutil.DiscardLogger(),
		)

		res, err := uc.AddCustomItem(ctx, sessionID, commands.AddCustomItemRequest{Descriptor: descriptor("Kai"), Size: "M", Quantity: 2})

		require.NoError(t, err)
		assert.Equal(t, 2, res.ItemCount)
	})
}
