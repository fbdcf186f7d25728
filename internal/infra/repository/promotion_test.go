//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"jersey-storefront/internal/domain/promotion"
	"jersey-storefront/internal/infra"
	"jersey-storefront/internal/infra/pgquery"
	"jersey-storefront/internal/infra/repository"
	"jersey-storefront/internal/pkg/pgconv"
	"jersey-storefront/internal/usecase/shared"
	"jersey-storefront/tests/common/builder"
	"jersey-storefront/tests/common/testutil"
	repositorymock "jersey-storefront/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func saleRow(saleType, target, discountType string, value int64) pgquery.Sale {
	return pgquery.Sale{
		ID:            uuid.New(),
		SaleType:      saleType,
		TargetValue:   target,
		DiscountType:  discountType,
		DiscountValue: pgconv.DecimalToNumeric(decimal.NewFromInt(value)),
		StartDate:     pgconv.TimeToPgtype(builder.Now.Add(-time.Hour)),
		EndDate:       pgconv.TimeToPgtype(builder.Now.Add(time.Hour)),
		IsActive:      true,
		CreatedAt:     pgconv.TimeToPgtype(builder.Now),
		UpdatedAt:     pgconv.TimeToPgtype(builder.Now),
	}
}

func newPromotionRepo(t *testing.T) (*repository.PromotionRepository, *repositorymock.MockPromotionQueries, *mockDBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockPromotionQueries(ctrl)
	mockDB := &mockDBTX{}
	return repository.NewPromotionRepository(mockQueries, mockDB, testutil.DiscardLogger()), mockQueries, mockDB
}

// =============================================================================
// List / ListActive Tests
// =============================================================================

func TestPromotionRepository_ListActive(t *testing.T) {
	ctx := context.Background()

	t.Run("success: malformed rows are skipped", func(t *testing.T) {
		repo, mockQueries, mockDB := newPromotionRepo(t)

		good := saleRow("TEAM", "3", "PERCENTAGE", 20)
		rows := []pgquery.Sale{
			good,
			saleRow("BRAND", "1", "PERCENTAGE", 20),
			saleRow("PLAYER", "x", "FLAT", 100),
			saleRow("ALL", "", "BOGO", 1),
		}
		mockQueries.EXPECT().ListActiveSales(ctx, mockDB, pgconv.TimeToPgtype(builder.Now)).Return(rows, nil)

		actual, err := repo.ListActive(ctx, builder.Now)

		require.NoError(t, err)
		require.Len(t, actual, 1)
		assert.Equal(t, good.ID, actual[0].ID())
		assert.Equal(t, promotion.ScopeTeam, actual[0].Scope().Kind())
		assert.Equal(t, []int64{3}, actual[0].Scope().IDs())
	})

	t.Run("success: out-of-range percentages are skipped", func(t *testing.T) {
		repo, mockQueries, mockDB := newPromotionRepo(t)

		mockQueries.EXPECT().ListSales(ctx, mockDB, pgquery.ListSalesParams{}).
			Return([]pgquery.Sale{saleRow("ALL", "", "PERCENTAGE", 150), saleRow("ALL", "", "FLAT", -10)}, nil)

		actual, err := repo.List(ctx, shared.PromotionFilter{})

		require.NoError(t, err)
		assert.Empty(t, actual)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		repo, mockQueries, mockDB := newPromotionRepo(t)
		mockQueries.EXPECT().ListSales(ctx, mockDB, gomock.Any()).Return(nil, errors.New("database connection error"))

		_, err := repo.List(ctx, shared.PromotionFilter{})

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("success: filters become query parameters", func(t *testing.T) {
		repo, mockQueries, mockDB := newPromotionRepo(t)
		inactive := false

		mockQueries.EXPECT().ListSales(ctx, mockDB, pgquery.ListSalesParams{
			SaleType:     pgtype.Text{String: "PLAYER", Valid: true},
			DiscountType: pgtype.Text{String: "FLAT", Valid: true},
			IsActive:     pgtype.Bool{Bool: false, Valid: true},
			Search:       pgtype.Text{String: `10\%\_off`, Valid: true},
		}).Return(nil, nil)

		_, err := repo.List(ctx, shared.PromotionFilter{
			SaleType:     "PLAYER",
			DiscountType: "FLAT",
			IsActive:     &inactive,
			Search:       " 10%_off ",
		})

		require.NoError(t, err)
	})
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestPromotionRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		row           pgquery.Sale
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: promotion found", row: saleRow("LEAGUE", "La Liga", "FLAT", 100)},
		{name: "error: promotion not found", queryErr: pgx.ErrNoRows, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("boom"), expectedError: true, expectKind: infra.KindDBFailure},
		{name: "error: stored target is unusable", row: saleRow("TEAM", "", "FLAT", 100), expectedError: true, expectKind: infra.KindDecodeFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mockQueries, mockDB := newPromotionRepo(t)
			id := uuid.New()
			tc.row.ID = id
			mockQueries.EXPECT().GetSale(ctx, mockDB, id).Return(tc.row, tc.queryErr)

			actual, err := repo.FindByID(ctx, id)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, actual.ID())
			assert.Equal(t, []string{"La Liga"}, actual.Scope().Leagues())
			assert.True(t, actual.Discount().Value().Equal(decimal.NewFromInt(100)))
		})
	}
}

// =============================================================================
// Create / Update / Delete Tests
// =============================================================================

func TestPromotionRepository_LockByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: reads through the locking query", func(t *testing.T) {
		repo, mockQueries, mockDB := newPromotionRepo(t)
		row := saleRow("PLAYER", "7", "PERCENTAGE", 10)
		mockQueries.EXPECT().GetSaleForUpdate(ctx, mockDB, row.ID).Return(row, nil)

		actual, err := repo.LockByID(ctx, row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, actual.ID)
		assert.Equal(t, "PLAYER", actual.SaleType)
		assert.Equal(t, "7", actual.TargetValue)
		assert.True(t, actual.DiscountValue.Equal(decimal.NewFromInt(10)))
	})

	t.Run("success: a malformed stored sale is locked as-is", func(t *testing.T) {
		repo, mockQueries, mockDB := newPromotionRepo(t)
		row := saleRow("PLAYER", "", "PERCENTAGE", 10)
		mockQueries.EXPECT().GetSaleForUpdate(ctx, mockDB, row.ID).Return(row, nil)

		actual, err := repo.LockByID(ctx, row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, actual.ID)
		assert.Empty(t, actual.TargetValue)
		assert.Equal(t, pgconv.TimeFromPgtype(row.CreatedAt), actual.CreatedAt)
	})

	t.Run("error: promotion not found", func(t *testing.T) {
		repo, mockQueries, mockDB := newPromotionRepo(t)
		id := uuid.New()
		mockQueries.EXPECT().GetSaleForUpdate(ctx, mockDB, id).Return(pgquery.Sale{}, pgx.ErrNoRows)

		_, err := repo.LockByID(ctx, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestPromotionRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: promotion created"},
		{name: "error: database error occurs", queryErr: errors.New("database connection error"), expectedError: true, expectKind: infra.KindDBFailure},
		{
			name:          "error: duplicate id",
			queryErr:      &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mockQueries, mockDB := newPromotionRepo(t)
			p, err := builder.NewPromotionBuilder().WithScope(promotion.PlayerScope(9, 4)).WithFlat(250).BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().CreateSale(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ pgquery.DBTX, arg pgquery.CreateSaleParams) (pgquery.Sale, error) {
					assert.Equal(t, p.ID(), arg.ID)
					assert.Equal(t, "PLAYER", arg.SaleType)
					assert.Equal(t, "4,9", arg.TargetValue)
					assert.Equal(t, "FLAT", arg.DiscountType)
					assert.True(t, arg.IsActive)
					return pgquery.Sale{}, tc.queryErr
				})

			actualError := repo.Create(ctx, p)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				return
			}
			assert.NoError(t, actualError)
		})
	}
}

func TestPromotionRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success: writes updated_at from the promotion", func(t *testing.T) {
		repo, mockQueries, mockDB := newPromotionRepo(t)
		p := builder.NewPromotionBuilder().Build()
		later := builder.Now.Add(time.Hour)
		p.SetEnabled(false, later)

		mockQueries.EXPECT().UpdateSale(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgquery.DBTX, arg pgquery.UpdateSaleParams) (pgquery.Sale, error) {
				assert.Equal(t, pgtype.Timestamptz{Time: later, Valid: true}, arg.UpdatedAt)
				assert.False(t, arg.IsActive)
				return pgquery.Sale{ID: p.ID()}, nil
			})

		require.NoError(t, repo.Update(ctx, &p))
	})

	t.Run("error: promotion not found", func(t *testing.T) {
		repo, mockQueries, mockDB := newPromotionRepo(t)
		p := builder.NewPromotionBuilder().Build()
		mockQueries.EXPECT().UpdateSale(ctx, mockDB, gomock.Any()).Return(pgquery.Sale{}, pgx.ErrNoRows)

		err := repo.Update(ctx, &p)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestPromotionRepository_Delete(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: promotion deleted", affected: 1},
		{name: "error: promotion not found", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mockQueries, mockDB := newPromotionRepo(t)
			id := uuid.New()
			mockQueries.EXPECT().DeleteSale(ctx, mockDB, id).Return(tc.affected, tc.queryErr)

			err := repo.Delete(ctx, id)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind))
		})
	}
}
