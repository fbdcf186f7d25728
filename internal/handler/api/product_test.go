//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"jersey-storefront/internal/handler/api"
	"jersey-storefront/internal/pkg/errs"
	"jersey-storefront/internal/usecase/queries"
	"jersey-storefront/tests/common/httptest"
	queriesmock "jersey-storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockProductQueries
	handler     *api.ProductHandler
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.handler = api.NewProductHandler(s.mockQueries)

	s.router.GET("/api/products/:id/price", s.handler.GetPrice)
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

func (s *ProductHandlerTestSuite) TestGetPrice() {
	s.Run("success: returns the resolved price", func() {
		promoID := uuid.New()
		quote := &queries.PriceQuoteView{
			ProductID:   7,
			Name:        "Home 24/25",
			BasePrice:   decimal.RequireFromString("1000.00"),
			UnitPrice:   decimal.RequireFromString("800.00"),
			Discounted:  true,
			PromotionID: &promoID,
			PricesLive:  true,
		}
		s.mockQueries.EXPECT().QuotePrice(gomock.Any(), int64(7)).Return(quote, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/products/7/price", nil)

		var body queries.PriceQuoteView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		httptest.AssertJSONContentType(s.T(), rec)
		s.True(body.UnitPrice.Equal(decimal.NewFromInt(800)))
		s.Require().NotNil(body.PromotionID)
		s.Equal(promoID, *body.PromotionID)
	})

	s.Run("error: invalid ids", func() {
		for _, path := range []string{"/api/products/abc/price", "/api/products/0/price", "/api/products/-4/price"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
		}
	})

	s.Run("error: unknown product", func() {
		s.mockQueries.EXPECT().QuotePrice(gomock.Any(), int64(404)).
			Return(nil, errs.Mark(errs.New("no rows"), errs.ErrProductNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/products/404/price", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}
