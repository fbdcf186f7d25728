package api

import (
	"net/http"
	"strconv"

	"jersey-storefront/internal/handler/httperr"
	"jersey-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	q queries.ProductQueries
}

func NewProductHandler(q queries.ProductQueries) *ProductHandler {
	return &ProductHandler{q: q}
}

// @Summary Get product price
// @Description Resolve the current display price of a jersey with active promotions applied
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} queries.PriceQuoteView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/products/{id}/price [get]
func (h *ProductHandler) GetPrice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	quote, err := h.q.QuotePrice(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to price product")
		return
	}
	c.JSON(http.StatusOK, quote)
}
