package api

import (
	"net/http"

	"jersey-storefront/internal/handler/httperr"
	"jersey-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// Checked in order; a malformed stored promotion wins over the request validation it causes.
var useCaseErrors = []errorMapping{
	{errs.ErrStoredPromotionMalformed, http.StatusConflict, "Stored promotion is malformed"},
	{errs.ErrInvalidCartItem, http.StatusBadRequest, "Invalid cart item"},
	{errs.ErrInvalidPromotion, http.StatusBadRequest, "Invalid promotion"},
	{errs.ErrCartLineNotFound, http.StatusNotFound, "Cart line not found"},
	{errs.ErrProductNotFound, http.StatusNotFound, "Product not found"},
	{errs.ErrPromotionNotFound, http.StatusNotFound, "Promotion not found"},
	{errs.ErrCartPersist, http.StatusInternalServerError, "Cart could not be saved"},
}

// abortWithUseCaseError maps usecase sentinels to HTTP statuses; anything else is a 500.
func abortWithUseCaseError(c *gin.Context, err error, fallbackMsg string) {
	for _, m := range useCaseErrors {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, fallbackMsg, nil)
}
