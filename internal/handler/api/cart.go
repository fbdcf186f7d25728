package api

import (
	"errors"
	"net/http"

	reqdto "jersey-storefront/internal/handler/dto/request"
	resdto "jersey-storefront/internal/handler/dto/response"
	"jersey-storefront/internal/handler/httperr"
	"jersey-storefront/internal/handler/middleware"
	"jersey-storefront/internal/usecase/commands"
	"jersey-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMissingSession = errors.New("cart session missing")

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description Get the priced cart of the current session
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Failure 500 {object} map[string]string
// @Router /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID, ok := sessionFrom(c)
	if !ok {
		return
	}
	view, err := h.q.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load cart")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add stock item
// @Description Add a catalog jersey in a size; repeats of the same product and size merge
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Add item request"
// @Success 200 {object} resdto.CartMutationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, ok := sessionFrom(c)
	if !ok {
		return
	}
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.AddStockItem(c.Request.Context(), sessionID, req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err, "Add to cart failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartLineResult(result))
}

// @Summary Add custom item
// @Description Add a customized jersey; identical customizations in the same size merge
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddCustomCartItemRequest true "Add custom item request"
// @Success 200 {object} resdto.CartMutationResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/cart/custom-items [post]
func (h *CartHandler) AddCustomItem(c *gin.Context) {
	sessionID, ok := sessionFrom(c)
	if !ok {
		return
	}
	var req reqdto.AddCustomCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.AddCustomItem(c.Request.Context(), sessionID, req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err, "Add to cart failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartLineResult(result))
}

// @Summary Update cart line quantity
// @Description Overwrite the quantity of a line; zero or less removes it
// @Tags cart
// @Accept json
// @Produce json
// @Param lineId path string true "Cart line ID"
// @Param request body reqdto.UpdateCartItemRequest true "Update quantity request"
// @Success 200 {object} resdto.CartMutationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/cart/items/{lineId} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sessionID, ok := sessionFrom(c)
	if !ok {
		return
	}
	var req reqdto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.SetQuantity(c.Request.Context(), sessionID, c.Param("lineId"), *req.Quantity)
	if err != nil {
		abortWithUseCaseError(c, err, "Update cart failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartCountResult(result))
}

// @Summary Remove cart line
// @Description Remove a line; unknown ids are ignored
// @Tags cart
// @Produce json
// @Param lineId path string true "Cart line ID"
// @Success 200 {object} resdto.CartMutationResponse
// @Failure 500 {object} map[string]string
// @Router /api/cart/items/{lineId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID, ok := sessionFrom(c)
	if !ok {
		return
	}
	result, err := h.cmds.RemoveLine(c.Request.Context(), sessionID, c.Param("lineId"))
	if err != nil {
		abortWithUseCaseError(c, err, "Remove from cart failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartCountResult(result))
}

// @Summary Clear cart
// @Description Remove every line of the current session cart
// @Tags cart
// @Success 204 "No Content"
// @Failure 500 {object} map[string]string
// @Router /api/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	sessionID, ok := sessionFrom(c)
	if !ok {
		return
	}
	if err := h.cmds.Clear(c.Request.Context(), sessionID); err != nil {
		abortWithUseCaseError(c, err, "Clear cart failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func sessionFrom(c *gin.Context) (string, bool) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingSession, "Cart session unavailable", nil)
		return "", false
	}
	return sessionID, true
}
