package api

import (
	"net/http"

	reqdto "jersey-storefront/internal/handler/dto/request"
	resdto "jersey-storefront/internal/handler/dto/response"
	"jersey-storefront/internal/handler/httperr"
	"jersey-storefront/internal/usecase/commands"
	"jersey-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PromotionHandler struct {
	cmds commands.PromotionCommands
	q    queries.PromotionQueries
}

func NewPromotionHandler(cmds commands.PromotionCommands, q queries.PromotionQueries) *PromotionHandler {
	return &PromotionHandler{cmds: cmds, q: q}
}

// @Summary List promotions
// @Description List promotions newest first, optionally filtered
// @Tags admin-sales
// @Produce json
// @Param sale_type query string false "ALL, PLAYER, TEAM or LEAGUE"
// @Param discount_type query string false "FLAT or PERCENTAGE"
// @Param is_active query bool false "Enabled flag"
// @Param search query string false "Substring of target_value"
// @Success 200 {object} resdto.PromotionListResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/admin/sales [get]
func (h *PromotionHandler) List(c *gin.Context) {
	var query reqdto.PromotionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	views, err := h.q.ListPromotions(c.Request.Context(), query.ToFilter())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to list promotions")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotionViews(views))
}

// @Summary Get promotion
// @Tags admin-sales
// @Produce json
// @Param id path string true "Promotion ID"
// @Success 200 {object} queries.PromotionView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/admin/sales/{id} [get]
func (h *PromotionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetPromotion(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load promotion")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create promotion
// @Tags admin-sales
// @Accept json
// @Produce json
// @Param request body reqdto.PromotionRequest true "Promotion"
// @Success 201 {object} queries.PromotionView
// @Failure 400 {object} map[string]string
// @Router /api/admin/sales [post]
func (h *PromotionHandler) Create(c *gin.Context) {
	var req reqdto.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreatePromotion(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err, "Create promotion failed")
		return
	}
	h.respondWithPromotion(c, http.StatusCreated, result.PromotionID)
}

// @Summary Replace promotion
// @Tags admin-sales
// @Accept json
// @Produce json
// @Param id path string true "Promotion ID"
// @Param request body reqdto.PromotionRequest true "Promotion"
// @Success 200 {object} queries.PromotionView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/admin/sales/{id} [put]
func (h *PromotionHandler) Replace(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.PromotionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err = h.cmds.ReplacePromotion(c.Request.Context(), id, req.ToCommand()); err != nil {
		abortWithUseCaseError(c, err, "Update promotion failed")
		return
	}
	h.respondWithPromotion(c, http.StatusOK, id)
}

// @Summary Patch promotion
// @Description Change some fields, e.g. toggle is_active
// @Tags admin-sales
// @Accept json
// @Produce json
// @Param id path string true "Promotion ID"
// @Param request body reqdto.PatchPromotionRequest true "Fields to change"
// @Success 200 {object} queries.PromotionView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/admin/sales/{id} [patch]
func (h *PromotionHandler) Patch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.PatchPromotionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err = h.cmds.PatchPromotion(c.Request.Context(), id, req.ToCommand()); err != nil {
		abortWithUseCaseError(c, err, "Update promotion failed")
		return
	}
	h.respondWithPromotion(c, http.StatusOK, id)
}

// @Summary Delete promotion
// @Tags admin-sales
// @Param id path string true "Promotion ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/admin/sales/{id} [delete]
func (h *PromotionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err = h.cmds.DeletePromotion(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, "Delete promotion failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PromotionHandler) respondWithPromotion(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetPromotion(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load promotion")
		return
	}
	c.JSON(status, view)
}
