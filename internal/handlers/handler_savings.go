package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cekel_duit/internal/core/ports/services"
	"github.com/SscSPs/cekel_duit/internal/dto"
	"github.com/SscSPs/cekel_duit/internal/middleware"
	"github.com/gin-gonic/gin"
)

// savingsHandler handles HTTP requests related to savings targets.
type savingsHandler struct {
	savingsService portssvc.SavingsSvcFacade
}

func newSavingsHandler(ss portssvc.SavingsSvcFacade) *savingsHandler {
	return &savingsHandler{savingsService: ss}
}

// registerSavingsRoutes registers routes related to savings targets.
func registerSavingsRoutes(rg *gin.RouterGroup, ss portssvc.SavingsSvcFacade) {
	h := newSavingsHandler(ss)

	savings := rg.Group("/savings")
	{
		savings.POST("", h.createTarget)
		savings.GET("", h.listTargets)
		savings.POST("/:id/deposits", h.addMoney)
		savings.DELETE("/:id", h.deleteTarget)
	}
}

// createTarget godoc
// @Summary Create a savings target
// @Tags savings
// @Accept  json
// @Produce  json
// @Param   target body dto.CreateSavingsTargetRequest true "Target details"
// @Success 201 {object} dto.SavingsTargetResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 507 {object} dto.ErrorResponse "Local storage is full"
// @Failure 500 {object} dto.ErrorResponse "Failed to create savings target"
// @Router /savings [post]
func (h *savingsHandler) createTarget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSavingsTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "JSON for CreateSavingsTarget")
		return
	}

	created, err := h.savingsService.CreateTarget(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create savings target")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSavingsTargetResponse(*created))
}

// listTargets godoc
// @Summary List savings targets
// @Description Lists every savings target with its progress
// @Tags savings
// @Produce  json
// @Success 200 {object} dto.ListSavingsTargetsResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list savings targets"
// @Router /savings [get]
func (h *savingsHandler) listTargets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	items, err := h.savingsService.ListTargets(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list savings targets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSavingsTargetsResponse(items))
}

// addMoney godoc
// @Summary Add money to a savings target
// @Tags savings
// @Accept  json
// @Produce  json
// @Param   id path string true "Savings target ID"
// @Param   deposit body dto.AddMoneyRequest true "Deposit"
// @Success 200 {object} dto.SavingsTargetResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 404 {object} dto.ErrorResponse "Savings target not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to add money"
// @Router /savings/{id}/deposits [post]
func (h *savingsHandler) addMoney(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("target_id", c.Param("id")))
	var req dto.AddMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "JSON for AddMoney")
		return
	}

	updated, err := h.savingsService.AddMoney(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to add money")
		return
	}
	c.JSON(http.StatusOK, dto.ToSavingsTargetResponse(*updated))
}

// deleteTarget godoc
// @Summary Delete a savings target
// @Tags savings
// @Param   id path string true "Savings target ID"
// @Success 204 "No Content"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete savings target"
// @Router /savings/{id} [delete]
func (h *savingsHandler) deleteTarget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.savingsService.DeleteTarget(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete savings target")
		return
	}
	c.Status(http.StatusNoContent)
}
