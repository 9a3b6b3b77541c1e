package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/cekel_duit/internal/core/ports/services"
	"github.com/SscSPs/cekel_duit/internal/dto"
	"github.com/SscSPs/cekel_duit/internal/middleware"
	"github.com/gin-gonic/gin"
)

type profileHandler struct {
	profileService portssvc.ProfileSvc
}

func registerProfileRoutes(rg *gin.RouterGroup, ps portssvc.ProfileSvc) {
	h := &profileHandler{profileService: ps}
	rg.GET("/profile", h.getProfile)
	rg.PUT("/profile", h.updateProfile)
}

// getProfile godoc
// @Summary Get the profile
// @Tags profile
// @Produce  json
// @Success 200 {object} dto.ProfileResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to read profile"
// @Router /profile [get]
func (h *profileHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profile, err := h.profileService.GetProfile(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to read profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// updateProfile godoc
// @Summary Replace the profile
// @Tags profile
// @Accept  json
// @Produce  json
// @Param   profile body dto.UpdateProfileRequest true "Profile"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 500 {object} dto.ErrorResponse "Failed to save profile"
// @Router /profile [put]
func (h *profileHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "JSON for UpdateProfile")
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to save profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}
