package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/cekel_duit/internal/apperrors"
	portsrepo "github.com/SscSPs/cekel_duit/internal/core/ports/repositories"
	"github.com/SscSPs/cekel_duit/internal/utils/validation"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondBindError answers a request whose body or query failed to bind.
func respondBindError(c *gin.Context, logger *slog.Logger, err error, what string) {
	logger.Warn("Failed to bind "+what, slog.String("error", err.Error()))
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed: " + validation.Describe(verrs)})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}

// respondServiceError maps a service error to a status code and body.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, portsrepo.ErrQuotaExceeded):
		logger.Error("Storage quota exceeded", slog.String("error", err.Error()))
		c.JSON(http.StatusInsufficientStorage, gin.H{"error": failureMsg + ": local storage is full"})
	default:
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failureMsg})
	}
}
