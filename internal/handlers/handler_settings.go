package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolsuite/fee_ledger_app/internal/apperrors"
	portssvc "github.com/schoolsuite/fee_ledger_app/internal/core/ports/services"
	"github.com/schoolsuite/fee_ledger_app/internal/dto"
	"github.com/schoolsuite/fee_ledger_app/internal/middleware"
)

// settingsHandler handles HTTP requests for the bank account settings record.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func newSettingsHandler(settingsService portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{settingsService: settingsService}
}

// getSettings godoc
// @Summary Get the bank account settings
// @Tags settings
// @Produce json
// @Success 200 {object} dto.BankSettingsResponse
// @Failure 404 {object} map[string]string "Settings not configured"
// @Router /settings/bank-account [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank account settings not configured"})
			return
		}
		logger.Error("Failed to get bank account settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve settings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBankSettingsResponse(settings))
}

// updateSettings godoc
// @Summary Update the bank account settings
// @Description Performs a validated full replace of the settings record
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.UpdateBankSettingsRequest true "Bank account settings"
// @Success 200 {object} dto.BankSettingsResponse
// @Failure 400 {object} map[string]string "Invalid settings"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /settings/bank-account [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateBankSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for updateSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		logger.Error("Actor ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating settings", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update bank account settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBankSettingsResponse(settings))
}

// RegisterSettingsRoutes registers bank account settings routes
func RegisterSettingsRoutes(group *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	settings := group.Group("/settings")
	{
		settings.GET("/bank-account", h.getSettings)
		settings.PUT("/bank-account", h.updateSettings)
	}
}
