package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finwise/internal/errors"
	"finwise/internal/services"
)

// SettingsHandler handles the single-user preference record.
type SettingsHandler struct {
	settingsService services.SettingsServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService services.SettingsServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// UpdateSettingsRequest represents the settings update payload. Nil fields
// are left as-is.
type UpdateSettingsRequest struct {
	Language   *string `json:"language" binding:"omitempty,language"`
	ExtraNotes *string `json:"extra_notes"`
}

// GetSettings handles retrieving the stored preferences.
// @Summary     Get settings
// @Description Get the stored language and extra-notes preferences
// @Tags        settings
// @Accept      json
// @Produce     json
// @Success     200 {object} services.Settings "Settings"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettings handles updating the stored preferences.
// @Summary     Update settings
// @Description Update the language or extra-notes preferences; omitted fields are unchanged
// @Tags        settings
// @Accept      json
// @Produce     json
// @Param       request body UpdateSettingsRequest true "Fields to update"
// @Success     200 {object} services.Settings "Updated settings"
// @Failure     400 {object} ErrorResponse "Invalid language"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	settings, err := h.settingsService.UpdateSettings(req.Language, req.ExtraNotes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
