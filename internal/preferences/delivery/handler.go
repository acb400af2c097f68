package delivery

import (
	"errors"
	"net/http"

	"studyplan-backend/internal/preferences/usecase"

	"github.com/gin-gonic/gin"
)

// PreferencesHandler handles user-preferences HTTP requests
type PreferencesHandler struct {
	prefsUsecase usecase.PreferencesUsecase
}

// NewPreferencesHandler creates a new PreferencesHandler
func NewPreferencesHandler(prefsUsecase usecase.PreferencesUsecase) *PreferencesHandler {
	return &PreferencesHandler{prefsUsecase: prefsUsecase}
}

// GetPreferences returns the singleton preferences record
// GET /api/preferences
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	prefs, err := h.prefsUsecase.GetPreferences()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch preferences"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences patches the singleton preferences record
// PATCH /api/preferences
func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	var updates usecase.PreferencesUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prefs, err := h.prefsUsecase.UpdatePreferences(updates)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidPreferences) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update preferences"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}
