package handler

import (
	"net/http"

	"bedtime-server/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getPreferences возвращает настройки, создавая дефолтные при первом
// обращении.
func (h *Handler) getPreferences(c *gin.Context) {
	prefs, err := h.service.GetPreferences(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// updatePreferences целиком заменяет singleton настроек.
func (h *Handler) updatePreferences(c *gin.Context) {
	var prefs model.UserPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		h.logger.Warn("Failed to bind preferences", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to update preferences: invalid request body"})
		return
	}

	updated, err := h.service.UpdatePreferences(c.Request.Context(), &prefs)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
