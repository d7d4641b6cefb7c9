package handler

import (
	"net/http"

	"bedtime-server/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// listStories возвращает все истории, новые первыми.
func (h *Handler) listStories(c *gin.Context) {
	stories, err := h.service.ListStories(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if stories == nil {
		stories = []model.Story{}
	}
	c.JSON(http.StatusOK, stories)
}

// getStory возвращает одну историю по идентификатору.
func (h *Handler) getStory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Message: "Story not found"})
		return
	}

	story, err := h.service.GetStory(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, story)
}

// generateStory проводит сырой запрос через конвейер генерации.
func (h *Handler) generateStory(c *gin.Context) {
	var raw model.StoryRequest
	if err := c.ShouldBindJSON(&raw); err != nil {
		h.logger.Warn("Failed to bind story request", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to generate story: invalid request body"})
		return
	}

	result, err := h.service.GenerateStory(c.Request.Context(), raw)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// deleteStory удаляет историю навсегда.
func (h *Handler) deleteStory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Message: "Story not found"})
		return
	}

	if err := h.service.DeleteStory(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
