package handler

import (
	"errors"
	"net/http"

	"bedtime-server/internal/model"
	"bedtime-server/internal/provider"
	"bedtime-server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse - стандартная структура для ответа об ошибке в формате JSON.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Handler обслуживает HTTP API сервиса историй.
type Handler struct {
	service service.StoryService
	logger  *zap.Logger
}

// NewHandler создает HTTP-хендлер.
func NewHandler(svc service.StoryService, logger *zap.Logger) *Handler {
	return &Handler{
		service: svc,
		logger:  logger.Named("Handler"),
	}
}

// RegisterRoutes регистрирует маршруты API.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/stories", h.listStories)
		api.POST("/stories/generate", h.generateStory)
		api.GET("/stories/:id", h.getStory)
		api.DELETE("/stories/:id", h.deleteStory)

		api.GET("/preferences", h.getPreferences)
		api.PUT("/preferences", h.updatePreferences)

		api.GET("/characters", h.listCharacterSuggestions)
		api.POST("/characters/suggest", h.suggestCharacters)

		api.GET("/curriculum/:age", h.getCurriculumProfile)
	}
}

// handleServiceError переводит ошибки сервиса в HTTP-статусы.
// Ошибки валидации отдаются с кодом 500 и текстом как есть: клиент
// показывает сообщение пользователю без дополнительной обработки.
// Ошибки хранилища наружу не детализируются: подробности только в лог.
func (h *Handler) handleServiceError(c *gin.Context, err error) {
	var validationErr *model.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: validationErr.Message})
	case errors.Is(err, model.ErrNotFound), errors.Is(err, model.ErrStoryNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Message: "Story not found"})
	case errors.Is(err, provider.ErrAIGenerationFailed):
		h.logger.Error("Story generation failed", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
	default:
		h.logger.Error("Unhandled service error", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: "An unexpected internal error occurred"})
	}
}
