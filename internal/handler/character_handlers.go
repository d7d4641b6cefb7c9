package handler

import (
	"net/http"

	"bedtime-server/internal/model"

	"github.com/gin-gonic/gin"
)

// listCharacterSuggestions возвращает персонажей по убыванию популярности.
func (h *Handler) listCharacterSuggestions(c *gin.Context) {
	suggestions, err := h.service.ListCharacterSuggestions(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if suggestions == nil {
		suggestions = []model.CharacterSuggestion{}
	}
	c.JSON(http.StatusOK, suggestions)
}

// suggestCharacters запрашивает у провайдера свежие идеи персонажей.
// Отказ провайдера не ошибка: сервис вернет фиксированный список.
func (h *Handler) suggestCharacters(c *gin.Context) {
	characters, err := h.service.SuggestCharacters(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"characters": characters})
}
