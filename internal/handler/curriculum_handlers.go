package handler

import (
	"net/http"
	"strconv"

	"bedtime-server/internal/curriculum"

	"github.com/gin-gonic/gin"
)

// getCurriculumProfile возвращает профиль куррикулума для возраста.
// Используется клиентом для отображения уровня сложности.
func (h *Handler) getCurriculumProfile(c *gin.Context) {
	age, err := strconv.Atoi(c.Param("age"))
	if err != nil || !curriculum.IsValidAge(age) {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid age"})
		return
	}
	c.JSON(http.StatusOK, curriculum.Resolve(age))
}
