package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"bedtime-server/internal/curriculum"
	"bedtime-server/internal/model"
)

// Границы количества персонажей в запросе.
const (
	minCharacters     = 3
	maxCharacters     = 5
	minSettingLength  = 10
	moralThemeAutoKey = "auto"
)

// NormalizeStoryRequest валидирует и канонизирует сырой запрос генерации.
// Возвращает *model.ValidationError с текстом, пригодным для клиента.
// Границы проверяются строго: недобор или перебор персонажей — ошибка,
// никакого молчаливого усечения.
func NormalizeStoryRequest(raw model.StoryRequest) (model.StoryRequest, error) {
	// Лимит сверху проверяем до фильтрации: лишние записи прислал клиент,
	// даже если часть из них пустые.
	if len(raw.Characters) > maxCharacters {
		return model.StoryRequest{}, model.NewValidationError(
			fmt.Sprintf("too many characters: at most %d allowed", maxCharacters))
	}

	characters := make([]string, 0, len(raw.Characters))
	for _, c := range raw.Characters {
		trimmed := strings.TrimSpace(c)
		if trimmed != "" {
			characters = append(characters, trimmed)
		}
	}
	if len(characters) < minCharacters {
		return model.StoryRequest{}, model.NewValidationError(
			fmt.Sprintf("at least %d characters required", minCharacters))
	}

	// Минимальная длина считается в символах, а не в байтах: кириллица и
	// прочий не-ASCII текст не должны проходить валидацию досрочно.
	setting := strings.TrimSpace(raw.Setting)
	if utf8.RuneCountInString(setting) < minSettingLength {
		return model.StoryRequest{}, model.NewValidationError(
			fmt.Sprintf("setting must be at least %d characters long", minSettingLength))
	}

	if !curriculum.IsValidAge(raw.Age) {
		return model.StoryRequest{}, model.NewValidationError(
			fmt.Sprintf("age must be between %d and %d", curriculum.MinAge, curriculum.MaxAge))
	}

	if !raw.StoryLength.IsValid() {
		return model.StoryRequest{}, model.NewValidationError(
			fmt.Sprintf("storyLength must be %q or %q", model.StoryLength5Min, model.StoryLength10Min))
	}

	// Сентинель "auto" и пустая строка означают одно и то же: мораль
	// выбирает провайдер. Храним как отсутствие темы.
	moralTheme := strings.TrimSpace(raw.MoralTheme)
	if strings.EqualFold(moralTheme, moralThemeAutoKey) {
		moralTheme = ""
	}

	return model.StoryRequest{
		Characters:  characters,
		Setting:     setting,
		Age:         raw.Age,
		StoryLength: raw.StoryLength,
		MoralTheme:  moralTheme,
	}, nil
}
