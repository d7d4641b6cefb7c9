package provider

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extractJSON вырезает JSON-объект из сырого ответа модели. Модели иногда
// оборачивают JSON в markdown-ограждения или добавляют текст вокруг.
func extractJSON(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		cleaned = cleaned[start : end+1]
	}
	return cleaned
}

// parseStoryResult разбирает и валидирует ответ провайдера на генерацию
// истории. Пустые title/content — нарушение контракта провайдера.
func parseStoryResult(raw string) (*StoryResult, error) {
	var result StoryResult
	if err := json.Unmarshal([]byte(extractJSON(raw)), &result); err != nil {
		return nil, fmt.Errorf("ошибка разбора ответа AI: %w", err)
	}
	if strings.TrimSpace(result.Title) == "" {
		return nil, fmt.Errorf("ответ AI не содержит title")
	}
	if strings.TrimSpace(result.Content) == "" {
		return nil, fmt.Errorf("ответ AI не содержит content")
	}
	return &result, nil
}

// parseCharacterList разбирает ответ провайдера на запрос подсказок персонажей.
func parseCharacterList(raw string) ([]string, error) {
	var payload struct {
		Characters []string `json:"characters"`
	}
	if err := json.Unmarshal([]byte(extractJSON(raw)), &payload); err != nil {
		return nil, fmt.Errorf("ошибка разбора списка персонажей: %w", err)
	}

	// Отбрасываем пустые строки, чтобы мусор от модели не попадал в UI
	characters := make([]string, 0, len(payload.Characters))
	for _, c := range payload.Characters {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			characters = append(characters, trimmed)
		}
	}
	if len(characters) == 0 {
		return nil, fmt.Errorf("список персонажей пуст")
	}
	return characters, nil
}
