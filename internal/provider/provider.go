// Package provider содержит адаптер внешнего сервиса генерации текста и
// иллюстраций. Наружу торчит только capability-интерфейс AIClient и единая
// логика сборки промптов; конкретный бэкенд (OpenAI или Ollama) выбирается
// конфигурацией и никогда не дублирует curriculum-логику.
package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bedtime-server/internal/config"
	"bedtime-server/internal/curriculum"

	"go.uber.org/zap"
)

// ErrAIGenerationFailed - ошибка при генерации текста AI. Фатальна для
// запроса: история не сохраняется.
var ErrAIGenerationFailed = errors.New("ошибка генерации текста AI")

// ErrIllustrationFailed - ошибка при генерации иллюстрации. Не фатальна:
// история сохраняется без иллюстрации.
var ErrIllustrationFailed = errors.New("ошибка генерации иллюстрации")

// Spec - структурированная спецификация генерации, собранная из
// нормализованного запроса и профиля куррикулума. Передается бэкенду
// как непрозрачный объект.
type Spec struct {
	Characters []string
	Setting    string
	Age        int
	// TargetWordCount - ориентировочный объем, сообщаемый провайдеру.
	// Локально не форсируется.
	TargetWordCount int
	// MoralTheme - пустая строка означает "тему выбирает провайдер".
	MoralTheme string
	Curriculum curriculum.Profile
}

// StoryResult - нормализованный ответ провайдера на генерацию истории.
type StoryResult struct {
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Moral           string   `json:"moral"`
	SuggestedTitles []string `json:"suggestedTitles"`
}

// AIClient - интерфейс взаимодействия с внешним генеративным сервисом.
type AIClient interface {
	// GenerateStory генерирует историю по спецификации. Ошибка фатальна
	// для запроса в целом.
	GenerateStory(ctx context.Context, spec Spec) (*StoryResult, error)
	// GenerateIllustration генерирует иллюстрацию и возвращает ее URL.
	// Может независимо завершиться ошибкой; вызывающая сторона обязана
	// трактовать ее как нефатальную.
	GenerateIllustration(ctx context.Context, title string, characters []string, setting string, age int) (string, error)
	// SuggestCharacters запрашивает у провайдера список идей персонажей.
	SuggestCharacters(ctx context.Context) ([]string, error)
}

// NewAIClient создает клиент AI в зависимости от конфигурации.
func NewAIClient(cfg *config.Config, logger *zap.Logger) (AIClient, error) {
	switch strings.ToLower(cfg.AIProvider) {
	case "openai":
		return newOpenAIClient(cfg, logger.Named("OpenAIClient"))
	case "ollama":
		return newOllamaClient(cfg, logger.Named("OllamaClient"))
	default:
		return nil, fmt.Errorf("неизвестный тип AI провайдера: '%s'", cfg.AIProvider)
	}
}
