package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bedtime-server/internal/config"

	"github.com/ollama/ollama/api"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// ollamaClient реализует AIClient с использованием ollama/api.
// Локальная модель генерирует только текст: иллюстрации этот бэкенд не
// поддерживает и честно сообщает об этом нефатальной ошибкой.
type ollamaClient struct {
	client  *api.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

var _ AIClient = (*ollamaClient)(nil)

// newOllamaClient создает клиент локального Ollama сервера.
func newOllamaClient(cfg *config.Config, logger *zap.Logger) (*ollamaClient, error) {
	baseURL := cfg.AIBaseURL
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	// api.NewClient требует URL без суффикса /v1
	baseURL = strings.TrimSuffix(baseURL, "/v1")
	baseURL = strings.TrimSuffix(baseURL, "/")

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга Ollama Base URL '%s': %w", baseURL, err)
	}

	logger.Info("Ollama client created",
		zap.String("baseURL", baseURL),
		zap.String("model", cfg.AIModel),
		zap.Duration("timeout", cfg.AITimeout),
	)

	return &ollamaClient{
		client:  api.NewClient(parsedURL, &http.Client{}),
		model:   cfg.AIModel,
		timeout: cfg.AITimeout,
		logger:  logger,
	}, nil
}

// GenerateStory генерирует историю по спецификации.
func (c *ollamaClient) GenerateStory(ctx context.Context, spec Spec) (*StoryResult, error) {
	raw, err := c.chat(ctx, "story", buildStoryPrompt(spec), storyTemperature)
	if err != nil {
		return nil, err
	}

	result, err := parseStoryResult(raw)
	if err != nil {
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "operation": "story", "status": "error_parse"}).Inc()
		return nil, fmt.Errorf("%w: %v", ErrAIGenerationFailed, err)
	}
	return result, nil
}

// GenerateIllustration у локального бэкенда отсутствует.
func (c *ollamaClient) GenerateIllustration(ctx context.Context, title string, characters []string, setting string, age int) (string, error) {
	aiRequestsTotal.With(prometheus.Labels{"model": c.model, "operation": "illustration", "status": "error_unsupported"}).Inc()
	return "", fmt.Errorf("%w: бэкенд ollama не генерирует изображения", ErrIllustrationFailed)
}

// SuggestCharacters запрашивает у модели список идей персонажей.
func (c *ollamaClient) SuggestCharacters(ctx context.Context) ([]string, error) {
	raw, err := c.chat(ctx, "suggest", buildSuggestCharactersPrompt(), suggestTemperature)
	if err != nil {
		return nil, err
	}

	characters, err := parseCharacterList(raw)
	if err != nil {
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "operation": "suggest", "status": "error_parse"}).Inc()
		return nil, fmt.Errorf("%w: %v", ErrAIGenerationFailed, err)
	}
	return characters, nil
}

// chat выполняет один запрос к Ollama в JSON-режиме.
func (c *ollamaClient) chat(ctx context.Context, operation string, prompt string, temperature float32) (string, error) {
	req := &api.ChatRequest{
		Model: c.model,
		Messages: []api.Message{
			{Role: "user", Content: prompt},
		},
		Stream: func(b bool) *bool { return &b }(false),
		Format: json.RawMessage(`"json"`),
		Options: map[string]interface{}{
			"temperature": temperature,
		},
	}

	// Таймаут на уровне запроса: локальные модели могут думать долго
	requestCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	startTime := time.Now()
	c.logger.Debug("Sending request to Ollama",
		zap.String("operation", operation),
		zap.Int("promptBytes", len(prompt)),
	)

	var resp api.ChatResponse
	err := c.client.Chat(requestCtx, req, func(r api.ChatResponse) error {
		resp = r // Сохраняем последний (полный) ответ
		return nil
	})
	duration := time.Since(startTime)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.logger.Error("Ollama request timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", c.timeout),
				zap.Duration("duration", duration),
			)
		} else {
			c.logger.Error("Ollama request failed",
				zap.String("operation", operation),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		}
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "operation": operation, "status": "error"}).Inc()
		return "", fmt.Errorf("%w: %v", ErrAIGenerationFailed, err)
	}
	if resp.Message.Content == "" {
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "operation": operation, "status": "error_empty_response"}).Inc()
		return "", fmt.Errorf("%w: получен пустой ответ", ErrAIGenerationFailed)
	}

	aiRequestsTotal.With(prometheus.Labels{"model": c.model, "operation": operation, "status": "success"}).Inc()
	aiRequestDuration.With(prometheus.Labels{"model": c.model, "operation": operation}).Observe(duration.Seconds())
	if resp.PromptEvalCount > 0 {
		aiPromptTokens.With(prometheus.Labels{"model": c.model}).Observe(float64(resp.PromptEvalCount))
		aiCompletionTokens.With(prometheus.Labels{"model": c.model}).Observe(float64(resp.EvalCount))
	}
	// Стоимость не считаем: модель локальная

	c.logger.Debug("Ollama response received",
		zap.String("operation", operation),
		zap.Duration("duration", duration),
		zap.Int("responseChars", len(resp.Message.Content)),
	)

	return resp.Message.Content, nil
}
