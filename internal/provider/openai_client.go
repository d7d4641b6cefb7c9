package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bedtime-server/internal/config"

	"github.com/pkoukk/tiktoken-go"
	"github.com/prometheus/client_golang/prometheus"
	openaigo "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Температуры генерации: истории чуть консервативнее, подсказки — креативнее.
const (
	storyTemperature   = 0.8
	suggestTemperature = 0.9
)

// openAIClient реализует AIClient с использованием go-openai.
type openAIClient struct {
	client     *openaigo.Client
	model      string
	imageModel string
	logger     *zap.Logger
}

var _ AIClient = (*openAIClient)(nil)

// newOpenAIClient создает клиент OpenAI-совместимого API.
func newOpenAIClient(cfg *config.Config, logger *zap.Logger) (*openAIClient, error) {
	openaiConfig := openaigo.DefaultConfig(cfg.AIAPIKey)
	if cfg.AIBaseURL != "" {
		openaiConfig.BaseURL = cfg.AIBaseURL
	}
	openaiConfig.HTTPClient = &http.Client{
		Timeout: cfg.AITimeout,
	}

	logger.Info("OpenAI client created",
		zap.String("baseURL", openaiConfig.BaseURL),
		zap.String("model", cfg.AIModel),
		zap.String("imageModel", cfg.AIImageModel),
		zap.Duration("timeout", cfg.AITimeout),
	)

	return &openAIClient{
		client:     openaigo.NewClientWithConfig(openaiConfig),
		model:      cfg.AIModel,
		imageModel: cfg.AIImageModel,
		logger:     logger,
	}, nil
}

// GenerateStory генерирует историю по спецификации.
func (c *openAIClient) GenerateStory(ctx context.Context, spec Spec) (*StoryResult, error) {
	prompt := buildStoryPrompt(spec)

	raw, usage, err := c.complete(ctx, "story", prompt, storyTemperature)
	if err != nil {
		return nil, err
	}

	result, err := parseStoryResult(raw)
	if err != nil {
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "operation": "story", "status": "error_parse"}).Inc()
		return nil, fmt.Errorf("%w: %v", ErrAIGenerationFailed, err)
	}

	c.logger.Info("Story generated",
		zap.String("title", result.Title),
		zap.Int("contentLength", len(result.Content)),
		zap.Int("totalTokens", usage.TotalTokens),
	)
	return result, nil
}

// GenerateIllustration генерирует иллюстрацию через Images API и возвращает URL.
func (c *openAIClient) GenerateIllustration(ctx context.Context, title string, characters []string, setting string, age int) (string, error) {
	prompt := buildIllustrationPrompt(title, characters, setting, age)

	startTime := time.Now()
	resp, err := c.client.CreateImage(ctx, openaigo.ImageRequest{
		Model:          c.imageModel,
		Prompt:         prompt,
		N:              1,
		Size:           openaigo.CreateImageSize1024x1024,
		Quality:        openaigo.CreateImageQualityStandard,
		ResponseFormat: openaigo.CreateImageResponseFormatURL,
	})
	duration := time.Since(startTime)

	if err != nil {
		aiRequestsTotal.With(prometheus.Labels{"model": c.imageModel, "operation": "illustration", "status": "error"}).Inc()
		c.logger.Warn("Illustration generation failed", zap.Duration("duration", duration), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrIllustrationFailed, err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		aiRequestsTotal.With(prometheus.Labels{"model": c.imageModel, "operation": "illustration", "status": "error_empty_response"}).Inc()
		return "", fmt.Errorf("%w: получен пустой ответ", ErrIllustrationFailed)
	}

	aiRequestsTotal.With(prometheus.Labels{"model": c.imageModel, "operation": "illustration", "status": "success"}).Inc()
	aiRequestDuration.With(prometheus.Labels{"model": c.imageModel, "operation": "illustration"}).Observe(duration.Seconds())
	c.logger.Info("Illustration generated", zap.Duration("duration", duration))

	return resp.Data[0].URL, nil
}

// SuggestCharacters запрашивает у модели список идей персонажей.
func (c *openAIClient) SuggestCharacters(ctx context.Context) ([]string, error) {
	raw, _, err := c.complete(ctx, "suggest", buildSuggestCharactersPrompt(), suggestTemperature)
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

// complete выполняет один chat-completion запрос в JSON-режиме.
func (c *openAIClient) complete(ctx context.Context, operation string, prompt string, temperature float32) (string, openaigo.Usage, error) {
	var usage openaigo.Usage

	if strings.TrimSpace(prompt) == "" {
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "operation": operation, "status": "error"}).Inc()
		return "", usage, fmt.Errorf("%w: промпт пуст", ErrAIGenerationFailed)
	}

	startTime := time.Now()
	c.logger.Debug("Sending request to AI",
		zap.String("model", c.model),
		zap.String("operation", operation),
		zap.Int("promptBytes", len(prompt)),
	)

	resp, err := c.client.CreateChatCompletion(ctx, openaigo.ChatCompletionRequest{
		Model: c.model,
		Messages: []openaigo.ChatCompletionMessage{
			{Role: openaigo.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openaigo.ChatCompletionResponseFormat{
			Type: openaigo.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: temperature,
	})
	duration := time.Since(startTime)

	if err != nil {
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "operation": operation, "status": "error"}).Inc()
		c.logger.Error("AI request failed",
			zap.String("operation", operation),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return "", usage, fmt.Errorf("%w: %v", ErrAIGenerationFailed, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "operation": operation, "status": "error_empty_response"}).Inc()
		return "", usage, fmt.Errorf("%w: получен пустой ответ", ErrAIGenerationFailed)
	}

	usage = resp.Usage
	// Некоторые OpenAI-совместимые бэкенды не возвращают usage; оцениваем
	// токены промпта локально, чтобы метрики не были дырявыми.
	if usage.PromptTokens == 0 {
		usage.PromptTokens = c.estimateTokens(prompt)
	}

	aiRequestsTotal.With(prometheus.Labels{"model": c.model, "operation": operation, "status": "success"}).Inc()
	aiRequestDuration.With(prometheus.Labels{"model": c.model, "operation": operation}).Observe(duration.Seconds())
	aiPromptTokens.With(prometheus.Labels{"model": c.model}).Observe(float64(usage.PromptTokens))
	aiCompletionTokens.With(prometheus.Labels{"model": c.model}).Observe(float64(usage.CompletionTokens))
	if cost := calculateCost(usage.PromptTokens, usage.CompletionTokens); cost > 0 {
		aiEstimatedCostUSD.With(prometheus.Labels{"model": c.model}).Add(cost)
	}

	c.logger.Debug("AI response received",
		zap.String("operation", operation),
		zap.Duration("duration", duration),
		zap.Int("responseChars", len(resp.Choices[0].Message.Content)),
		zap.Int("promptTokens", usage.PromptTokens),
		zap.Int("completionTokens", usage.CompletionTokens),
	)

	return resp.Choices[0].Message.Content, usage, nil
}

// estimateTokens оценивает количество токенов в тексте через tiktoken.
func (c *openAIClient) estimateTokens(text string) int {
	tke, err := tiktoken.EncodingForModel(c.model)
	if err != nil {
		tke, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return 0
		}
	}
	return len(tke.Encode(text, nil, nil))
}
