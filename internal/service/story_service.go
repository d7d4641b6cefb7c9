package service

import (
	"context"
	"fmt"
	"time"

	"bedtime-server/internal/curriculum"
	"bedtime-server/internal/model"
	"bedtime-server/internal/provider"
	"bedtime-server/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerateStoryResult - итог генерации: сохраненная история плюс
// альтернативные заголовки, которые не персистятся.
type GenerateStoryResult struct {
	Story           *model.Story `json:"story"`
	SuggestedTitles []string     `json:"suggestedTitles"`
}

// StoryService - основная бизнес-логика сервиса историй.
type StoryService interface {
	// GenerateStory проводит запрос через весь конвейер: нормализация,
	// профиль куррикулума, генерация текста и иллюстрации, сохранение,
	// инкременты счетчиков персонажей.
	GenerateStory(ctx context.Context, raw model.StoryRequest) (*GenerateStoryResult, error)
	ListStories(ctx context.Context) ([]model.Story, error)
	GetStory(ctx context.Context, id uuid.UUID) (*model.Story, error)
	DeleteStory(ctx context.Context, id uuid.UUID) error

	GetPreferences(ctx context.Context) (*model.UserPreferences, error)
	UpdatePreferences(ctx context.Context, prefs *model.UserPreferences) (*model.UserPreferences, error)

	ListCharacterSuggestions(ctx context.Context) ([]model.CharacterSuggestion, error)
	// SuggestCharacters запрашивает свежие идеи персонажей у провайдера.
	// Никогда не возвращает ошибку: при отказе провайдера отдается
	// фиксированный список.
	SuggestCharacters(ctx context.Context) ([]string, error)
}

type storyServiceImpl struct {
	stories     repository.StoryRepository
	preferences repository.PreferencesRepository
	characters  repository.CharacterSuggestionRepository
	aiClient    provider.AIClient
	logger      *zap.Logger
}

// NewStoryService создает сервис историй.
func NewStoryService(
	stories repository.StoryRepository,
	preferences repository.PreferencesRepository,
	characters repository.CharacterSuggestionRepository,
	aiClient provider.AIClient,
	logger *zap.Logger,
) StoryService {
	return &storyServiceImpl{
		stories:     stories,
		preferences: preferences,
		characters:  characters,
		aiClient:    aiClient,
		logger:      logger.Named("StoryService"),
	}
}

func (s *storyServiceImpl) GenerateStory(ctx context.Context, raw model.StoryRequest) (*GenerateStoryResult, error) {
	req, err := NormalizeStoryRequest(raw)
	if err != nil {
		s.logger.Warn("Story request failed validation", zap.Error(err))
		return nil, err
	}

	profile := curriculum.Resolve(req.Age)
	spec := provider.BuildSpec(req, profile)

	log := s.logger.With(
		zap.Int("age", req.Age),
		zap.String("stage", profile.Stage),
		zap.String("storyLength", string(req.StoryLength)),
	)
	log.Info("Generating story")

	// Отказ генерации текста фатален: ничего не сохраняем.
	result, err := s.aiClient.GenerateStory(ctx, spec)
	if err != nil {
		log.Error("Story generation failed", zap.Error(err))
		return nil, fmt.Errorf("ошибка генерации истории: %w", err)
	}

	// Отказ иллюстрации не фатален: история сохраняется без нее.
	var illustrationURL *string
	if url, err := s.aiClient.GenerateIllustration(ctx, result.Title, req.Characters, req.Setting, req.Age); err != nil {
		log.Warn("Illustration generation failed, saving story without it", zap.Error(err))
	} else if url != "" {
		illustrationURL = &url
	}

	// Храним фактически использованную мораль, а не сентинель из запроса.
	var moralTheme *string
	if result.Moral != "" {
		moralTheme = &result.Moral
	}

	story := &model.Story{
		ID:              uuid.New(),
		Title:           result.Title,
		Content:         result.Content,
		Characters:      req.Characters,
		Setting:         req.Setting,
		Age:             req.Age,
		StoryLength:     req.StoryLength,
		MoralTheme:      moralTheme,
		IllustrationURL: illustrationURL,
		CurriculumStage: profile.Stage,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.stories.Create(ctx, story); err != nil {
		log.Error("Failed to persist story", zap.Error(err))
		return nil, fmt.Errorf("ошибка сохранения истории: %w", err)
	}

	// Счетчики использования персонажей - best-effort: отказ одного
	// инкремента не блокирует остальные и не откатывает историю.
	for _, character := range req.Characters {
		if err := s.characters.IncrementUsage(ctx, character); err != nil {
			log.Warn("Failed to increment character usage",
				zap.String("character", character), zap.Error(err))
		}
	}

	log.Info("Story generated successfully", zap.String("storyID", story.ID.String()))
	return &GenerateStoryResult{
		Story:           story,
		SuggestedTitles: result.SuggestedTitles,
	}, nil
}

func (s *storyServiceImpl) ListStories(ctx context.Context) ([]model.Story, error) {
	return s.stories.List(ctx)
}

func (s *storyServiceImpl) GetStory(ctx context.Context, id uuid.UUID) (*model.Story, error) {
	return s.stories.GetByID(ctx, id)
}

func (s *storyServiceImpl) DeleteStory(ctx context.Context, id uuid.UUID) error {
	return s.stories.Delete(ctx, id)
}

func (s *storyServiceImpl) GetPreferences(ctx context.Context) (*model.UserPreferences, error) {
	return s.preferences.Get(ctx)
}

func (s *storyServiceImpl) UpdatePreferences(ctx context.Context, prefs *model.UserPreferences) (*model.UserPreferences, error) {
	return s.preferences.Upsert(ctx, prefs)
}

func (s *storyServiceImpl) ListCharacterSuggestions(ctx context.Context) ([]model.CharacterSuggestion, error) {
	return s.characters.List(ctx)
}

func (s *storyServiceImpl) SuggestCharacters(ctx context.Context) ([]string, error) {
	characters, err := s.aiClient.SuggestCharacters(ctx)
	if err != nil || len(characters) == 0 {
		s.logger.Warn("Character suggestion failed, using fallback list", zap.Error(err))
		return provider.FallbackCharacters(), nil
	}
	return characters, nil
}
