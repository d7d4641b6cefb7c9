package repository

import (
	"context"
	"sort"
	"sync"

	"bedtime-server/internal/model"

	"github.com/google/uuid"
)

// Стартовый набор подсказок персонажей, тот же, что в init-миграции.
var seedCharacters = []string{
	"A brave little mouse",
	"A wise old owl",
	"A friendly dragon",
	"A curious rabbit",
	"A helpful badger",
	"A gentle giant",
	"A magical fairy",
	"A clever fox",
	"A kind elephant",
	"A playful dolphin",
	"A mysterious cat",
	"A loyal dog",
}

// In-memory реализации репозиториев. Используются при STORAGE=memory и в
// тестах хендлеров; семантика совпадает с PostgreSQL-реализациями.

var _ StoryRepository = (*MemoryStoryRepository)(nil)

// MemoryStoryRepository хранит истории в map под мьютексом.
type MemoryStoryRepository struct {
	mu      sync.Mutex
	stories map[uuid.UUID]model.Story
	order   []uuid.UUID // порядок вставки, новые в конце
}

func NewMemoryStoryRepository() *MemoryStoryRepository {
	return &MemoryStoryRepository{
		stories: make(map[uuid.UUID]model.Story),
	}
}

func (r *MemoryStoryRepository) Create(_ context.Context, story *model.Story) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stories[story.ID] = *story
	r.order = append(r.order, story.ID)
	return nil
}

func (r *MemoryStoryRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Story, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	story, ok := r.stories[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &story, nil
}

func (r *MemoryStoryRepository) List(_ context.Context) ([]model.Story, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stories := make([]model.Story, 0, len(r.stories))
	// Обратный порядок вставки: новые первыми, как ORDER BY created_at DESC.
	for i := len(r.order) - 1; i >= 0; i-- {
		if story, ok := r.stories[r.order[i]]; ok {
			stories = append(stories, story)
		}
	}
	return stories, nil
}

func (r *MemoryStoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.stories[id]; !ok {
		return model.ErrNotFound
	}
	delete(r.stories, id)
	return nil
}

var _ PreferencesRepository = (*MemoryPreferencesRepository)(nil)

// MemoryPreferencesRepository хранит singleton настроек.
type MemoryPreferencesRepository struct {
	mu    sync.Mutex
	prefs *model.UserPreferences
}

func NewMemoryPreferencesRepository() *MemoryPreferencesRepository {
	return &MemoryPreferencesRepository{}
}

func (r *MemoryPreferencesRepository) Get(_ context.Context) (*model.UserPreferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.prefs == nil {
		r.prefs = model.DefaultPreferences()
	}
	copied := *r.prefs
	return &copied, nil
}

func (r *MemoryPreferencesRepository) Upsert(_ context.Context, prefs *model.UserPreferences) (*model.UserPreferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prefs.ID = model.PreferencesID
	if prefs.FavouriteThemes == nil {
		prefs.FavouriteThemes = []string{}
	}
	copied := *prefs
	r.prefs = &copied
	return prefs, nil
}

var _ CharacterSuggestionRepository = (*MemoryCharacterRepository)(nil)

// MemoryCharacterRepository ведет счетчики использования персонажей.
type MemoryCharacterRepository struct {
	mu          sync.Mutex
	suggestions map[string]*model.CharacterSuggestion
}

// NewMemoryCharacterRepository создает репозиторий, засеянный стартовым
// набором персонажей с нулевыми счетчиками, как и миграция для PostgreSQL.
func NewMemoryCharacterRepository() *MemoryCharacterRepository {
	r := &MemoryCharacterRepository{
		suggestions: make(map[string]*model.CharacterSuggestion),
	}
	for _, character := range seedCharacters {
		r.suggestions[character] = &model.CharacterSuggestion{
			ID:         uuid.New(),
			Character:  character,
			UsageCount: 0,
		}
	}
	return r
}

func (r *MemoryCharacterRepository) List(_ context.Context) ([]model.CharacterSuggestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	suggestions := make([]model.CharacterSuggestion, 0, len(r.suggestions))
	for _, s := range r.suggestions {
		suggestions = append(suggestions, *s)
	}
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].UsageCount != suggestions[j].UsageCount {
			return suggestions[i].UsageCount > suggestions[j].UsageCount
		}
		return suggestions[i].Character < suggestions[j].Character
	})
	return suggestions, nil
}

func (r *MemoryCharacterRepository) IncrementUsage(_ context.Context, character string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.suggestions[character]; ok {
		s.UsageCount++
		return nil
	}
	r.suggestions[character] = &model.CharacterSuggestion{
		ID:         uuid.New(),
		Character:  character,
		UsageCount: 1,
	}
	return nil
}
