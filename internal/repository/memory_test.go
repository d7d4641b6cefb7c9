package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"bedtime-server/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStory(title string, createdAt time.Time) *model.Story {
	return &model.Story{
		ID:              uuid.New(),
		Title:           title,
		Content:         "Once upon a time...",
		Characters:      []string{"a brave fox"},
		Setting:         "an enchanted forest",
		Age:             5,
		StoryLength:     model.StoryLength5Min,
		CurriculumStage: "Key Stage 1",
		CreatedAt:       createdAt,
	}
}

func TestMemoryStoryRepository_ListNewestFirst(t *testing.T) {
	repo := NewMemoryStoryRepository()
	ctx := context.Background()

	base := time.Now().UTC()
	for i, title := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Create(ctx, newTestStory(title, base.Add(time.Duration(i)*time.Second))))
	}

	stories, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, stories, 3)
	assert.Equal(t, "C", stories[0].Title)
	assert.Equal(t, "B", stories[1].Title)
	assert.Equal(t, "A", stories[2].Title)
}

func TestMemoryStoryRepository_GetAndDelete(t *testing.T) {
	repo := NewMemoryStoryRepository()
	ctx := context.Background()

	story := newTestStory("The Brave Fox", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, story))

	got, err := repo.GetByID(ctx, story.ID)
	require.NoError(t, err)
	assert.Equal(t, story.Title, got.Title)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, story.ID))

	// Повторное удаление должно вернуть ErrNotFound.
	err = repo.Delete(ctx, story.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = repo.GetByID(ctx, story.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestMemoryPreferencesRepository_DefaultsOnFirstGet(t *testing.T) {
	repo := NewMemoryPreferencesRepository()
	ctx := context.Background()

	prefs, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.PreferencesID, prefs.ID)
	assert.Nil(t, prefs.ChildName)
	assert.Equal(t, 5, prefs.DefaultAge)
	assert.Equal(t, 5, prefs.PreferredLength)
	assert.Equal(t, []string{"animals", "magic", "friendship"}, prefs.FavouriteThemes)
	assert.True(t, prefs.LanguageEnrichment)
	assert.True(t, prefs.AutoSave)
	assert.Equal(t, "soft", prefs.IllustrationStyle)
}

func TestMemoryPreferencesRepository_UpsertReplacesWholesale(t *testing.T) {
	repo := NewMemoryPreferencesRepository()
	ctx := context.Background()

	name := "Alex"
	updated, err := repo.Upsert(ctx, &model.UserPreferences{
		ChildName:          &name,
		DefaultAge:         8,
		PreferredLength:    10,
		FavouriteThemes:    nil,
		LanguageEnrichment: false,
		AutoSave:           false,
		IllustrationStyle:  "vivid",
	})
	require.NoError(t, err)
	assert.Equal(t, model.PreferencesID, updated.ID)
	assert.NotNil(t, updated.FavouriteThemes, "nil themes normalized to empty slice")

	prefs, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, prefs.ChildName)
	assert.Equal(t, "Alex", *prefs.ChildName)
	assert.Equal(t, 8, prefs.DefaultAge)
	assert.Empty(t, prefs.FavouriteThemes)
	assert.False(t, prefs.LanguageEnrichment)
	assert.Equal(t, "vivid", prefs.IllustrationStyle)
}

func TestMemoryCharacterRepository_SeededAtZero(t *testing.T) {
	repo := NewMemoryCharacterRepository()

	suggestions, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, suggestions, 12)
	for _, s := range suggestions {
		assert.Zero(t, s.UsageCount)
		assert.NotEmpty(t, s.Character)
	}
}

func TestMemoryCharacterRepository_IncrementOrdersByUsage(t *testing.T) {
	repo := NewMemoryCharacterRepository()
	ctx := context.Background()

	require.NoError(t, repo.IncrementUsage(ctx, "a brave little fox"))
	require.NoError(t, repo.IncrementUsage(ctx, "a brave little fox"))
	require.NoError(t, repo.IncrementUsage(ctx, "a curious robot"))

	suggestions, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a brave little fox", suggestions[0].Character)
	assert.Equal(t, 2, suggestions[0].UsageCount)
	assert.Equal(t, "a curious robot", suggestions[1].Character)
	assert.Equal(t, 1, suggestions[1].UsageCount)
}

func TestMemoryCharacterRepository_NewCharacterStartsAtOne(t *testing.T) {
	repo := NewMemoryCharacterRepository()
	ctx := context.Background()

	require.NoError(t, repo.IncrementUsage(ctx, "a sleepy dragon hatchling"))

	suggestions, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, suggestions, 13)
	assert.Equal(t, "a sleepy dragon hatchling", suggestions[0].Character)
	assert.Equal(t, 1, suggestions[0].UsageCount)
}

func TestMemoryCharacterRepository_ConcurrentIncrements(t *testing.T) {
	repo := NewMemoryCharacterRepository()
	ctx := context.Background()

	const goroutines = 8
	const perGoroutine = 50

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				_ = repo.IncrementUsage(ctx, "a wise old owl")
			}
		}()
	}
	wg.Wait()

	suggestions, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a wise old owl", suggestions[0].Character)
	assert.Equal(t, goroutines*perGoroutine, suggestions[0].UsageCount)
}
