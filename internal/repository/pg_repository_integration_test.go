//go:build integration

package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"bedtime-server/internal/database"
	"bedtime-server/internal/model"
	"bedtime-server/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// RepositoryIntegrationTestSuite гоняет PostgreSQL-реализации репозиториев
// против настоящей БД в контейнере.
type RepositoryIntegrationTestSuite struct {
	suite.Suite
	pgContainer *postgres.PostgresContainer
	dbPool      *pgxpool.Pool

	stories     repository.StoryRepository
	preferences repository.PreferencesRepository
	characters  repository.CharacterSuggestionRepository
}

// SetupSuite запускается один раз перед всеми тестами в наборе
func (s *RepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("test-db"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(5*time.Minute),
		),
	)
	require.NoError(s.T(), err)
	s.pgContainer = pgContainer

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(s.T(), err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(s.T(), err)
	s.dbPool = pool

	require.NoError(s.T(), database.ApplyMigrations(pool))

	logger := zap.NewNop()
	s.stories = repository.NewPgStoryRepository(pool, logger)
	s.preferences = repository.NewPgPreferencesRepository(pool, logger)
	s.characters = repository.NewPgCharacterRepository(pool, logger)
}

// TearDownSuite запускается один раз после всех тестов
func (s *RepositoryIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(context.Background())
	}
}

// SetupTest очищает таблицы перед каждым тестом, кроме засеянных подсказок
func (s *RepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	_, err := s.dbPool.Exec(ctx, `DELETE FROM stories`)
	require.NoError(s.T(), err)
	_, err = s.dbPool.Exec(ctx, `DELETE FROM user_preferences`)
	require.NoError(s.T(), err)
}

func (s *RepositoryIntegrationTestSuite) newStory(title string) *model.Story {
	moral := "kindness matters"
	return &model.Story{
		ID:              uuid.New(),
		Title:           title,
		Content:         "Once upon a time in an enchanted forest...",
		Characters:      []string{"a brave fox", "a wise owl"},
		Setting:         "an enchanted forest",
		Age:             5,
		StoryLength:     model.StoryLength5Min,
		MoralTheme:      &moral,
		CurriculumStage: "Key Stage 1",
		CreatedAt:       time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (s *RepositoryIntegrationTestSuite) TestStoryLifecycle() {
	ctx := context.Background()

	story := s.newStory("The Brave Fox")
	s.Require().NoError(s.stories.Create(ctx, story))

	got, err := s.stories.GetByID(ctx, story.ID)
	s.Require().NoError(err)
	s.Equal(story.Title, got.Title)
	s.Equal(story.Characters, got.Characters)
	s.Require().NotNil(got.MoralTheme)
	s.Equal("kindness matters", *got.MoralTheme)
	s.Nil(got.IllustrationURL)
	s.Equal("Key Stage 1", got.CurriculumStage)

	s.Require().NoError(s.stories.Delete(ctx, story.ID))
	s.ErrorIs(s.stories.Delete(ctx, story.ID), model.ErrNotFound)

	_, err = s.stories.GetByID(ctx, story.ID)
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *RepositoryIntegrationTestSuite) TestStoryListNewestFirst() {
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Microsecond)
	titles := []string{"First", "Second", "Third"}
	for i, title := range titles {
		story := s.newStory(title)
		story.CreatedAt = base.Add(time.Duration(i) * time.Second)
		s.Require().NoError(s.stories.Create(ctx, story))
	}

	stories, err := s.stories.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(stories, 3)
	s.Equal("Third", stories[0].Title)
	s.Equal("First", stories[2].Title)
}

func (s *RepositoryIntegrationTestSuite) TestPreferencesDefaultsAndReplace() {
	ctx := context.Background()

	prefs, err := s.preferences.Get(ctx)
	s.Require().NoError(err)
	s.Equal(model.PreferencesID, prefs.ID)
	s.Equal(5, prefs.DefaultAge)
	s.Equal("soft", prefs.IllustrationStyle)

	name := "Sam"
	prefs.ChildName = &name
	prefs.DefaultAge = 9
	prefs.FavouriteThemes = []string{"space"}
	_, err = s.preferences.Upsert(ctx, prefs)
	s.Require().NoError(err)

	got, err := s.preferences.Get(ctx)
	s.Require().NoError(err)
	s.Require().NotNil(got.ChildName)
	s.Equal("Sam", *got.ChildName)
	s.Equal(9, got.DefaultAge)
	s.Equal([]string{"space"}, got.FavouriteThemes)

	// Повторный Get не перетирает сохраненное дефолтами.
	got2, err := s.preferences.Get(ctx)
	s.Require().NoError(err)
	s.Equal(9, got2.DefaultAge)
}

func (s *RepositoryIntegrationTestSuite) TestCharacterSeedsPresent() {
	suggestions, err := s.characters.List(context.Background())
	s.Require().NoError(err)
	s.GreaterOrEqual(len(suggestions), 12)
}

func (s *RepositoryIntegrationTestSuite) TestCharacterConcurrentIncrements() {
	ctx := context.Background()
	character := "an integration test badger"

	const goroutines = 8
	const perGoroutine = 25

	// Ошибки собираем в канал: падать можно только из тестовой горутины.
	errCh := make(chan error, goroutines*perGoroutine)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				if err := s.characters.IncrementUsage(ctx, character); err != nil {
					errCh <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		s.Require().NoError(err)
	}

	suggestions, err := s.characters.List(ctx)
	s.Require().NoError(err)

	var found *model.CharacterSuggestion
	for i := range suggestions {
		if suggestions[i].Character == character {
			found = &suggestions[i]
			break
		}
	}
	s.Require().NotNil(found)
	s.Equal(goroutines*perGoroutine, found.UsageCount)
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(RepositoryIntegrationTestSuite))
}
