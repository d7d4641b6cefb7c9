package repository

import (
	"context"
	"errors"
	"fmt"

	"bedtime-server/internal/model"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Compile-time check
var _ StoryRepository = (*pgStoryRepository)(nil)

type pgStoryRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewPgStoryRepository создает репозиторий историй поверх PostgreSQL.
func NewPgStoryRepository(db *pgxpool.Pool, logger *zap.Logger) StoryRepository {
	return &pgStoryRepository{
		db:     db,
		logger: logger.Named("PgStoryRepo"),
	}
}

// Create - сохраняет новую историю.
func (r *pgStoryRepository) Create(ctx context.Context, story *model.Story) error {
	query := `
        INSERT INTO stories
            (id, title, content, characters, setting, age, story_length, moral_theme, illustration_url, curriculum_stage, created_at)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	logFields := []zap.Field{zap.String("storyID", story.ID.String())}
	r.logger.Debug("Creating story", logFields...)

	_, err := r.db.Exec(ctx, query,
		story.ID,
		story.Title,
		story.Content,
		story.Characters,
		story.Setting,
		story.Age,
		story.StoryLength,
		story.MoralTheme,
		story.IllustrationURL,
		story.CurriculumStage,
		story.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create story", append(logFields, zap.Error(err))...)
		return fmt.Errorf("ошибка создания истории: %w", err)
	}

	r.logger.Info("Story created successfully", logFields...)
	return nil
}

// GetByID - возвращает историю по идентификатору.
func (r *pgStoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Story, error) {
	query := `
        SELECT id, title, content, characters, setting, age, story_length, moral_theme, illustration_url, curriculum_stage, created_at
        FROM stories
        WHERE id = $1
    `
	story := &model.Story{}
	err := pgxscan.Get(ctx, r.db, story, query, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn("Story not found", zap.String("storyID", id.String()))
			return nil, model.ErrNotFound
		}
		r.logger.Error("Failed to get story", zap.String("storyID", id.String()), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения истории %s: %w", id, err)
	}
	return story, nil
}

// List - возвращает все истории, новые первыми.
func (r *pgStoryRepository) List(ctx context.Context) ([]model.Story, error) {
	query := `
        SELECT id, title, content, characters, setting, age, story_length, moral_theme, illustration_url, curriculum_stage, created_at
        FROM stories
        ORDER BY created_at DESC, id DESC
    `
	var stories []model.Story
	if err := pgxscan.Select(ctx, r.db, &stories, query); err != nil {
		r.logger.Error("Failed to list stories", zap.Error(err))
		return nil, fmt.Errorf("ошибка получения списка историй: %w", err)
	}
	return stories, nil
}

// Delete - удаляет историю навсегда. ErrNotFound, если ее уже нет.
func (r *pgStoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM stories WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete story", zap.String("storyID", id.String()), zap.Error(err))
		return fmt.Errorf("ошибка удаления истории %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	r.logger.Info("Story deleted", zap.String("storyID", id.String()))
	return nil
}
