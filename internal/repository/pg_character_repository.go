package repository

import (
	"context"
	"fmt"

	"bedtime-server/internal/model"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Compile-time check
var _ CharacterSuggestionRepository = (*pgCharacterRepository)(nil)

type pgCharacterRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewPgCharacterRepository создает репозиторий подсказок персонажей.
func NewPgCharacterRepository(db *pgxpool.Pool, logger *zap.Logger) CharacterSuggestionRepository {
	return &pgCharacterRepository{
		db:     db,
		logger: logger.Named("PgCharacterRepo"),
	}
}

// List - возвращает подсказки по убыванию счетчика использования.
func (r *pgCharacterRepository) List(ctx context.Context) ([]model.CharacterSuggestion, error) {
	query := `
        SELECT id, character, usage_count
        FROM character_suggestions
        ORDER BY usage_count DESC, character ASC
    `
	var suggestions []model.CharacterSuggestion
	if err := pgxscan.Select(ctx, r.db, &suggestions, query); err != nil {
		r.logger.Error("Failed to list character suggestions", zap.Error(err))
		return nil, fmt.Errorf("ошибка получения подсказок персонажей: %w", err)
	}
	return suggestions, nil
}

// IncrementUsage - атомарный инкремент счетчика по точному совпадению строки.
// Единственный атомарный upsert без разрыва read-then-write: конкурентные
// инкременты одного персонажа не теряют обновления.
func (r *pgCharacterRepository) IncrementUsage(ctx context.Context, character string) error {
	query := `
        INSERT INTO character_suggestions (id, character, usage_count)
        VALUES ($1, $2, 1)
        ON CONFLICT (character) DO UPDATE SET
            usage_count = character_suggestions.usage_count + 1
    `
	_, err := r.db.Exec(ctx, query, uuid.New(), character)
	if err != nil {
		r.logger.Error("Failed to increment character usage",
			zap.String("character", character), zap.Error(err))
		return fmt.Errorf("ошибка инкремента счетчика персонажа '%s': %w", character, err)
	}
	return nil
}
