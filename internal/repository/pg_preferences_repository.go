package repository

import (
	"context"
	"errors"
	"fmt"

	"bedtime-server/internal/model"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Compile-time check
var _ PreferencesRepository = (*pgPreferencesRepository)(nil)

type pgPreferencesRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewPgPreferencesRepository создает репозиторий настроек поверх PostgreSQL.
// Настройки — singleton с фиксированным id; записей никогда не бывает больше одной.
func NewPgPreferencesRepository(db *pgxpool.Pool, logger *zap.Logger) PreferencesRepository {
	return &pgPreferencesRepository{
		db:     db,
		logger: logger.Named("PgPreferencesRepo"),
	}
}

const preferencesColumns = `id, child_name, default_age, preferred_length, favourite_themes, language_enrichment, auto_save, illustration_style`

// Get - возвращает настройки, создавая запись с дефолтами при первом обращении.
func (r *pgPreferencesRepository) Get(ctx context.Context) (*model.UserPreferences, error) {
	query := fmt.Sprintf(`SELECT %s FROM user_preferences WHERE id = $1`, preferencesColumns)

	prefs := &model.UserPreferences{}
	err := pgxscan.Get(ctx, r.db, prefs, query, model.PreferencesID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		r.logger.Error("Failed to get preferences", zap.Error(err))
		return nil, fmt.Errorf("ошибка получения настроек: %w", err)
	}

	// Первое обращение: инициализируем дефолтами. ON CONFLICT DO NOTHING
	// защищает от гонки двух первых обращений.
	r.logger.Info("Preferences not found, initializing defaults")
	defaults := model.DefaultPreferences()
	if _, err := r.upsert(ctx, defaults, false); err != nil {
		return nil, err
	}
	return defaults, nil
}

// Upsert - полная замена singleton-записи.
func (r *pgPreferencesRepository) Upsert(ctx context.Context, prefs *model.UserPreferences) (*model.UserPreferences, error) {
	return r.upsert(ctx, prefs, true)
}

func (r *pgPreferencesRepository) upsert(ctx context.Context, prefs *model.UserPreferences, replace bool) (*model.UserPreferences, error) {
	conflictAction := `DO NOTHING`
	if replace {
		conflictAction = `DO UPDATE SET
            child_name = EXCLUDED.child_name,
            default_age = EXCLUDED.default_age,
            preferred_length = EXCLUDED.preferred_length,
            favourite_themes = EXCLUDED.favourite_themes,
            language_enrichment = EXCLUDED.language_enrichment,
            auto_save = EXCLUDED.auto_save,
            illustration_style = EXCLUDED.illustration_style`
	}

	query := fmt.Sprintf(`
        INSERT INTO user_preferences (%s)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (id) %s
    `, preferencesColumns, conflictAction)

	prefs.ID = model.PreferencesID
	if prefs.FavouriteThemes == nil {
		prefs.FavouriteThemes = []string{}
	}

	_, err := r.db.Exec(ctx, query,
		prefs.ID,
		prefs.ChildName,
		prefs.DefaultAge,
		prefs.PreferredLength,
		prefs.FavouriteThemes,
		prefs.LanguageEnrichment,
		prefs.AutoSave,
		prefs.IllustrationStyle,
	)
	if err != nil {
		r.logger.Error("Failed to upsert preferences", zap.Error(err))
		return nil, fmt.Errorf("ошибка сохранения настроек: %w", err)
	}

	return prefs, nil
}
