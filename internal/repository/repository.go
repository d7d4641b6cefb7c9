package repository

import (
	"context"

	"bedtime-server/internal/model"

	"github.com/google/uuid"
)

// StoryRepository defines persistence operations for stories.
// Stories are immutable after creation: there is no update operation.
type StoryRepository interface {
	// Create persists a new story. IDs are never reused, even after deletion.
	Create(ctx context.Context, story *model.Story) error
	// GetByID returns the story or model.ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Story, error)
	// List returns all stories ordered by recency (newest first).
	List(ctx context.Context) ([]model.Story, error)
	// Delete removes the story permanently. Returns model.ErrNotFound when
	// the id is already absent, so callers can distinguish "deleted" from
	// "was not there" for 404 semantics.
	Delete(ctx context.Context, id uuid.UUID) error
}

// PreferencesRepository manages the singleton user preferences record.
type PreferencesRepository interface {
	// Get returns the preferences, initializing defaults on first access.
	Get(ctx context.Context) (*model.UserPreferences, error)
	// Upsert replaces the singleton record wholesale. No field merging:
	// callers supply the complete object.
	Upsert(ctx context.Context, prefs *model.UserPreferences) (*model.UserPreferences, error)
}

// CharacterSuggestionRepository tracks character usage counters.
type CharacterSuggestionRepository interface {
	// List returns all suggestions ordered by usage count (most used first).
	List(ctx context.Context) ([]model.CharacterSuggestion, error)
	// IncrementUsage atomically increments the counter for the exact
	// character string, inserting a new record with count 1 when absent.
	// Concurrent increments for the same character must not lose updates.
	IncrementUsage(ctx context.Context, character string) error
}
