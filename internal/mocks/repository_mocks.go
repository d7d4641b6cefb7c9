package mocks

import (
	"context"

	"bedtime-server/internal/model"
	"bedtime-server/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStoryRepository is a mock type for the StoryRepository type
type MockStoryRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, story
func (_m *MockStoryRepository) Create(ctx context.Context, story *model.Story) error {
	ret := _m.Called(ctx, story)
	return ret.Error(0)
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockStoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Story, error) {
	ret := _m.Called(ctx, id)

	var r0 *model.Story
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Story)
	}
	return r0, ret.Error(1)
}

// List provides a mock function with given fields: ctx
func (_m *MockStoryRepository) List(ctx context.Context) ([]model.Story, error) {
	ret := _m.Called(ctx)

	var r0 []model.Story
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Story)
	}
	return r0, ret.Error(1)
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockStoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// NewMockStoryRepository creates a new instance of MockStoryRepository.
func NewMockStoryRepository(t interface {
	mock.TestingT
	Helper()
}) *MockStoryRepository {
	m := &MockStoryRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.StoryRepository = (*MockStoryRepository)(nil)

// MockPreferencesRepository is a mock type for the PreferencesRepository type
type MockPreferencesRepository struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx
func (_m *MockPreferencesRepository) Get(ctx context.Context) (*model.UserPreferences, error) {
	ret := _m.Called(ctx)

	var r0 *model.UserPreferences
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.UserPreferences)
	}
	return r0, ret.Error(1)
}

// Upsert provides a mock function with given fields: ctx, prefs
func (_m *MockPreferencesRepository) Upsert(ctx context.Context, prefs *model.UserPreferences) (*model.UserPreferences, error) {
	ret := _m.Called(ctx, prefs)

	var r0 *model.UserPreferences
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.UserPreferences)
	}
	return r0, ret.Error(1)
}

// NewMockPreferencesRepository creates a new instance of MockPreferencesRepository.
func NewMockPreferencesRepository(t interface {
	mock.TestingT
	Helper()
}) *MockPreferencesRepository {
	m := &MockPreferencesRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.PreferencesRepository = (*MockPreferencesRepository)(nil)

// MockCharacterSuggestionRepository is a mock type for the CharacterSuggestionRepository type
type MockCharacterSuggestionRepository struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx
func (_m *MockCharacterSuggestionRepository) List(ctx context.Context) ([]model.CharacterSuggestion, error) {
	ret := _m.Called(ctx)

	var r0 []model.CharacterSuggestion
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.CharacterSuggestion)
	}
	return r0, ret.Error(1)
}

// IncrementUsage provides a mock function with given fields: ctx, character
func (_m *MockCharacterSuggestionRepository) IncrementUsage(ctx context.Context, character string) error {
	ret := _m.Called(ctx, character)
	return ret.Error(0)
}

// NewMockCharacterSuggestionRepository creates a new instance of MockCharacterSuggestionRepository.
func NewMockCharacterSuggestionRepository(t interface {
	mock.TestingT
	Helper()
}) *MockCharacterSuggestionRepository {
	m := &MockCharacterSuggestionRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.CharacterSuggestionRepository = (*MockCharacterSuggestionRepository)(nil)
