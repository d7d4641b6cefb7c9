package model

import (
	"time"

	"github.com/google/uuid"
)

// StoryLength - длительность чтения истории.
type StoryLength string

const (
	// StoryLength5Min - короткая история (~400 слов).
	StoryLength5Min StoryLength = "5min"
	// StoryLength10Min - длинная история (~800 слов).
	StoryLength10Min StoryLength = "10min"
)

// IsValid проверяет, что значение входит в допустимый набор.
func (l StoryLength) IsValid() bool {
	return l == StoryLength5Min || l == StoryLength10Min
}

// Story - сохраненная сгенерированная история. После создания неизменяема.
type Story struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	Title           string      `json:"title" db:"title"`
	Content         string      `json:"content" db:"content"`
	Characters      []string    `json:"characters" db:"characters"`
	Setting         string      `json:"setting" db:"setting"`
	Age             int         `json:"age" db:"age"`
	StoryLength     StoryLength `json:"storyLength" db:"story_length"`
	MoralTheme      *string     `json:"moralTheme,omitempty" db:"moral_theme"`
	IllustrationURL *string     `json:"illustrationUrl,omitempty" db:"illustration_url"`
	CurriculumStage string      `json:"curriculumStage" db:"curriculum_stage"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
}
