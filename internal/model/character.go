package model

import "github.com/google/uuid"

// CharacterSuggestion - персонаж с накопленным счетчиком использования.
type CharacterSuggestion struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Character  string    `json:"character" db:"character"`
	UsageCount int       `json:"usageCount" db:"usage_count"`
}
