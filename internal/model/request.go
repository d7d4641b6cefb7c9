package model

// StoryRequest - входные параметры генерации истории до нормализации.
// Пустой MoralTheme означает, что мораль выбирает провайдер.
type StoryRequest struct {
	Characters  []string    `json:"characters"`
	Setting     string      `json:"setting"`
	Age         int         `json:"age"`
	StoryLength StoryLength `json:"storyLength"`
	MoralTheme  string      `json:"moralTheme,omitempty"`
}
