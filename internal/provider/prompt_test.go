package provider

import (
	"testing"

	"bedtime-server/internal/curriculum"
	"bedtime-server/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestBuildSpec_WordCounts(t *testing.T) {
	req := model.StoryRequest{
		Characters:  []string{"Fox", "Owl", "Bear"},
		Setting:     "A misty forest clearing",
		Age:         5,
		StoryLength: model.StoryLength5Min,
	}

	spec := BuildSpec(req, curriculum.Resolve(req.Age))
	assert.Equal(t, 400, spec.TargetWordCount)
	assert.Equal(t, curriculum.StageKS1, spec.Curriculum.Stage)

	req.StoryLength = model.StoryLength10Min
	spec = BuildSpec(req, curriculum.Resolve(req.Age))
	assert.Equal(t, 800, spec.TargetWordCount)
}

func TestBuildStoryPrompt_ContainsRequestData(t *testing.T) {
	spec := BuildSpec(model.StoryRequest{
		Characters:  []string{"A brave little mouse", "A wise old owl", "A friendly dragon"},
		Setting:     "An enchanted castle garden",
		Age:         8,
		StoryLength: model.StoryLength10Min,
		MoralTheme:  "honesty",
	}, curriculum.Resolve(8))

	prompt := buildStoryPrompt(spec)

	assert.Contains(t, prompt, "8-year-old")
	assert.Contains(t, prompt, "Key Stage 2")
	assert.Contains(t, prompt, "A brave little mouse, A wise old owl, A friendly dragon")
	assert.Contains(t, prompt, "An enchanted castle garden")
	assert.Contains(t, prompt, "Approximately 800 words for a 10-minute reading time")
	assert.Contains(t, prompt, "Moral theme: honesty")
	// Дескрипторы куррикулума должны попадать в промпт из единой таблицы
	assert.Contains(t, prompt, spec.Curriculum.VocabularyLevel)
	assert.Contains(t, prompt, spec.Curriculum.ReadingLevel)
}

func TestBuildStoryPrompt_EmptyMoralLetsProviderChoose(t *testing.T) {
	spec := BuildSpec(model.StoryRequest{
		Characters:  []string{"Fox", "Owl", "Bear"},
		Setting:     "A misty forest clearing",
		Age:         5,
		StoryLength: model.StoryLength5Min,
	}, curriculum.Resolve(5))

	prompt := buildStoryPrompt(spec)
	assert.Contains(t, prompt, "Choose an age-appropriate moral lesson")
}

func TestBuildIllustrationPrompt_StyleByAge(t *testing.T) {
	young := buildIllustrationPrompt("The Sleepy Star", []string{"Fox"}, "A quiet meadow", 4)
	assert.Contains(t, young, "soft watercolor children's book illustration")

	older := buildIllustrationPrompt("The Sleepy Star", []string{"Fox"}, "A quiet meadow", 6)
	assert.Contains(t, older, "gentle storybook illustration")
}

func TestFallbackCharacters_FixedList(t *testing.T) {
	characters := FallbackCharacters()
	assert.Len(t, characters, 12)
	assert.Contains(t, characters, "A wise old owl")
}
