package provider

import (
	"fmt"
	"strings"

	"bedtime-server/internal/curriculum"
	"bedtime-server/internal/model"
)

// Целевой объем текста в словах для каждой длительности чтения.
const (
	wordCount5Min  = 400
	wordCount10Min = 800
)

// BuildSpec собирает спецификацию генерации из нормализованного запроса и
// профиля куррикулума. Чистое преобразование данных: без ретраев и кэшей.
func BuildSpec(req model.StoryRequest, profile curriculum.Profile) Spec {
	wordCount := wordCount5Min
	if req.StoryLength == model.StoryLength10Min {
		wordCount = wordCount10Min
	}

	return Spec{
		Characters:      req.Characters,
		Setting:         req.Setting,
		Age:             req.Age,
		TargetWordCount: wordCount,
		MoralTheme:      req.MoralTheme,
		Curriculum:      profile,
	}
}

// buildStoryPrompt собирает текст промпта генерации истории. Единственное
// место сборки: оба бэкенда используют его без изменений.
func buildStoryPrompt(spec Spec) string {
	moralTheme := spec.MoralTheme
	if moralTheme == "" {
		moralTheme = "Choose an age-appropriate moral lesson"
	}

	readingMinutes := 5
	if spec.TargetWordCount >= wordCount10Min {
		readingMinutes = 10
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a bedtime story for a %d-year-old child following UK National Curriculum %s standards.\n\n",
		spec.Age, spec.Curriculum.Stage)

	b.WriteString("STORY REQUIREMENTS:\n")
	fmt.Fprintf(&b, "- Characters: %s\n", strings.Join(spec.Characters, ", "))
	fmt.Fprintf(&b, "- Setting: %s\n", spec.Setting)
	fmt.Fprintf(&b, "- Length: Approximately %d words for a %d-minute reading time\n", spec.TargetWordCount, readingMinutes)
	fmt.Fprintf(&b, "- Moral theme: %s\n\n", moralTheme)

	fmt.Fprintf(&b, "UK CURRICULUM ALIGNMENT (%s):\n", spec.Curriculum.Stage)
	fmt.Fprintf(&b, "- Vocabulary level: %s\n", spec.Curriculum.VocabularyLevel)
	fmt.Fprintf(&b, "- Sentence complexity: %s\n", spec.Curriculum.SentenceComplexity)
	fmt.Fprintf(&b, "- Moral reasoning: %s\n", spec.Curriculum.MoralReasoningLevel)
	fmt.Fprintf(&b, "- Reading level: %s\n\n", spec.Curriculum.ReadingLevel)

	b.WriteString(`LANGUAGE REQUIREMENTS:
- Use proper UK English spelling (colour, realise, centre, behaviour, etc.)
- Include age-appropriate "older" vocabulary for enrichment
- Incorporate classic fable-style moral lessons
- Use Standard English with appropriate complexity for age
- Bedtime-appropriate tone (calming, reassuring, positive ending)

STORY STRUCTURE:
- Begin with "Once upon a time" or similar classic opening
- Include all specified characters meaningfully
- Set the story in the described setting
- Build to a gentle conflict or challenge
- Resolve with the moral lesson naturally integrated
- End with a peaceful, satisfying conclusion
- Include "The End" at the finish

Please respond with JSON in this exact format:
{
  "title": "Generated story title",
  "content": "Full story text with proper UK spelling and age-appropriate language",
  "moral": "The moral lesson explained simply",
  "suggestedTitles": ["Alternative title 1", "Alternative title 2", "Alternative title 3"]
}`)

	return b.String()
}

// buildIllustrationPrompt собирает промпт генерации иллюстрации.
// Стиль зависит от возраста: для самых маленьких — акварель.
func buildIllustrationPrompt(title string, characters []string, setting string, age int) string {
	style := "gentle storybook illustration"
	if age <= 5 {
		style = "soft watercolor children's book illustration"
	}

	return fmt.Sprintf(`Create a %s for a bedtime story titled "%s".
Scene: %s featuring %s.
Style: Soft, muted colours perfect for bedtime, dreamy and calming atmosphere, child-friendly and non-scary, warm lighting suggesting evening or magical twilight.
Art style: Gentle, rounded shapes, pastel colour palette, cozy and reassuring mood.`,
		style, title, setting, strings.Join(characters, ", "))
}

// buildSuggestCharactersPrompt собирает промпт подсказок персонажей.
func buildSuggestCharactersPrompt() string {
	return `Generate 12 creative, diverse characters suitable for children's bedtime stories. Include a mix of:
- Animals (domestic and woodland creatures)
- Fantasy characters (fairies, dragons, etc.)
- Human characters (children, adults in various professions)
- Magical beings
- Each character should be described in 3-5 words with the article (A/An)

Examples: "A brave little hedgehog", "A wise old tortoise", "A magical singing bird"

Please respond with JSON in this format:
{
  "characters": ["Character 1", "Character 2", ...]
}`
}

// FallbackCharacters - фиксированный список подсказок, возвращаемый при
// отказе провайдера. Отказ генерации подсказок никогда не является ошибкой
// для вызывающей стороны.
func FallbackCharacters() []string {
	return []string{
		"A curious little rabbit",
		"A wise old owl",
		"A friendly dragon",
		"A brave young knight",
		"A magical fairy",
		"A sleepy bear",
		"A clever fox",
		"A kind grandmother",
		"A playful puppy",
		"A gentle giant",
		"A singing bird",
		"A helpful mouse",
	}
}
