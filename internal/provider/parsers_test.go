package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStoryResult_PlainJSON(t *testing.T) {
	raw := `{"title":"The Misty Clearing","content":"Once upon a time...\n\nThe End.","moral":"Kindness matters","suggestedTitles":["A","B","C"]}`

	result, err := parseStoryResult(raw)
	require.NoError(t, err)
	assert.Equal(t, "The Misty Clearing", result.Title)
	assert.Equal(t, "Kindness matters", result.Moral)
	assert.Len(t, result.SuggestedTitles, 3)
}

func TestParseStoryResult_MarkdownFences(t *testing.T) {
	raw := "```json\n{\"title\":\"T\",\"content\":\"C\",\"moral\":\"M\",\"suggestedTitles\":[]}\n```"

	result, err := parseStoryResult(raw)
	require.NoError(t, err)
	assert.Equal(t, "T", result.Title)
}

func TestParseStoryResult_SurroundingText(t *testing.T) {
	raw := "Here is your story:\n{\"title\":\"T\",\"content\":\"C\",\"moral\":\"\",\"suggestedTitles\":[]}\nHope you like it!"

	result, err := parseStoryResult(raw)
	require.NoError(t, err)
	assert.Equal(t, "C", result.Content)
}

func TestParseStoryResult_MissingFields(t *testing.T) {
	_, err := parseStoryResult(`{"title":"","content":"C"}`)
	assert.Error(t, err)

	_, err = parseStoryResult(`{"title":"T","content":"  "}`)
	assert.Error(t, err)

	_, err = parseStoryResult(`not json at all`)
	assert.Error(t, err)
}

func TestParseCharacterList(t *testing.T) {
	characters, err := parseCharacterList(`{"characters":["A brave cat","  ","A shy owl"]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"A brave cat", "A shy owl"}, characters)

	_, err = parseCharacterList(`{"characters":[]}`)
	assert.Error(t, err)
}
