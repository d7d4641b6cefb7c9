package service

import (
	"testing"

	"bedtime-server/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRawRequest() model.StoryRequest {
	return model.StoryRequest{
		Characters:  []string{"Fox", "Owl", "Bear"},
		Setting:     "A misty forest clearing",
		Age:         5,
		StoryLength: model.StoryLength5Min,
	}
}

func TestNormalizeStoryRequest_Valid(t *testing.T) {
	req, err := NormalizeStoryRequest(validRawRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"Fox", "Owl", "Bear"}, req.Characters)
	assert.Equal(t, "A misty forest clearing", req.Setting)
	assert.Equal(t, 5, req.Age)
	assert.Equal(t, model.StoryLength5Min, req.StoryLength)
	assert.Empty(t, req.MoralTheme)
}

func TestNormalizeStoryRequest_TrimsAndFiltersCharacters(t *testing.T) {
	raw := validRawRequest()
	raw.Characters = []string{"  Fox  ", "Owl", "   ", "Bear"}

	req, err := NormalizeStoryRequest(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fox", "Owl", "Bear"}, req.Characters)
}

func TestNormalizeStoryRequest_CharacterBounds(t *testing.T) {
	testCases := []struct {
		name       string
		characters []string
		wantErr    bool
	}{
		{"exactly three passes", []string{"A", "B", "C"}, false},
		{"exactly five passes", []string{"A", "B", "C", "D", "E"}, false},
		{"two fails", []string{"A", "B"}, true},
		{"six fails", []string{"A", "B", "C", "D", "E", "F"}, true},
		{"blanks reduce below minimum", []string{"A", "B", "  "}, true},
		{"six with blanks still fails on upper bound", []string{"A", "B", "C", "", "", ""}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := validRawRequest()
			raw.Characters = tc.characters
			_, err := NormalizeStoryRequest(raw)
			if tc.wantErr {
				var validationErr *model.ValidationError
				require.ErrorAs(t, err, &validationErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNormalizeStoryRequest_SettingLengthBoundary(t *testing.T) {
	raw := validRawRequest()

	// Ровно 10 символов после трима проходит.
	raw.Setting = "  1234567890  "
	_, err := NormalizeStoryRequest(raw)
	require.NoError(t, err)

	// 9 символов — нет.
	raw.Setting = "123456789"
	_, err = NormalizeStoryRequest(raw)
	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestNormalizeStoryRequest_SettingLengthCountsRunesNotBytes(t *testing.T) {
	raw := validRawRequest()

	// 9 символов кириллицы — больше 10 байт, но все еще 9 символов.
	raw.Setting = "Лес ночью"
	_, err := NormalizeStoryRequest(raw)
	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr)

	// Ровно 10 символов проходит независимо от байтовой длины.
	raw.Setting = "Лес ночью!"
	_, err = NormalizeStoryRequest(raw)
	require.NoError(t, err)
}

func TestNormalizeStoryRequest_AgeBounds(t *testing.T) {
	for _, age := range []int{0, 12} {
		raw := validRawRequest()
		raw.Age = age
		_, err := NormalizeStoryRequest(raw)
		assert.NoError(t, err, "age %d", age)
	}

	for _, age := range []int{-1, 13} {
		raw := validRawRequest()
		raw.Age = age
		_, err := NormalizeStoryRequest(raw)
		var validationErr *model.ValidationError
		assert.ErrorAs(t, err, &validationErr, "age %d", age)
	}
}

func TestNormalizeStoryRequest_StoryLengthEnum(t *testing.T) {
	raw := validRawRequest()
	raw.StoryLength = "15min"

	_, err := NormalizeStoryRequest(raw)
	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestNormalizeStoryRequest_MoralThemeSentinel(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"auto", ""},
		{"AUTO", ""},
		{"  Auto  ", ""},
		{"kindness", "kindness"},
		{"  sharing  ", "sharing"},
	}

	for _, tc := range testCases {
		raw := validRawRequest()
		raw.MoralTheme = tc.input
		req, err := NormalizeStoryRequest(raw)
		require.NoError(t, err)
		assert.Equal(t, tc.want, req.MoralTheme, "input %q", tc.input)
	}
}
