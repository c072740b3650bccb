package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare JSON untouched",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "json fence stripped",
			input: "```json\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "plain fence stripped",
			input: "```\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "fence with language identifier",
			input: "```javascript\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  \n{\"a\": 1}\n  ",
			want:  `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestParseResponse_BareObject(t *testing.T) {
	raw := `{"work_experience": [{"company": "Acme", "role": "Engineer"}]}`

	extraction, err := ParseResponse(raw)

	require.NoError(t, err)
	require.Len(t, extraction.WorkExperience, 1)
	assert.Equal(t, "Acme", extraction.WorkExperience[0].Company)
	assert.Equal(t, "Engineer", extraction.WorkExperience[0].Role)
}

func TestParseResponse_FencedObject(t *testing.T) {
	raw := "```json\n{\"personal_info\": {\"email\": \"ada@example.com\"}}\n```"

	extraction, err := ParseResponse(raw)

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", extraction.PersonalInfo["email"])
}

func TestParseResponse_ObjectWrappedInProse(t *testing.T) {
	raw := "Here is the extracted data:\n{\"projects\": [{\"name\": \"CLI tool\"}]}\nLet me know if you need more."

	extraction, err := ParseResponse(raw)

	require.NoError(t, err)
	require.Len(t, extraction.Projects, 1)
	assert.Equal(t, "CLI tool", extraction.Projects[0].Name)
}

func TestParseResponse_MissingCategoriesTolerated(t *testing.T) {
	extraction, err := ParseResponse(`{}`)

	require.NoError(t, err)
	assert.Empty(t, extraction.WorkExperience)
	assert.Empty(t, extraction.Education)
	assert.Nil(t, extraction.Skills)
}

func TestParseResponse_BareListIsParseError(t *testing.T) {
	_, err := ParseResponse(`[{"company": "Acme"}]`)

	require.Error(t, err)
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestParseResponse_ListWrappedInProseIsParseError(t *testing.T) {
	raw := "Here is what I found:\n[{\"company\": \"Acme\"}]\nHope that helps."

	_, err := ParseResponse(raw)

	require.Error(t, err)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Contains(t, parseErr.Error(), "array")
}

func TestParseResponse_ProseOnlyIsParseError(t *testing.T) {
	_, err := ParseResponse("I could not find any career information in this document.")

	require.Error(t, err)
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestParseResponse_MalformedJSONIsParseError(t *testing.T) {
	_, err := ParseResponse(`{"work_experience": [}`)

	require.Error(t, err)
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestParseResponse_WrongCategoryShapeIsParseError(t *testing.T) {
	_, err := ParseResponse(`{"work_experience": "lots of it"}`)

	require.Error(t, err)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Contains(t, parseErr.Error(), "schema")
}
