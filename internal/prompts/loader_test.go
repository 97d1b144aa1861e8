package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	prompt, err := Get("generation.json", "outline")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Context}}")
	assert.Contains(t, prompt, `"sections"`)
}

func TestGet_InvalidFile(t *testing.T) {
	_, err := Get("nonexistent.json", "some-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	_, err := Get("generation.json", "nonexistent-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestFormat(t *testing.T) {
	template := "Write about {{.Topic}} in {{.SectionCount}} sections."
	data := map[string]string{
		"Topic":        "code review",
		"SectionCount": "4",
	}

	assert.Equal(t, "Write about code review in 4 sections.", Format(template, data))
}

func TestFormat_UnmatchedPlaceholderSurvives(t *testing.T) {
	template := "Hello {{.Name}}"

	assert.Equal(t, template, Format(template, map[string]string{}))
}

func TestStageTemplatesPresent(t *testing.T) {
	keys := []string{
		"outline",
		"outline-from-topic",
		"section-introduction",
		"section-body",
		"section-conclusion",
	}
	for _, key := range keys {
		assert.NotPanics(t, func() { MustGet(generationFile, key) }, key)
	}
}
