package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"articlegen/internal/style"
	"articlegen/internal/types"
)

var testOutline = types.Outline{
	Title: "Shipping Faster with Pipelines",
	Sections: []types.OutlineSection{
		{ID: "s1", Heading: "Why speed matters", Points: []string{"cycle time", "feedback loops"}},
		{ID: "s2", Heading: "Building the pipeline", Points: []string{"stages"}},
		{ID: "s3", Heading: "Where to go next"},
	},
}

func TestOutlinePrompt(t *testing.T) {
	ins := style.Resolve(style.DefaultConfig())
	prompt := Outline("SOURCE MATERIAL HERE", ins, 6)

	assert.Contains(t, prompt, "SOURCE MATERIAL HERE")
	assert.Contains(t, prompt, "about 6 sections")
	assert.Contains(t, prompt, ins.Tone)
	assert.Contains(t, prompt, ins.Audience)
	assert.NotContains(t, prompt, "{{.")
}

func TestOutlineFromTopicPrompt(t *testing.T) {
	prompt := OutlineFromTopic("code review habits", style.Resolve(style.DefaultConfig()), 4)

	assert.Contains(t, prompt, "code review habits")
	assert.NotContains(t, prompt, "{{.")
}

func TestSectionIntroductionPrompt(t *testing.T) {
	prompt := SectionIntroduction(testOutline, testOutline.Sections[0], style.Resolve(style.DefaultConfig()))

	assert.Contains(t, prompt, testOutline.Title)
	assert.Contains(t, prompt, "- cycle time")
	// The introduction previews the other sections, not itself.
	assert.Contains(t, prompt, "- Building the pipeline")
	assert.NotContains(t, prompt, "- Why speed matters")
	assert.NotContains(t, prompt, "{{.")
}

func TestSectionBodyPrompt(t *testing.T) {
	t.Run("with keywords", func(t *testing.T) {
		prompt := SectionBody(testOutline, testOutline.Sections[1], style.Resolve(style.DefaultConfig()), []string{"ci", "automation"})

		assert.Contains(t, prompt, "<h2>Building the pipeline</h2>")
		assert.Contains(t, prompt, "ci, automation")
		assert.NotContains(t, prompt, "{{.")
	})

	t.Run("without keywords", func(t *testing.T) {
		prompt := SectionBody(testOutline, testOutline.Sections[1], style.Resolve(style.DefaultConfig()), nil)

		assert.NotContains(t, prompt, "keywords")
		assert.NotContains(t, prompt, "{{.")
	})
}

func TestSectionConclusionPrompt(t *testing.T) {
	prompt := SectionConclusion(testOutline, testOutline.Sections[2], style.Resolve(style.DefaultConfig()))

	assert.Contains(t, prompt, "call to action")
	assert.Contains(t, prompt, "<h2>Where to go next</h2>")
	assert.NotContains(t, prompt, "{{.")
}

func TestPointList_Empty(t *testing.T) {
	prompt := SectionBody(testOutline, testOutline.Sections[2], style.Resolve(style.DefaultConfig()), nil)

	assert.True(t, strings.Contains(prompt, "develop the heading on its own"))
}
