package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatten(t *testing.T) {
	ctx := &AssembledContext{
		Sections: []ContextSection{
			{Label: ContextLabelUser, Text: "pasted notes"},
			{Label: ContextLabelFile, Text: "document body"},
			{Label: ContextLabelURL, Text: "page text"},
		},
	}

	want := "User Provided Context:\npasted notes\n\n" +
		"Uploaded File Content:\ndocument body\n\n" +
		"Reference Content from URL:\npage text"
	assert.Equal(t, want, ctx.Flatten())
}

func TestFlatten_Empty(t *testing.T) {
	assert.Empty(t, (&AssembledContext{}).Flatten())
}

func TestFlatten_UnknownLabel(t *testing.T) {
	ctx := &AssembledContext{
		Sections: []ContextSection{{Label: "transcript", Text: "spoken words"}},
	}
	assert.Equal(t, "transcript:\nspoken words", ctx.Flatten())
}
