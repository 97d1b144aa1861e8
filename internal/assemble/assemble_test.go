package assemble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_AllSourcesEmpty(t *testing.T) {
	tests := []struct {
		name                         string
		userText, fileText, urlText  string
	}{
		{"all empty strings", "", "", ""},
		{"whitespace only", "   ", "\n\n", "\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.userText, tt.fileText, tt.urlText)
			require.Error(t, err)

			var empty *EmptyContextError
			assert.ErrorAs(t, err, &empty)
		})
	}
}

func TestBuild_SingleSource(t *testing.T) {
	tests := []struct {
		name                        string
		userText, fileText, urlText string
		wantLabel                   string
	}{
		{"user text only", "topic notes", "", "", "user"},
		{"file text only", "", "document body", "", "file"},
		{"url text only", "", "", "page content", "url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := Build(tt.userText, tt.fileText, tt.urlText)
			require.NoError(t, err)
			require.Len(t, ctx.Sections, 1)
			assert.Equal(t, tt.wantLabel, ctx.Sections[0].Label)
		})
	}
}

func TestBuild_AllSources(t *testing.T) {
	ctx, err := Build("user notes", "file body", "url body")
	require.NoError(t, err)
	require.Len(t, ctx.Sections, 3)

	flat := ctx.Flatten()
	assert.Contains(t, flat, "User Provided Context:\nuser notes")
	assert.Contains(t, flat, "Uploaded File Content:\nfile body")
	assert.Contains(t, flat, "Reference Content from URL:\nurl body")

	// Fixed ordering: user, then file, then url, blank-line separated.
	userIdx := strings.Index(flat, "user notes")
	fileIdx := strings.Index(flat, "file body")
	urlIdx := strings.Index(flat, "url body")
	assert.Less(t, userIdx, fileIdx)
	assert.Less(t, fileIdx, urlIdx)
	assert.Contains(t, flat, "\n\n")
}
