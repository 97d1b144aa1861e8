// Package assemble merges independently extracted text sources into one
// bounded prompt context.
package assemble

import (
	"strings"

	"articlegen/internal/types"
)

// EmptyContextError is returned when no input source produced usable text.
// It is the single hard precondition for entering generation.
type EmptyContextError struct{}

func (e *EmptyContextError) Error() string {
	return "no usable content in any input source"
}

// Build concatenates whichever sources are non-empty, in a fixed order, each
// as a labeled context section. Unavailable sources are simply skipped; if
// nothing remains, Build fails with EmptyContextError.
func Build(userText, fileText, urlText string) (*types.AssembledContext, error) {
	ctx := &types.AssembledContext{}

	add := func(label, text string) {
		if strings.TrimSpace(text) == "" {
			return
		}
		ctx.Sections = append(ctx.Sections, types.ContextSection{Label: label, Text: text})
	}
	add(types.ContextLabelUser, userText)
	add(types.ContextLabelFile, fileText)
	add(types.ContextLabelURL, urlText)

	if strings.TrimSpace(ctx.Flatten()) == "" {
		return nil, &EmptyContextError{}
	}

	return ctx, nil
}
