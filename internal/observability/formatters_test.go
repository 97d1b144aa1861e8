package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"articlegen/internal/types"
)

func TestPrintOutline(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	outline := &types.Outline{
		Title: "Understanding Goroutines",
		Sections: []types.OutlineSection{
			{Heading: "Introduction", Points: []string{"what concurrency means", "why Go"}},
			{Heading: "Scheduling"},
			{Heading: "Conclusion"},
		},
	}

	p.PrintOutline(outline)
	output := buf.String()

	assert.Contains(t, output, "ARTICLE OUTLINE")
	assert.Contains(t, output, "Understanding Goroutines")
	assert.Contains(t, output, "Sections: 3")
	assert.Contains(t, output, "1. Introduction")
	assert.Contains(t, output, "what concurrency means")
	assert.Contains(t, output, "3. Conclusion")
}

func TestPrintOutline_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintOutline(nil)
	p.PrintOutline(&types.Outline{Title: "Empty"})

	assert.Empty(t, buf.String())
}

func TestPrintOutline_ElidesLongSectionLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	outline := &types.Outline{Title: "Long One"}
	for i := 0; i < 8; i++ {
		outline.Sections = append(outline.Sections, types.OutlineSection{Heading: "Section"})
	}

	p.PrintOutline(outline)
	assert.Contains(t, buf.String(), "... and 3 more sections")
}

func TestPrintDocumentSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := &types.Document{
		Title: "Understanding Goroutines",
		Sections: []types.GeneratedSection{
			{Heading: "Introduction", Content: "<p>ok</p>"},
			{Heading: "Scheduling", Content: "<h2>Scheduling</h2>", Error: "model overloaded"},
			{Heading: "Conclusion", Content: "<p>ok</p>"},
		},
	}

	p.PrintDocumentSummary(doc)
	output := buf.String()

	assert.Contains(t, output, "GENERATED DOCUMENT")
	assert.Contains(t, output, "FAILED")
	assert.Contains(t, output, "Generated: 2/3 sections")
	assert.Contains(t, output, "1 degraded to error markers")
}

func TestPrintContextSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	assembled := &types.AssembledContext{
		Sections: []types.ContextSection{
			{Label: types.ContextLabelUser, Text: "pasted"},
			{Label: types.ContextLabelURL, Text: "fetched page text"},
		},
	}

	p.PrintContextSummary(assembled)
	output := buf.String()

	assert.Contains(t, output, "ASSEMBLED CONTEXT")
	assert.Contains(t, output, "user")
	assert.Contains(t, output, "url")
	assert.Contains(t, output, "Total assembled context:")
}
