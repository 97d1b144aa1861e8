// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"articlegen/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintOutline outputs a human-readable summary of the parsed article outline.
func (p *Printer) PrintOutline(outline *types.Outline) {
	if outline == nil || len(outline.Sections) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", outline.Title))
	sb.WriteString(fmt.Sprintf("Sections: %d\n\n", len(outline.Sections)))

	count := min(len(outline.Sections), maxItemsToShow)
	for i := 0; i < count; i++ {
		section := outline.Sections[i]
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, section.Heading))
		if len(section.Points) > 0 {
			points := strings.Join(section.Points, ", ")
			if len(points) > 44 {
				points = points[:41] + "..."
			}
			sb.WriteString(fmt.Sprintf("   [%s]\n", points))
		}
	}
	if len(outline.Sections) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more sections\n", len(outline.Sections)-maxItemsToShow))
	}

	p.printBox("ARTICLE OUTLINE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDocumentSummary outputs per-section results for an assembled document,
// flagging sections that degraded to an error marker.
func (p *Printer) PrintDocumentSummary(doc *types.Document) {
	if doc == nil || len(doc.Sections) == 0 {
		return
	}

	failed := 0
	var sb strings.Builder
	for i, section := range doc.Sections {
		status := "ok"
		if section.Error != "" {
			status = "FAILED"
			failed++
		}
		heading := section.Heading
		if len(heading) > 36 {
			heading = heading[:33] + "..."
		}
		sb.WriteString(fmt.Sprintf("%d. %-38s %s\n", i+1, heading, status))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Generated: %d/%d sections", len(doc.Sections)-failed, len(doc.Sections)))
	if failed > 0 {
		sb.WriteString(fmt.Sprintf(" (%d degraded to error markers)", failed))
	}

	p.printBox("GENERATED DOCUMENT", sb.String())
}

// PrintContextSummary outputs how much material each source contributed.
func (p *Printer) PrintContextSummary(assembled *types.AssembledContext) {
	if assembled == nil || len(assembled.Sections) == 0 {
		return
	}

	var sb strings.Builder
	for _, section := range assembled.Sections {
		sb.WriteString(fmt.Sprintf("%-6s %d chars\n", section.Label, len(section.Text)))
	}
	sb.WriteString(fmt.Sprintf("\nTotal assembled context: %d chars", len(assembled.Flatten())))

	p.printBox("ASSEMBLED CONTEXT", sb.String())
}
