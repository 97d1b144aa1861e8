package types

import "strings"

// Context section labels
const (
	ContextLabelUser = "user"
	ContextLabelFile = "file"
	ContextLabelURL  = "url"
)

// sectionHeadings maps a context label to the fixed human-readable heading
// used when flattening the context into a prompt.
var sectionHeadings = map[string]string{
	ContextLabelUser: "User Provided Context:",
	ContextLabelFile: "Uploaded File Content:",
	ContextLabelURL:  "Reference Content from URL:",
}

// ContextSection is one labeled block of assembled prompt context.
type ContextSection struct {
	Label string
	Text  string
}

// AssembledContext is the merged, bounded prompt context built from the
// independently extracted input sources, in a fixed order.
type AssembledContext struct {
	Sections []ContextSection
}

// Flatten renders the context as a single string for prompting. Each section
// is prefixed with its human-readable heading and separated by a blank line.
func (c *AssembledContext) Flatten() string {
	parts := make([]string, 0, len(c.Sections))
	for _, s := range c.Sections {
		heading, ok := sectionHeadings[s.Label]
		if !ok {
			heading = s.Label + ":"
		}
		parts = append(parts, heading+"\n"+s.Text)
	}
	return strings.Join(parts, "\n\n")
}
