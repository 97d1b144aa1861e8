package types

// GeneratedSection holds the prose generated for one outline section.
// Content is an HTML fragment. A section that failed to generate still
// produces an entry: Content carries an inline error marker and Error
// records what went wrong, so one bad section never loses the others.
type GeneratedSection struct {
	SectionID string `json:"section_id"`
	Heading   string `json:"heading"`
	Content   string `json:"content"`
	Error     string `json:"error,omitempty"`
}

// Document is the terminal artifact of a pipeline run: the outline it was
// generated from plus the per-section prose, concatenated in outline order.
type Document struct {
	Title       string             `json:"title"`
	Outline     Outline            `json:"outline"`
	Sections    []GeneratedSection `json:"sections"`
	FullContent string             `json:"full_content"`
}
