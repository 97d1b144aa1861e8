package types

// OutlineSection is one heading-plus-bullet-points unit of an outline.
type OutlineSection struct {
	ID      string   `json:"id,omitempty"`
	Heading string   `json:"heading"`
	Points  []string `json:"points,omitempty"`
}

// Outline is the title and ordered section structure produced by the first
// generation stage. The first and last sections are treated as introduction
// and conclusion by position; there is no tagged role field.
type Outline struct {
	Title    string           `json:"title"`
	Sections []OutlineSection `json:"sections"`
}
