// Package types defines the shared data model for the article generation pipeline.
package types

// SourceKind identifies where a piece of input material came from.
type SourceKind string

// Source kind constants for pipeline inputs
const (
	// SourceText is free text pasted by the caller
	SourceText SourceKind = "text"
	// SourceFile is an uploaded document (PDF, DOCX, or plain text)
	SourceFile SourceKind = "file"
	// SourceURL is a web page to fetch and reduce to text
	SourceURL SourceKind = "url"
)

// SourceInput is one piece of raw input material for a pipeline run.
// Exactly the fields for its Kind are populated; the rest are zero.
type SourceInput struct {
	Kind SourceKind

	// Kind == SourceText
	Content string

	// Kind == SourceFile
	Bytes    []byte
	MimeType string
	Filename string

	// Kind == SourceURL
	URL string
}

// TextInput builds a free-text source input.
func TextInput(content string) SourceInput {
	return SourceInput{Kind: SourceText, Content: content}
}

// FileInput builds an uploaded-file source input.
func FileInput(data []byte, mimeType, filename string) SourceInput {
	return SourceInput{Kind: SourceFile, Bytes: data, MimeType: mimeType, Filename: filename}
}

// URLInput builds a web-page source input.
func URLInput(url string) SourceInput {
	return SourceInput{Kind: SourceURL, URL: url}
}

// ExtractedText is the normalized output of a format or web extraction.
// Text is already whitespace-normalized and capped at the source-specific
// maximum; when the raw extraction exceeded the cap, Truncated is true and
// a truncation marker has been appended to Text.
type ExtractedText struct {
	SourceKind     SourceKind
	Text           string
	OriginalLength int
	Truncated      bool
}
