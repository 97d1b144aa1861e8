package parse

import "fmt"

// maxSnippetLen bounds how much of a raw response an error may carry.
const maxSnippetLen = 240

// Error reports that every recovery layer failed. Snippet is a bounded
// prefix of the raw response, never the whole thing.
type Error struct {
	Message string
	Snippet string
	Cause   error
}

func (e *Error) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("parse error: %s (response begins: %q)", e.Message, e.Snippet)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Snippet returns a diagnostics-safe prefix of a raw response.
func Snippet(raw string) string {
	runes := []rune(raw)
	if len(runes) <= maxSnippetLen {
		return raw
	}
	return string(runes[:maxSnippetLen]) + "..."
}
