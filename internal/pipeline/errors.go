package pipeline

import "fmt"

// OutlineParseError is pipeline-fatal: the outline stage produced a response
// no recovery layer could turn into a usable outline. Snippet is a bounded
// prefix of the raw response for diagnostics.
type OutlineParseError struct {
	Snippet string
	Cause   error
}

func (e *OutlineParseError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("outline stage failed: %v (response begins: %q)", e.Cause, e.Snippet)
	}
	return fmt.Sprintf("outline stage failed: %v", e.Cause)
}

func (e *OutlineParseError) Unwrap() error {
	return e.Cause
}
