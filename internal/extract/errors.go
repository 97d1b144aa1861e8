package extract

import "fmt"

// UnsupportedFormatError is returned when a file's MIME type is not one of
// the supported document formats. This is a caller error; nothing was parsed.
type UnsupportedFormatError struct {
	MimeType string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %q", e.MimeType)
}

// ParseError wraps a failure from an extraction library (corrupt or
// unreadable file). The underlying message is preserved for diagnostics.
type ParseError struct {
	Format  string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s extraction failed: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s extraction failed: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
