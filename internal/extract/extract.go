// Package extract converts uploaded document files (PDF, DOCX, plain text)
// into normalized, bounded UTF-8 text for context assembly.
package extract

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"articlegen/internal/textnorm"
	"articlegen/internal/types"
)

// Supported MIME types
const (
	MimePDF   = "application/pdf"
	MimeDocx  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePlain = "text/plain"
)

// MaxTextLength caps extracted file text, in runes. Longer extractions are
// cut at the cap and TruncationMarker is appended so downstream prompts can
// see the content is incomplete.
const MaxTextLength = 15000

// TruncationMarker is appended to capped file text. It is part of the
// extractor contract, not cosmetic output.
const TruncationMarker = "[File content truncated...]"

// FromBytes extracts normalized text from an uploaded document.
//
// Plain text is accepted by MIME type or by a .txt filename suffix, because
// browser uploads routinely arrive with a missing or wrong Content-Type.
// Any other MIME type returns an UnsupportedFormatError; a file the parser
// cannot read returns a ParseError wrapping the library failure.
func FromBytes(data []byte, mimeType, filename string) (*types.ExtractedText, error) {
	var raw string

	switch {
	case mimeType == MimePDF:
		text, err := pdfText(data)
		if err != nil {
			return nil, &ParseError{Format: "pdf", Message: "unreadable document", Cause: err}
		}
		raw = text
	case mimeType == MimeDocx:
		text, err := docxText(data)
		if err != nil {
			return nil, &ParseError{Format: "docx", Message: "unreadable document", Cause: err}
		}
		raw = text
	case isPlainText(mimeType, filename):
		raw = string(data)
	default:
		return nil, &UnsupportedFormatError{MimeType: mimeType}
	}

	normalized := textnorm.Normalize(raw)
	text, truncated := textnorm.Truncate(normalized, MaxTextLength, TruncationMarker)

	return &types.ExtractedText{
		SourceKind:     types.SourceFile,
		Text:           text,
		OriginalLength: utf8.RuneCountInString(normalized),
		Truncated:      truncated,
	}, nil
}

// FromFile reads a document from disk and extracts it. The file handle is
// held only for the duration of the read, on success and failure alike.
func FromFile(path, mimeType string) (*types.ExtractedText, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Format: "file", Message: "read failed", Cause: err}
	}
	return FromBytes(data, mimeType, filepath.Base(path))
}

func isPlainText(mimeType, filename string) bool {
	if mimeType == MimePlain || strings.HasPrefix(mimeType, MimePlain+";") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(filename), ".txt")
}
