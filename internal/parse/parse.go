// Package parse recovers structured data from model responses that do not
// reliably honor their output-format instructions. Recovery runs in
// decreasing-confidence layers: a fence-stripped direct parse, a greedy
// bracket extraction, then targeted field regexes. The parser salvages what
// the response actually contains; it never fabricates data.
package parse

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"articlegen/internal/types"
)

// Strategy identifies which recovery layer produced a result.
type Strategy int

// Recovery strategies, in the order they are attempted
const (
	StrategyNone Strategy = iota
	StrategyDirect
	StrategyRegexExtract
	StrategyFieldSalvage
)

func (s Strategy) String() string {
	switch s {
	case StrategyDirect:
		return "direct"
	case StrategyRegexExtract:
		return "regex-extract"
	case StrategyFieldSalvage:
		return "field-salvage"
	default:
		return "none"
	}
}

var (
	openFenceRe  = regexp.MustCompile("(?i)^```[a-z]*[ \t]*\r?\n?")
	closeFenceRe = regexp.MustCompile("\n?```[ \t]*$")

	objectSpanRe = regexp.MustCompile(`(?s)\{.*\}`)
	arraySpanRe  = regexp.MustCompile(`(?s)\[.*\]`)

	titleFieldRe   = regexp.MustCompile(`"title"\s*:\s*"([^"]+)"`)
	headingFieldRe = regexp.MustCompile(`"heading"\s*:\s*"([^"]+)"`)
)

// StripFences removes a leading ``` fence (with an optional language tag,
// case-insensitively) and a trailing fence, then trims. Text without fences
// passes through unchanged apart from trimming.
func StripFences(text string) string {
	text = strings.TrimSpace(text)
	text = openFenceRe.ReplaceAllString(text, "")
	text = closeFenceRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// JSON decodes raw model output into v, trying the fence-stripped direct
// parse first and falling back to the greedy bracket extraction. It reports
// which strategy succeeded; callers with a field-salvage layer handle the
// error themselves.
func JSON(raw string, v any) (Strategy, error) {
	clean := StripFences(raw)
	directErr := json.Unmarshal([]byte(clean), v)
	if directErr == nil {
		return StrategyDirect, nil
	}

	if span := bracketSpan(raw); span != "" {
		if err := json.Unmarshal([]byte(span), v); err == nil {
			return StrategyRegexExtract, nil
		}
	}

	return StrategyNone, &Error{
		Message: "response is not decodable JSON",
		Snippet: Snippet(raw),
		Cause:   directErr,
	}
}

// bracketSpan returns the first greedy outermost {...} or [...] span in the
// text, or "" when neither is present.
func bracketSpan(text string) string {
	if span := objectSpanRe.FindString(text); span != "" {
		return span
	}
	return arraySpanRe.FindString(text)
}

// Outline recovers an Outline from raw model output. When both JSON layers
// fail it salvages title and heading fields by regex; sections recovered
// that way carry no bullet points. Sections missing an id are assigned one.
func Outline(raw string) (*types.Outline, Strategy, error) {
	var outline types.Outline
	strategy, err := JSON(raw, &outline)
	if err == nil {
		EnsureSectionIDs(&outline)
		return &outline, strategy, nil
	}

	salvaged := salvageOutline(raw)
	if salvaged == nil {
		return nil, StrategyNone, &Error{
			Message: "no outline recoverable from response",
			Snippet: Snippet(raw),
			Cause:   err,
		}
	}

	EnsureSectionIDs(salvaged)
	return salvaged, StrategyFieldSalvage, nil
}

// salvageOutline pulls recognizable title and heading key phrases out of a
// response that is not valid JSON at all. Returns nil when nothing
// recognizable is present.
func salvageOutline(raw string) *types.Outline {
	outline := &types.Outline{}

	if m := titleFieldRe.FindStringSubmatch(raw); m != nil {
		outline.Title = m[1]
	}
	for _, m := range headingFieldRe.FindAllStringSubmatch(raw, -1) {
		outline.Sections = append(outline.Sections, types.OutlineSection{Heading: m[1]})
	}

	if outline.Title == "" && len(outline.Sections) == 0 {
		return nil
	}
	return outline
}

// EnsureSectionIDs assigns an id to every outline section that lacks one.
func EnsureSectionIDs(outline *types.Outline) {
	for i := range outline.Sections {
		if outline.Sections[i].ID == "" {
			outline.Sections[i].ID = uuid.NewString()
		}
	}
}
