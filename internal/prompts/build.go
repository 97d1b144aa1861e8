package prompts

import (
	"strconv"
	"strings"

	"articlegen/internal/style"
	"articlegen/internal/types"
)

const generationFile = "generation.json"

// Outline builds the first-stage prompt: plan an article outline from the
// assembled source context.
func Outline(contextText string, ins style.Instructions, sectionCount int) string {
	return Format(MustGet(generationFile, "outline"), map[string]string{
		"Context":             contextText,
		"ToneInstruction":     ins.Tone,
		"AudienceInstruction": ins.Audience,
		"SectionCount":        strconv.Itoa(sectionCount),
	})
}

// OutlineFromTopic builds the lighter single-shot outline prompt used when
// the caller supplies only a topic and no source material.
func OutlineFromTopic(topic string, ins style.Instructions, sectionCount int) string {
	return Format(MustGet(generationFile, "outline-from-topic"), map[string]string{
		"Topic":               topic,
		"ToneInstruction":     ins.Tone,
		"AudienceInstruction": ins.Audience,
		"SectionCount":        strconv.Itoa(sectionCount),
	})
}

// SectionIntroduction builds the hook-first prompt for the first outline
// section.
func SectionIntroduction(outline types.Outline, section types.OutlineSection, ins style.Instructions) string {
	return Format(MustGet(generationFile, "section-introduction"), map[string]string{
		"Title":               outline.Title,
		"ToneInstruction":     ins.Tone,
		"AudienceInstruction": ins.Audience,
		"LengthInstruction":   ins.Length,
		"RemainingHeadings":   headingList(outline, section),
		"Points":              pointList(section.Points),
	})
}

// SectionBody builds the prompt for an interior outline section. Keywords,
// when present, are asked to be woven into the prose.
func SectionBody(outline types.Outline, section types.OutlineSection, ins style.Instructions, keywords []string) string {
	keywordIns := "\n"
	if len(keywords) > 0 {
		keywordIns = "\nNaturally weave in these keywords where they fit: " + strings.Join(keywords, ", ") + ".\n"
	}
	return Format(MustGet(generationFile, "section-body"), map[string]string{
		"Title":               outline.Title,
		"Heading":             section.Heading,
		"ToneInstruction":     ins.Tone,
		"AudienceInstruction": ins.Audience,
		"LengthInstruction":   ins.Length,
		"Points":              pointList(section.Points),
		"KeywordsInstruction": keywordIns,
	})
}

// SectionConclusion builds the summary-plus-call-to-action prompt for the
// last outline section.
func SectionConclusion(outline types.Outline, section types.OutlineSection, ins style.Instructions) string {
	return Format(MustGet(generationFile, "section-conclusion"), map[string]string{
		"Title":               outline.Title,
		"Heading":             section.Heading,
		"ToneInstruction":     ins.Tone,
		"AudienceInstruction": ins.Audience,
		"LengthInstruction":   ins.Length,
		"RemainingHeadings":   headingList(outline, section),
		"Points":              pointList(section.Points),
	})
}

// headingList renders the outline's headings as a bullet list, skipping the
// section currently being written.
func headingList(outline types.Outline, current types.OutlineSection) string {
	var sb strings.Builder
	for _, s := range outline.Sections {
		if s.ID == current.ID && s.Heading == current.Heading {
			continue
		}
		sb.WriteString("- ")
		sb.WriteString(s.Heading)
		sb.WriteString("\n")
	}
	if sb.Len() == 0 {
		return "- (none)\n"
	}
	return sb.String()
}

func pointList(points []string) string {
	if len(points) == 0 {
		return "- (no outline points supplied; develop the heading on its own)\n"
	}
	var sb strings.Builder
	for _, p := range points {
		sb.WriteString("- ")
		sb.WriteString(p)
		sb.WriteString("\n")
	}
	return sb.String()
}
