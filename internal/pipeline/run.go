package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"articlegen/internal/assemble"
	"articlegen/internal/extract"
	"articlegen/internal/llm"
	"articlegen/internal/parse"
	"articlegen/internal/prompts"
	"articlegen/internal/schemas"
	"articlegen/internal/style"
	"articlegen/internal/types"
	"articlegen/internal/webfetch"
)

// Run executes the full pipeline: extract the inputs, assemble the context,
// generate an outline, generate every section, and assemble the document.
//
// A URL fetch failure degrades to "no URL content" and the run continues on
// the remaining sources; invalid URLs, unsupported file formats, and an
// empty assembled context fail fast.
func (p *Pipeline) Run(ctx context.Context, inputs []types.SourceInput, cfg style.Config) (*types.Document, error) {
	p.emit(StageIdle, "ingesting source material")

	userText, fileText, urlText, err := p.ingest(ctx, inputs)
	if err != nil {
		p.fail(err)
		return nil, err
	}

	assembled, err := assemble.Build(userText, fileText, urlText)
	if err != nil {
		p.fail(err)
		return nil, err
	}

	instructions := style.Resolve(cfg)
	prompt := prompts.Outline(assembled.Flatten(), instructions, style.SectionTarget(cfg.Length))
	outline, err := p.generateOutline(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return p.generateDocument(ctx, outline, cfg), nil
}

// GenerateFromTopic is the alternate entry for callers with only a topic and
// no source material: a lighter single-shot outline prompt, then the same
// section loop.
func (p *Pipeline) GenerateFromTopic(ctx context.Context, topic string, cfg style.Config) (*types.Document, error) {
	if strings.TrimSpace(topic) == "" {
		err := &assemble.EmptyContextError{}
		p.fail(err)
		return nil, err
	}

	prompt := prompts.OutlineFromTopic(topic, style.Resolve(cfg), style.SectionTarget(cfg.Length))
	outline, err := p.generateOutline(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return p.generateDocument(ctx, outline, cfg), nil
}

// GenerateFromOutline is the alternate entry for callers that already hold
// an outline; it enters the section loop directly.
func (p *Pipeline) GenerateFromOutline(ctx context.Context, outline *types.Outline, cfg style.Config) (*types.Document, error) {
	if err := schemas.ValidateOutline(outline); err != nil {
		err = fmt.Errorf("invalid outline: %w", err)
		p.fail(err)
		return nil, err
	}
	parse.EnsureSectionIDs(outline)

	p.emit(StageOutlineParsed, "using caller-provided outline: "+outline.Title)
	return p.generateDocument(ctx, outline, cfg), nil
}

// ingest extracts every input source. File and URL extraction run
// concurrently; each writes into its own slot, so no coordination is needed
// beyond the group wait.
func (p *Pipeline) ingest(ctx context.Context, inputs []types.SourceInput) (userText, fileText, urlText string, err error) {
	var userParts []string
	fileSlots := make([]string, len(inputs))
	urlSlots := make([]string, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	for i, input := range inputs {
		i, input := i, input
		switch input.Kind {
		case types.SourceText:
			userParts = append(userParts, input.Content)
		case types.SourceFile:
			g.Go(func() error {
				result, err := extract.FromBytes(input.Bytes, input.MimeType, input.Filename)
				if err != nil {
					return err
				}
				fileSlots[i] = result.Text
				return nil
			})
		case types.SourceURL:
			g.Go(func() error {
				result, err := p.fetcher.Fetch(gctx, input.URL)
				if err != nil {
					var invalid *webfetch.InvalidURLError
					if errors.As(err, &invalid) {
						return err
					}
					// Fetch failures are non-fatal: proceed on the
					// remaining context sources.
					p.log.Warn().Err(err).Str("url", input.URL).
						Msg("URL fetch failed, continuing without URL content")
					return nil
				}
				urlSlots[i] = result.Text
				return nil
			})
		default:
			return "", "", "", fmt.Errorf("unknown source kind: %q", input.Kind)
		}
	}
	if err := g.Wait(); err != nil {
		return "", "", "", err
	}

	return strings.Join(userParts, "\n\n"), joinNonEmpty(fileSlots), joinNonEmpty(urlSlots), nil
}

// generateOutline runs the outline stage: one low-temperature model call,
// resilient parsing, and a structural check of whatever was recovered.
func (p *Pipeline) generateOutline(ctx context.Context, prompt string) (*types.Outline, error) {
	p.emit(StageOutlineRequested, "requesting article outline")

	raw, err := p.client.Generate(ctx, prompt, llm.GenerationConfig{
		Temperature:     outlineTemperature,
		MaxOutputTokens: outlineMaxTokens,
	})
	if err != nil {
		p.fail(err)
		return nil, err
	}

	outline, strategy, err := parse.Outline(raw)
	if err != nil {
		parseErr := &OutlineParseError{Snippet: parse.Snippet(raw), Cause: err}
		p.fail(parseErr)
		return nil, parseErr
	}
	if err := schemas.ValidateOutline(outline); err != nil {
		parseErr := &OutlineParseError{Snippet: parse.Snippet(raw), Cause: err}
		p.fail(parseErr)
		return nil, parseErr
	}

	if strategy != parse.StrategyDirect {
		p.log.Warn().Stringer("strategy", strategy).Msg("outline recovered by fallback parsing")
	}
	p.emit(StageOutlineParsed, "outline parsed: "+outline.Title)

	return outline, nil
}

// generateDocument runs the section stage and assembles the terminal
// document. Per-section failures are already isolated by then, so this
// stage cannot fail.
func (p *Pipeline) generateDocument(ctx context.Context, outline *types.Outline, cfg style.Config) *types.Document {
	p.emit(StageSectionsInFlight, fmt.Sprintf("generating %d sections", len(outline.Sections)))

	sections := p.generateSections(ctx, outline, cfg)

	contents := make([]string, len(sections))
	for i, section := range sections {
		contents[i] = section.Content
	}

	doc := &types.Document{
		Title:       outline.Title,
		Outline:     *outline,
		Sections:    sections,
		FullContent: strings.Join(contents, "\n"),
	}
	p.emit(StageAssembled, "document assembled: "+doc.Title)

	return doc
}

func joinNonEmpty(parts []string) string {
	kept := parts[:0:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, "\n\n")
}
