package pipeline

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"articlegen/internal/llm"
	"articlegen/internal/parse"
	"articlegen/internal/prompts"
	"articlegen/internal/style"
	"articlegen/internal/types"
)

// generateSections produces one GeneratedSection per outline section, in
// outline order. Calls run under the configured concurrency bound and each
// writes into its own index slot, so completion order never affects output
// order. A failed section degrades to an inline error marker; it never
// aborts the others.
func (p *Pipeline) generateSections(ctx context.Context, outline *types.Outline, cfg style.Config) []types.GeneratedSection {
	results := make([]types.GeneratedSection, len(outline.Sections))
	instructions := style.Resolve(cfg)

	g := new(errgroup.Group)
	g.SetLimit(p.opts.SectionConcurrency)

	for i, section := range outline.Sections {
		i, section := i, section
		if i > 0 && p.opts.SectionConcurrency == 1 && p.opts.SectionDelay > 0 {
			sleep(ctx, p.opts.SectionDelay)
		}
		g.Go(func() error {
			content, err := p.generateSection(ctx, outline, section, i, instructions, cfg)
			if err != nil {
				p.log.Error().Err(err).Str("heading", section.Heading).Int("index", i).
					Msg("section generation failed")
				results[i] = types.GeneratedSection{
					SectionID: section.ID,
					Heading:   section.Heading,
					Content:   errorFragment(section.Heading),
					Error:     err.Error(),
				}
				return nil
			}
			results[i] = types.GeneratedSection{
				SectionID: section.ID,
				Heading:   section.Heading,
				Content:   content,
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// generateSection picks the prompt variant by position: the first section is
// the introduction, the last the conclusion, everything between a body
// section. A single-section outline is written as an introduction (the
// first-position rule wins over the last).
func (p *Pipeline) generateSection(ctx context.Context, outline *types.Outline, section types.OutlineSection, index int, instructions style.Instructions, cfg style.Config) (string, error) {
	var prompt string
	switch {
	case index == 0:
		prompt = prompts.SectionIntroduction(*outline, section, instructions)
	case index == len(outline.Sections)-1:
		prompt = prompts.SectionConclusion(*outline, section, instructions)
	default:
		prompt = prompts.SectionBody(*outline, section, instructions, p.opts.Keywords)
	}

	raw, err := p.client.Generate(ctx, prompt, llm.GenerationConfig{
		Temperature:     sectionTemperature,
		MaxOutputTokens: style.MaxOutputTokens(cfg.Length),
	})
	if err != nil {
		return "", err
	}

	// Section responses are used as HTML fragments directly; only stray
	// code fences are cleaned off.
	content := parse.StripFences(raw)
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("model returned an empty section")
	}

	return content, nil
}

func errorFragment(heading string) string {
	return fmt.Sprintf(`<h2>%s</h2><p class="generation-error">[This section could not be generated.]</p>`,
		html.EscapeString(heading))
}

func sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
