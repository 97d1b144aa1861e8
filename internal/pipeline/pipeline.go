// Package pipeline orchestrates the two-stage article generation protocol:
// ingest and assemble source material, request an outline, generate each
// section, and assemble the final document.
package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"articlegen/internal/llm"
	"articlegen/internal/webfetch"
)

// Stage names the orchestrator's state machine states. A run moves
// Idle -> OutlineRequested -> OutlineParsed -> SectionsInFlight -> Assembled;
// Failed is terminal and only reachable before sections are in flight.
type Stage string

// Orchestrator stages
const (
	StageIdle             Stage = "idle"
	StageOutlineRequested Stage = "outline_requested"
	StageOutlineParsed    Stage = "outline_parsed"
	StageSectionsInFlight Stage = "sections_in_flight"
	StageAssembled        Stage = "assembled"
	StageFailed           Stage = "failed"
)

// StageEvent is a progress notification for one stage transition.
type StageEvent struct {
	Stage   Stage
	Message string
}

// Default tuning values
const (
	DefaultSectionConcurrency = 2
	// DefaultSectionDelay spaces out sequential section calls to stay
	// polite toward model-API rate limits.
	DefaultSectionDelay = 500 * time.Millisecond

	outlineTemperature = 0.65
	sectionTemperature = 0.75
	outlineMaxTokens   = 2048
)

// Options tunes a Pipeline. Zero values fall back to defaults.
type Options struct {
	// SectionConcurrency bounds how many section calls run at once.
	SectionConcurrency int `validate:"omitempty,min=1,max=16"`
	// SectionDelay spaces section calls when SectionConcurrency is 1.
	SectionDelay time.Duration `validate:"omitempty,min=0"`
	// Keywords are woven into body-section prompts when present.
	Keywords []string
	// OnProgress, when set, receives every stage transition.
	OnProgress func(StageEvent)
}

// Pipeline runs the content ingestion and generation flow. A Pipeline holds
// only dependencies, no per-run state, so one instance may serve concurrent
// runs.
type Pipeline struct {
	client  llm.Client
	fetcher *webfetch.Fetcher
	opts    Options
	log     zerolog.Logger
}

// New creates a Pipeline. The model client is required; a nil fetcher gets
// a default one.
func New(client llm.Client, fetcher *webfetch.Fetcher, logger zerolog.Logger, opts Options) (*Pipeline, error) {
	if client == nil {
		return nil, errors.New("llm client is required")
	}
	if opts.SectionConcurrency == 0 {
		opts.SectionConcurrency = DefaultSectionConcurrency
	}
	if err := validator.New().Struct(&opts); err != nil {
		return nil, fmt.Errorf("invalid pipeline options: %w", err)
	}
	if fetcher == nil {
		fetcher = webfetch.New(logger, nil)
	}

	return &Pipeline{
		client:  client,
		fetcher: fetcher,
		opts:    opts,
		log:     logger,
	}, nil
}

// emit logs a stage transition and forwards it to the progress callback.
func (p *Pipeline) emit(stage Stage, message string) {
	p.log.Info().Str("stage", string(stage)).Msg(message)
	if p.opts.OnProgress != nil {
		p.opts.OnProgress(StageEvent{Stage: stage, Message: message})
	}
}

func (p *Pipeline) fail(err error) {
	p.emit(StageFailed, err.Error())
}
