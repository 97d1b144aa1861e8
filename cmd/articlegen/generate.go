package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"articlegen/internal/config"
	"articlegen/internal/extract"
	"articlegen/internal/llm"
	"articlegen/internal/observability"
	"articlegen/internal/pipeline"
	"articlegen/internal/style"
	"articlegen/internal/types"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate an article from text, files, URLs, or a bare topic",
	Long: `Runs the full generation pipeline: ingest the given sources, assemble a
context, request an outline from the model, generate every section, and write
the assembled HTML article.

At least one of --text, --file, --url, or --topic must be provided. --topic is
used on its own when no other source is given.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runGenerateCmd,
}

var (
	genConfigPath  string
	genText        string
	genFiles       []string
	genURLs        []string
	genTopic       string
	genTone        string
	genAudience    string
	genLength      string
	genKeywords    []string
	genConcurrency int
	genDelay       time.Duration
	genModel       string
	genAPIKey      string
	genOut         string
	genVerbose     bool
)

func init() {
	// Config file flag (processed first)
	generateCommand.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	generateCommand.Flags().StringVarP(&genText, "text", "x", "", "Free text to use as source material")
	generateCommand.Flags().StringSliceVarP(&genFiles, "file", "f", nil, "Path to a source document (PDF, DOCX, or plain text); repeatable")
	generateCommand.Flags().StringSliceVarP(&genURLs, "url", "u", nil, "Web page to fetch as source material; repeatable")
	generateCommand.Flags().StringVarP(&genTopic, "topic", "t", "", "Topic to write about when no source material is given")

	generateCommand.Flags().StringVar(&genTone, "tone", "", "Article tone: professional, casual, academic, or persuasive")
	generateCommand.Flags().StringVar(&genAudience, "audience", "", "Target audience: general, developers, executives, or beginners")
	generateCommand.Flags().StringVar(&genLength, "length", "", "Article length: short, medium, or long")
	generateCommand.Flags().StringSliceVar(&genKeywords, "keyword", nil, "Keyword to weave into body sections; repeatable")

	generateCommand.Flags().IntVar(&genConcurrency, "concurrency", 0, "Maximum concurrent section generation calls")
	generateCommand.Flags().DurationVar(&genDelay, "delay", 0, "Delay between section calls when concurrency is 1")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	generateCommand.Flags().StringVar(&genModel, "model", "", "Gemini model name (defaults to "+llm.DefaultModel+")")
	generateCommand.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")

	generateCommand.Flags().StringVarP(&genOut, "out", "o", "", "Output file for the HTML article (defaults to stdout)")
	generateCommand.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(generateCommand)
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := mergeConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Verbose)

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return errors.New("a Gemini API key is required: pass --api-key or set GEMINI_API_KEY")
	}

	inputs, err := collectInputs(cfg)
	if err != nil {
		return err
	}
	if len(inputs) == 0 && strings.TrimSpace(cfg.Topic) == "" {
		return errors.New("nothing to work with: provide --text, --file, --url, or --topic")
	}

	client, err := llm.NewGeminiClient(ctx, apiKey, cfg.Model)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer func() { _ = client.Close() }()

	p, err := pipeline.New(client, nil, logger, pipeline.Options{
		SectionConcurrency: cfg.Concurrency,
		SectionDelay:       cfg.Delay,
		Keywords:           cfg.Keywords,
		OnProgress: func(ev pipeline.StageEvent) {
			logger.Info().Str("stage", string(ev.Stage)).Msg(ev.Message)
		},
	})
	if err != nil {
		return err
	}

	styleCfg := style.Config{
		Tone:     style.Tone(cfg.Tone),
		Audience: style.Audience(cfg.Audience),
		Length:   style.Length(cfg.Length),
	}

	var doc *types.Document
	if len(inputs) > 0 {
		doc, err = p.Run(ctx, inputs, styleCfg)
	} else {
		doc, err = p.GenerateFromTopic(ctx, cfg.Topic, styleCfg)
	}
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintOutline(&doc.Outline)
		printer.PrintDocumentSummary(doc)
	}

	return writeArticle(doc, cfg.Out)
}

// mergeConfig loads the optional config file, applies CLI overrides for
// every flag that was explicitly set, then fills remaining defaults.
func mergeConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg config.Config
	if genConfigPath != "" {
		loaded, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// Command-line args take priority; only override if the flag was set.
	if cmd.Flags().Changed("text") {
		cfg.Text = genText
	}
	if cmd.Flags().Changed("file") {
		cfg.Files = genFiles
	}
	if cmd.Flags().Changed("url") {
		cfg.URLs = genURLs
	}
	if cmd.Flags().Changed("topic") {
		cfg.Topic = genTopic
	}
	if cmd.Flags().Changed("tone") {
		cfg.Tone = genTone
	}
	if cmd.Flags().Changed("audience") {
		cfg.Audience = genAudience
	}
	if cmd.Flags().Changed("length") {
		cfg.Length = genLength
	}
	if cmd.Flags().Changed("keyword") {
		cfg.Keywords = genKeywords
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = genConcurrency
	}
	if cmd.Flags().Changed("delay") {
		cfg.Delay = genDelay
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = genModel
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = genAPIKey
	}
	if cmd.Flags().Changed("out") {
		cfg.Out = genOut
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = genVerbose
	}

	if cfg.Model == "" {
		cfg.Model = llm.DefaultModel
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = pipeline.DefaultSectionConcurrency
	}
	if cfg.Delay == 0 {
		cfg.Delay = pipeline.DefaultSectionDelay
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// collectInputs turns the merged source settings into pipeline inputs. Files
// are read here so a missing path fails before any network or model call.
func collectInputs(cfg *config.Config) ([]types.SourceInput, error) {
	var inputs []types.SourceInput

	if strings.TrimSpace(cfg.Text) != "" {
		inputs = append(inputs, types.TextInput(cfg.Text))
	}
	for _, path := range cfg.Files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		inputs = append(inputs, types.FileInput(data, mimeByExtension(path), filepath.Base(path)))
	}
	for _, url := range cfg.URLs {
		inputs = append(inputs, types.URLInput(url))
	}

	return inputs, nil
}

func mimeByExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extract.MimePDF
	case ".docx":
		return extract.MimeDocx
	default:
		// Anything else is offered as plain text; the extractor rejects
		// what it cannot handle.
		return extract.MimePlain
	}
}

func writeArticle(doc *types.Document, out string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s</h1>\n", doc.Title)
	b.WriteString(doc.FullContent)
	b.WriteString("\n")

	if out == "" {
		_, err := fmt.Print(b.String())
		return err
	}
	if err := os.WriteFile(out, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	fmt.Fprintf(os.Stderr, "Article written to %s\n", out)
	return nil
}
