// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags, and flags always win over file values.
type Config struct {
	// Sources
	Text  string   `json:"text,omitempty"`  // Free text source material
	Files []string `json:"files,omitempty"` // Paths to source documents
	URLs  []string `json:"urls,omitempty"`  // Web pages to fetch
	Topic string   `json:"topic,omitempty"` // Topic when no source material is given

	// Style
	Tone     string   `json:"tone,omitempty"`     // professional, casual, academic, persuasive
	Audience string   `json:"audience,omitempty"` // general, developers, executives, beginners
	Length   string   `json:"length,omitempty"`   // short, medium, long
	Keywords []string `json:"keywords,omitempty"` // Keywords to weave into body sections

	// Behavior
	APIKey      string        `json:"api_key,omitempty"`     // Gemini API key
	Model       string        `json:"model,omitempty"`       // Gemini model name
	Concurrency int           `json:"concurrency,omitempty"` // Maximum concurrent section calls
	Delay       time.Duration `json:"delay,omitempty"`       // Delay between sequential section calls (nanoseconds)
	Out         string        `json:"out,omitempty"`         // Output file for the HTML article
	Verbose     bool          `json:"verbose,omitempty"`     // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.Concurrency > 16 {
		return fmt.Errorf("config error: 'concurrency' must be at most 16")
	}
	if c.Delay < 0 {
		return fmt.Errorf("config error: 'delay' must be non-negative")
	}

	for _, path := range c.Files {
		if path == "" {
			return fmt.Errorf("config error: 'files' must not contain empty paths")
		}
	}
	for _, url := range c.URLs {
		if url == "" {
			return fmt.Errorf("config error: 'urls' must not contain empty entries")
		}
	}

	return nil
}
