package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"topic": "Event-driven architectures",
		"urls": ["https://example.com/post"],
		"tone": "casual",
		"keywords": ["kafka", "queues"],
		"concurrency": 4,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Event-driven architectures", cfg.Topic)
	assert.Equal(t, []string{"https://example.com/post"}, cfg.URLs)
	assert.Equal(t, "casual", cfg.Tone)
	assert.Equal(t, []string{"kafka", "queues"}, cfg.Keywords)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestLoadConfig_RelativePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"model": "gemini-2.5-pro"}`), 0644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := LoadConfig("config.json")
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty config", cfg: Config{}},
		{name: "full valid config", cfg: Config{
			Topic:       "topic",
			Concurrency: 8,
			Delay:       250 * time.Millisecond,
			Files:       []string{"notes.pdf"},
			URLs:        []string{"https://example.com"},
		}},
		{name: "negative concurrency", cfg: Config{Concurrency: -1}, wantErr: "'concurrency' must be non-negative"},
		{name: "excessive concurrency", cfg: Config{Concurrency: 64}, wantErr: "'concurrency' must be at most 16"},
		{name: "negative delay", cfg: Config{Delay: -time.Second}, wantErr: "'delay' must be non-negative"},
		{name: "empty file path", cfg: Config{Files: []string{""}}, wantErr: "'files' must not contain empty paths"},
		{name: "empty url", cfg: Config{URLs: []string{"https://example.com", ""}}, wantErr: "'urls' must not contain empty entries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
