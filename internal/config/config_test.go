package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkedin-people-search/internal/models"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, 4, cfg.ScrollIterations)
	assert.Equal(t, []float64{0.3, 0.6, 1}, cfg.ScrollPercents)
	assert.Empty(t, cfg.JournalPath)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `base_url: "http://localhost:9000/"
headless: false
wait_timeout: 250ms
scroll_iterations: 2
scroll_percents: [0.5, 1]
journal_path: /tmp/runs.db
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/", cfg.BaseURL)
	assert.False(t, cfg.Headless)
	assert.Equal(t, 250*time.Millisecond, cfg.WaitTimeout)
	assert.Equal(t, 2, cfg.ScrollIterations)
	assert.Equal(t, []float64{0.5, 1}, cfg.ScrollPercents)
	assert.Equal(t, "/tmp/runs.db", cfg.JournalPath)
	// untouched keys keep their defaults
	assert.Equal(t, 2*time.Second, cfg.ScrollPause)
	assert.Equal(t, 30*time.Second, cfg.NavigationTimeout)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("PEOPLESEARCH_SCROLL_PAUSE", "10ms")
	t.Setenv("PEOPLESEARCH_LOG_LEVEL", "debug")
	t.Setenv("PEOPLESEARCH_SCROLL_PERCENTS", "0.25,0.75")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, cfg.ScrollPause)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []float64{0.25, 0.75}, cfg.ScrollPercents)
	assert.Equal(t, "https://www.linkedin.com/", cfg.BaseURL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalidValues(t *testing.T) {
	t.Setenv("PEOPLESEARCH_SCROLL_ITERATIONS", "0")

	_, err := Load("")
	assert.ErrorContains(t, err, "scroll_iterations")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *models.Config)
		wantErr string
	}{
		{"relative base url", func(c *models.Config) { c.BaseURL = "/search" }, "base_url"},
		{"zero wait", func(c *models.Config) { c.WaitTimeout = 0 }, "wait_timeout"},
		{"zero navigation", func(c *models.Config) { c.NavigationTimeout = 0 }, "navigation_timeout"},
		{"negative pause", func(c *models.Config) { c.ScrollPause = -time.Second }, "scroll_pause"},
		{"percent above one", func(c *models.Config) { c.ScrollPercents = []float64{0.5, 1.5} }, "scroll_percents"},
		{"zero pause is fine", func(c *models.Config) { c.ScrollPause = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
