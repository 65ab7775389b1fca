package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"linkedin-people-search/internal/models"
)

// DefaultConfig returns the default configuration for the scraper
func DefaultConfig() models.Config {
	return models.Config{
		BaseURL:           "https://www.linkedin.com/",
		Headless:          true,
		NavigationTimeout: 30 * time.Second,
		WaitTimeout:       5 * time.Second,
		ScrollPause:       2 * time.Second,
		ScrollIterations:  4,
		ScrollPercents:    []float64{0.3, 0.6, 1},
		LogLevel:          "info",
		LogFormat:         "text",
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty), then PEOPLESEARCH_* environment variables.
func Load(path string) (models.Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return cfg, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a search
func Validate(cfg models.Config) error {
	var errs []error

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("base_url %q is not an absolute URL", cfg.BaseURL))
	}
	if cfg.WaitTimeout <= 0 {
		errs = append(errs, errors.New("wait_timeout must be positive"))
	}
	if cfg.NavigationTimeout <= 0 {
		errs = append(errs, errors.New("navigation_timeout must be positive"))
	}
	if cfg.ScrollPause < 0 {
		errs = append(errs, errors.New("scroll_pause must not be negative"))
	}
	if cfg.ScrollIterations <= 0 {
		errs = append(errs, errors.New("scroll_iterations must be positive"))
	}
	for _, pct := range cfg.ScrollPercents {
		if pct < 0 || pct > 1 {
			errs = append(errs, fmt.Errorf("scroll_percents value %v is outside [0,1]", pct))
		}
	}

	return errors.Join(errs...)
}
