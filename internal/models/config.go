package models

import "time"

// Config represents the application configuration
type Config struct {
	BaseURL string `yaml:"base_url" env:"PEOPLESEARCH_BASE_URL"`

	// Browser
	Headless          bool          `yaml:"headless" env:"PEOPLESEARCH_HEADLESS"`
	ChromePath        string        `yaml:"chrome_path" env:"PEOPLESEARCH_CHROME_PATH"`
	UserDataDir       string        `yaml:"user_data_dir" env:"PEOPLESEARCH_USER_DATA_DIR"`
	SessionCookie     string        `yaml:"session_cookie" env:"PEOPLESEARCH_SESSION_COOKIE"`
	NavigationTimeout time.Duration `yaml:"navigation_timeout" env:"PEOPLESEARCH_NAVIGATION_TIMEOUT"`

	// Page settling
	WaitTimeout      time.Duration `yaml:"wait_timeout" env:"PEOPLESEARCH_WAIT_TIMEOUT"`
	ScrollPause      time.Duration `yaml:"scroll_pause" env:"PEOPLESEARCH_SCROLL_PAUSE"`
	ScrollIterations int           `yaml:"scroll_iterations" env:"PEOPLESEARCH_SCROLL_ITERATIONS"`
	ScrollPercents   []float64     `yaml:"scroll_percents" env:"PEOPLESEARCH_SCROLL_PERCENTS" env-separator:","`

	// Run journal, disabled when empty
	JournalPath string `yaml:"journal_path" env:"PEOPLESEARCH_JOURNAL_PATH"`

	LogLevel  string `yaml:"log_level" env:"PEOPLESEARCH_LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"PEOPLESEARCH_LOG_FORMAT"`
}
