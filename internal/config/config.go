package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/quocvuong92/tassist/internal/constants"
	"github.com/quocvuong92/tassist/internal/logging"
)

// Environment variable names
const (
	// Storage settings
	EnvDataFile = "TASSIST_DATA_FILE"
	EnvStorage  = "TASSIST_STORAGE"

	// Logging settings
	EnvLogLevel  = "TASSIST_LOG_LEVEL"
	EnvLogFormat = "TASSIST_LOG_FORMAT"
	EnvLogFile   = "TASSIST_LOG_FILE"

	// Output settings
	EnvRender = "TASSIST_RENDER"

	// GitHub settings
	EnvGithubVerify = "TASSIST_GITHUB_VERIFY"
	EnvGithubAPIURL = "TASSIST_GITHUB_API_URL"
	EnvGithubToken  = "GITHUB_TOKEN"

	// History settings
	EnvHistory = "TASSIST_HISTORY"
)

// Defaults - re-exported from constants for convenience
const (
	DefaultDataFile     = constants.DefaultDataFile
	DefaultStorage      = constants.DefaultStorage
	DefaultGithubAPIURL = constants.DefaultGithubAPIURL
	DefaultHistoryLimit = constants.DefaultHistoryLimit
	DefaultLogLevel     = constants.DefaultLogLevel
	DefaultLogFormat    = constants.DefaultLogFormat
)

// Errors
var (
	ErrInvalidStorage      = errors.New("invalid storage backend. Use 'json' or 'sqlite'")
	ErrInvalidLogFormat    = errors.New("invalid log format. Use 'text' or 'json'")
	ErrInvalidHistoryLimit = errors.New("history limit must be positive")
	ErrEmptyDataFile       = errors.New("data file path is empty")
)

// Config holds the application configuration
type Config struct {
	// Storage
	DataFile string
	Storage  string // "json" or "sqlite"

	// Logging
	LogLevel  string
	LogFormat string // "text" or "json"
	LogFile   string // empty logs to stderr

	// GitHub account verification
	VerifyGithub bool
	GithubAPIURL string
	GithubToken  string

	// History
	HistoryEnabled bool
	HistoryLimit   int

	// Flags
	Render  bool
	Verbose bool

	// ConfigPath is the file the settings were read from, empty when none
	ConfigPath string
}

// NewConfig creates a new Config with defaults
func NewConfig() *Config {
	return &Config{
		DataFile:       DefaultDataFile,
		Storage:        DefaultStorage,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
		GithubAPIURL:   DefaultGithubAPIURL,
		HistoryEnabled: true,
		HistoryLimit:   DefaultHistoryLimit,
	}
}

// Load applies the config file and then the environment on top of the
// defaults. Flags are applied by the caller afterwards.
func (c *Config) Load() error {
	path, fileConfig, err := LoadConfigFile()
	if err != nil {
		return err
	}
	c.ConfigPath = path
	c.ApplyFileConfig(fileConfig)
	return c.ApplyEnv()
}

// ApplyEnv overrides settings from environment variables
func (c *Config) ApplyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvDataFile)); v != "" {
		c.DataFile = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvStorage)); v != "" {
		c.Storage = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		c.LogFormat = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		c.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvGithubAPIURL)); v != "" {
		c.GithubAPIURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvGithubToken)); v != "" {
		c.GithubToken = v
	}

	for env, dst := range map[string]*bool{
		EnvRender:       &c.Render,
		EnvGithubVerify: &c.VerifyGithub,
		EnvHistory:      &c.HistoryEnabled,
	} {
		if err := envBool(env, dst); err != nil {
			return err
		}
	}
	return nil
}

func envBool(env string, dst *bool) error {
	v := strings.TrimSpace(os.Getenv(env))
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid value %q for %s: %w", v, env, err)
	}
	*dst = b
	return nil
}

// Validate checks the combined configuration and normalizes names
func (c *Config) Validate() error {
	c.DataFile = strings.TrimSpace(c.DataFile)
	if c.DataFile == "" {
		return ErrEmptyDataFile
	}

	c.Storage = strings.ToLower(strings.TrimSpace(c.Storage))
	if !slices.Contains(constants.StorageBackends, c.Storage) {
		return fmt.Errorf("%w: %q", ErrInvalidStorage, c.Storage)
	}

	if _, ok := logging.ParseFormat(c.LogFormat); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}

	if c.HistoryLimit <= 0 {
		return ErrInvalidHistoryLimit
	}

	c.GithubAPIURL = strings.TrimSuffix(c.GithubAPIURL, "/")
	return nil
}

// Level returns the effective log level. Verbose forces debug.
func (c *Config) Level() logging.Level {
	if c.Verbose {
		return logging.LevelDebug
	}
	return logging.ParseLevel(c.LogLevel)
}

// Format returns the log output format
func (c *Config) Format() logging.Format {
	f, _ := logging.ParseFormat(c.LogFormat)
	return f
}

// Entries lists the effective settings for display. Secrets are masked.
func (c *Config) Entries() [][2]string {
	source := c.ConfigPath
	if source == "" {
		source = "(none)"
	}
	logFile := c.LogFile
	if logFile == "" {
		logFile = "(stderr)"
	}
	return [][2]string{
		{"config file", source},
		{"data_file", c.DataFile},
		{"storage", c.Storage},
		{"log.level", c.LogLevel},
		{"log.format", c.LogFormat},
		{"log.file", logFile},
		{"render", strconv.FormatBool(c.Render)},
		{"github.verify", strconv.FormatBool(c.VerifyGithub)},
		{"github.api_url", c.GithubAPIURL},
		{"github.token", MaskSecret(c.GithubToken)},
		{"history.enabled", strconv.FormatBool(c.HistoryEnabled)},
		{"history.limit", strconv.Itoa(c.HistoryLimit)},
	}
}

// MaskSecret keeps the last four characters of a secret
func MaskSecret(s string) string {
	switch {
	case s == "":
		return "(not set)"
	case len(s) <= 4:
		return "****"
	default:
		return "****" + s[len(s)-4:]
	}
}
