package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/quocvuong92/tassist/internal/constants"
)

// ConfigFileName is the name of the config file
const ConfigFileName = "config.yaml"

// FileConfig represents the configuration file structure
type FileConfig struct {
	// Storage settings
	DataFile string `yaml:"data_file,omitempty"`
	Storage  string `yaml:"storage,omitempty"` // "json", "sqlite"

	// Render help as markdown
	Render *bool `yaml:"render,omitempty"`

	// Logging settings
	Log *LogConfig `yaml:"log,omitempty"`

	// GitHub settings
	Github *GithubConfig `yaml:"github,omitempty"`

	// History settings
	History *HistoryConfig `yaml:"history,omitempty"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`  // "debug", "info", "warn", "error", "none"
	Format string `yaml:"format,omitempty"` // "text", "json"
	File   string `yaml:"file,omitempty"`
}

// GithubConfig holds GitHub account verification configuration
type GithubConfig struct {
	Verify *bool  `yaml:"verify,omitempty"`
	APIURL string `yaml:"api_url,omitempty"`
	Token  string `yaml:"token,omitempty"`
}

// HistoryConfig holds command history configuration
type HistoryConfig struct {
	Enabled *bool `yaml:"enabled,omitempty"`
	Limit   int   `yaml:"limit,omitempty"`
}

// GetConfigPaths returns the paths to check for config files (in order of priority)
func GetConfigPaths() []string {
	var paths []string

	// 1. Current directory
	paths = append(paths, filepath.Join(".", "."+constants.AppName, ConfigFileName))

	// 2. User config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, constants.AppName, ConfigFileName))
	}

	// 3. Home directory
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", constants.AppName, ConfigFileName))
	}

	return paths
}

// LoadConfigFile loads the first config file found. It returns an empty
// path and config when there is none.
func LoadConfigFile() (string, *FileConfig, error) {
	for _, path := range GetConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			cfg, err := loadConfigFromPath(path)
			if err != nil {
				return "", nil, err
			}
			return path, cfg, nil
		}
	}

	// No config file found, return empty config
	return "", &FileConfig{}, nil
}

// loadConfigFromPath loads config from a specific path
func loadConfigFromPath(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// ApplyFileConfig applies file configuration to the main Config.
// File config has lower priority than environment variables and CLI flags.
func (c *Config) ApplyFileConfig(fc *FileConfig) {
	if fc == nil {
		return
	}

	if fc.DataFile != "" {
		c.DataFile = fc.DataFile
	}
	if fc.Storage != "" {
		c.Storage = fc.Storage
	}
	if fc.Render != nil {
		c.Render = *fc.Render
	}

	if fc.Log != nil {
		if fc.Log.Level != "" {
			c.LogLevel = fc.Log.Level
		}
		if fc.Log.Format != "" {
			c.LogFormat = fc.Log.Format
		}
		if fc.Log.File != "" {
			c.LogFile = fc.Log.File
		}
	}

	if fc.Github != nil {
		if fc.Github.Verify != nil {
			c.VerifyGithub = *fc.Github.Verify
		}
		if fc.Github.APIURL != "" {
			c.GithubAPIURL = fc.Github.APIURL
		}
		if fc.Github.Token != "" {
			c.GithubToken = fc.Github.Token
		}
	}

	if fc.History != nil {
		if fc.History.Enabled != nil {
			c.HistoryEnabled = *fc.History.Enabled
		}
		if fc.History.Limit != 0 {
			c.HistoryLimit = fc.History.Limit
		}
	}
}

const defaultConfig = `# TAssist Configuration
# Location: ~/.config/tassist/config.yaml

# Where the roster is stored
# data_file: data/tassist.json

# Storage backend: "json" or "sqlite"
# storage: json

# Render help as markdown
# render: true

# Logging
# log:
#   level: warn     # debug, info, warn, error, or none
#   format: text    # text or json
#   file: ""        # empty logs to stderr

# GitHub account verification
# github:
#   verify: false   # check that GitHub accounts exist before saving them
#   api_url: https://api.github.com
#   token: ""       # or set GITHUB_TOKEN, or run 'tassist login'

# Command history
# history:
#   enabled: true
#   limit: 500
`

// CreateDefaultConfigFile creates a default config file at the user config directory
func CreateDefaultConfigFile() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not determine config directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	dir := filepath.Join(configDir, constants.AppName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0600); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}
