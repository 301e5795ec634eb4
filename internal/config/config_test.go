package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/quocvuong92/tassist/internal/logging"
)

// clearAllEnvVars clears all config-related environment variables for clean tests
func clearAllEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		EnvDataFile, EnvStorage,
		EnvLogLevel, EnvLogFormat, EnvLogFile,
		EnvRender,
		EnvGithubVerify, EnvGithubAPIURL, EnvGithubToken,
		EnvHistory,
	}
	for _, env := range envVars {
		t.Setenv(env, "")
	}
}

// runInTempDir runs the test in a temporary directory to isolate from config files
func runInTempDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	// Override HOME and XDG_CONFIG_HOME to prevent loading user config files
	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, ".config"))
	return tmpDir
}

// =============================================================================
// Load Tests
// =============================================================================

func TestConfig_Load_Defaults(t *testing.T) {
	runInTempDir(t)
	clearAllEnvVars(t)

	cfg := NewConfig()
	if err := cfg.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.DataFile != DefaultDataFile {
		t.Errorf("DataFile = %q, want %q", cfg.DataFile, DefaultDataFile)
	}
	if cfg.Storage != DefaultStorage {
		t.Errorf("Storage = %q, want %q", cfg.Storage, DefaultStorage)
	}
	if cfg.VerifyGithub {
		t.Error("VerifyGithub should be off by default")
	}
	if !cfg.HistoryEnabled {
		t.Error("HistoryEnabled should be on by default")
	}
	if cfg.ConfigPath != "" {
		t.Errorf("ConfigPath = %q, want empty", cfg.ConfigPath)
	}
}

func TestConfig_Load_EnvOverridesFile(t *testing.T) {
	tmpDir := runInTempDir(t)
	clearAllEnvVars(t)
	createTempConfigFile(t, tmpDir, `
data_file: from-file.json
storage: sqlite
github:
  verify: true
  token: file-token
`)

	t.Setenv(EnvDataFile, "from-env.json")
	t.Setenv(EnvGithubVerify, "false")

	cfg := NewConfig()
	if err := cfg.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DataFile != "from-env.json" {
		t.Errorf("DataFile = %q, want env value", cfg.DataFile)
	}
	if cfg.Storage != "sqlite" {
		t.Errorf("Storage = %q, want file value", cfg.Storage)
	}
	if cfg.VerifyGithub {
		t.Error("VerifyGithub should be disabled by env")
	}
	if cfg.GithubToken != "file-token" {
		t.Errorf("GithubToken = %q, want file value", cfg.GithubToken)
	}
	if cfg.ConfigPath == "" {
		t.Error("ConfigPath should point at the loaded file")
	}
}

func TestConfig_Load_EnvVarLoading(t *testing.T) {
	runInTempDir(t)
	clearAllEnvVars(t)

	t.Setenv(EnvStorage, "sqlite")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvRender, "1")
	t.Setenv(EnvHistory, "false")
	t.Setenv(EnvGithubToken, "ghp_abc")
	t.Setenv(EnvGithubAPIURL, "http://localhost:9999/")

	cfg := NewConfig()
	if err := cfg.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Storage != "sqlite" {
		t.Errorf("Storage = %q, want sqlite", cfg.Storage)
	}
	if cfg.Level() != logging.LevelDebug {
		t.Errorf("Level() = %v, want DEBUG", cfg.Level())
	}
	if cfg.Format() != logging.FormatJSON {
		t.Errorf("Format() = %v, want JSON", cfg.Format())
	}
	if !cfg.Render {
		t.Error("Render should be enabled by env")
	}
	if cfg.HistoryEnabled {
		t.Error("HistoryEnabled should be disabled by env")
	}
	if cfg.GithubToken != "ghp_abc" {
		t.Errorf("GithubToken = %q, want ghp_abc", cfg.GithubToken)
	}
	if cfg.GithubAPIURL != "http://localhost:9999" {
		t.Errorf("GithubAPIURL = %q, want trailing slash trimmed", cfg.GithubAPIURL)
	}
}

func TestConfig_Load_InvalidEnvBool(t *testing.T) {
	runInTempDir(t)
	clearAllEnvVars(t)
	t.Setenv(EnvGithubVerify, "maybe")

	err := NewConfig().Load()
	if err == nil {
		t.Fatal("Load() should fail for a non-boolean env value")
	}
}

func TestConfig_Load_InvalidFile(t *testing.T) {
	tmpDir := runInTempDir(t)
	clearAllEnvVars(t)
	createTempConfigFile(t, tmpDir, "storage: [unclosed")

	if err := NewConfig().Load(); err == nil {
		t.Error("Load() should report a broken config file")
	}
}

// =============================================================================
// Validate Tests
// =============================================================================

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr error
	}{
		{"defaults", func(c *Config) {}, nil},
		{"storage case insensitive", func(c *Config) { c.Storage = "SQLite" }, nil},
		{"invalid storage", func(c *Config) { c.Storage = "csv" }, ErrInvalidStorage},
		{"invalid log format", func(c *Config) { c.LogFormat = "xml" }, ErrInvalidLogFormat},
		{"empty data file", func(c *Config) { c.DataFile = "  " }, ErrEmptyDataFile},
		{"zero history limit", func(c *Config) { c.HistoryLimit = 0 }, ErrInvalidHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Level_Verbose(t *testing.T) {
	cfg := NewConfig()
	cfg.LogLevel = "error"
	if cfg.Level() != logging.LevelError {
		t.Errorf("Level() = %v, want ERROR", cfg.Level())
	}
	cfg.Verbose = true
	if cfg.Level() != logging.LevelDebug {
		t.Errorf("Level() with verbose = %v, want DEBUG", cfg.Level())
	}
}

func TestConfig_Entries_MasksToken(t *testing.T) {
	cfg := NewConfig()
	cfg.GithubToken = "ghp_supersecret1234"

	for _, kv := range cfg.Entries() {
		if kv[0] == "github.token" {
			if kv[1] != "****1234" {
				t.Errorf("github.token = %q, want masked", kv[1])
			}
			return
		}
	}
	t.Error("Entries() should include github.token")
}

func TestMaskSecret(t *testing.T) {
	tests := map[string]string{
		"":         "(not set)",
		"abc":      "****",
		"abcdefgh": "****efgh",
	}
	for in, want := range tests {
		if got := MaskSecret(in); got != want {
			t.Errorf("MaskSecret(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConfig_Load_ReadsHomeConfig(t *testing.T) {
	tmpDir := runInTempDir(t)
	clearAllEnvVars(t)

	dir := filepath.Join(tmpDir, ".config", "tassist")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("storage: sqlite\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg := NewConfig()
	if err := cfg.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Storage != "sqlite" {
		t.Errorf("Storage = %q, want sqlite from user config", cfg.Storage)
	}
}
