package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/msto63/cardano/foundation/core/error"
	"github.com/msto63/cardano/foundation/utils/cmplxx"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"hours", "2h", 2 * time.Hour, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"milliseconds", "100ms", 100 * time.Millisecond, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"seconds", 30 * time.Second, "30s"},
		{"minutes", 5 * time.Minute, "5m0s"},
		{"hours", 2 * time.Hour, "2h0m0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Duration{tt.duration}
			result, err := d.MarshalText()

			if err != nil {
				t.Errorf("MarshalText() error = %v", err)
				return
			}

			if string(result) != tt.expected {
				t.Errorf("MarshalText() = %v, want %v", string(result), tt.expected)
			}
		})
	}
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	// General defaults
	if cfg.General.Name != "Cardano" {
		t.Errorf("General.Name = %v, want Cardano", cfg.General.Name)
	}
	if cfg.General.Environment != "development" {
		t.Errorf("General.Environment = %v, want development", cfg.General.Environment)
	}
	if cfg.General.DataDir != "./data" {
		t.Errorf("General.DataDir = %v, want ./data", cfg.General.DataDir)
	}
	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}

	// Format defaults
	if cfg.Format.Pattern != cmplxx.DefaultFormat {
		t.Errorf("Format.Pattern = %v, want %v", cfg.Format.Pattern, cmplxx.DefaultFormat)
	}
	if cfg.Format.Output != "text" {
		t.Errorf("Format.Output = %v, want text", cfg.Format.Output)
	}

	// Server defaults
	if cfg.Server.Port != 9300 {
		t.Errorf("Server.Port = %v, want 9300", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %v, want 127.0.0.1", cfg.Server.Host)
	}
	if cfg.Server.ShutdownTimeout.Duration != 10*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 10s", cfg.Server.ShutdownTimeout.Duration)
	}
	if cfg.Server.RequestTimeout.Duration != 5*time.Second {
		t.Errorf("Server.RequestTimeout = %v, want 5s", cfg.Server.RequestTimeout.Duration)
	}

	// History defaults
	if cfg.History.Limit != 20 {
		t.Errorf("History.Limit = %v, want 20", cfg.History.Limit)
	}
	if cfg.History.Retention.Duration != 0 {
		t.Errorf("History.Retention = %v, want 0", cfg.History.Retention.Duration)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestConfig_Addresses(t *testing.T) {
	cfg := Default()

	if got := cfg.ServerAddress(); got != "127.0.0.1:9300" {
		t.Errorf("ServerAddress() = %v", got)
	}
	if got := cfg.HistoryPath(); got != filepath.Join("./data", "history.db") {
		t.Errorf("HistoryPath() = %v", got)
	}

	cfg.History.Path = "/tmp/h.db"
	if got := cfg.HistoryPath(); got != "/tmp/h.db" {
		t.Errorf("HistoryPath() = %v, want explicit path", got)
	}

	cfg.History.Disabled = true
	if got := cfg.HistoryPath(); got != "" {
		t.Errorf("HistoryPath() = %v, want empty when disabled", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		code   mdwerror.Code
	}{
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, mdwerror.CodeValueOutOfRange},
		{"negative port", func(c *Config) { c.Server.Port = -1 }, mdwerror.CodeValueOutOfRange},
		{"limit too large", func(c *Config) { c.History.Limit = 5000 }, mdwerror.CodeValueOutOfRange},
		{"negative retention", func(c *Config) { c.History.Retention.Duration = -time.Hour }, mdwerror.CodeValueOutOfRange},
		{"single verb pattern", func(c *Config) { c.Format.Pattern = "%g" }, mdwerror.CodeInvalidFormat},
		{"unknown output", func(c *Config) { c.Format.Output = "xml" }, mdwerror.CodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("Validate() = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.toml")
	if err == nil {
		t.Fatal("Load() expected error for non-existent file")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		t.Errorf("Load() error code = %v, want MISSING_CONFIG", mdwerror.GetCode(err))
	}
}

func TestLoad_ValidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "cardano.toml")

	configContent := `
[general]
name = "TestCardano"
environment = "test"

[format]
pattern = "%.2f%+.2fi"

[server]
port = 9999
host = "0.0.0.0"
shutdown_timeout = "3s"

[history]
retention = "72h"
limit = 5
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Name != "TestCardano" {
		t.Errorf("General.Name = %v, want TestCardano", cfg.General.Name)
	}
	if cfg.Format.Pattern != "%.2f%+.2fi" {
		t.Errorf("Format.Pattern = %v", cfg.Format.Pattern)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %v, want 9999", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout.Duration != 3*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 3s", cfg.Server.ShutdownTimeout.Duration)
	}
	if cfg.History.Retention.Duration != 72*time.Hour {
		t.Errorf("History.Retention = %v, want 72h", cfg.History.Retention.Duration)
	}
	if cfg.History.Limit != 5 {
		t.Errorf("History.Limit = %v, want 5", cfg.History.Limit)
	}

	// Check defaults were applied for missing values
	if cfg.General.DataDir != "./data" {
		t.Errorf("General.DataDir = %v, want ./data (default)", cfg.General.DataDir)
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "cardano.yml")

	configContent := `
general:
  log_level: debug
format:
  output: json
server:
  port: 9400
  request_timeout: 250ms
history:
  disabled: true
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if cfg.Format.Output != "json" {
		t.Errorf("Format.Output = %v, want json", cfg.Format.Output)
	}
	if cfg.Server.Port != 9400 {
		t.Errorf("Server.Port = %v, want 9400", cfg.Server.Port)
	}
	if cfg.Server.RequestTimeout.Duration != 250*time.Millisecond {
		t.Errorf("Server.RequestTimeout = %v, want 250ms", cfg.Server.RequestTimeout.Duration)
	}
	if cfg.HistoryPath() != "" {
		t.Errorf("HistoryPath() = %v, want disabled", cfg.HistoryPath())
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		ext  string
		code mdwerror.Code
	}{
		{"unknown extension", "name = 1", ".ini", mdwerror.CodeInvalidFormat},
		{"broken toml", "[general\nname =", ".toml", mdwerror.CodeInvalidConfig},
		{"broken yaml", "general: [", ".yaml", mdwerror.CodeInvalidConfig},
		{"bad duration", "[server]\nshutdown_timeout = \"soon\"", ".toml", mdwerror.CodeInvalidConfig},
		{"invalid value", "[server]\nport = 123456", ".toml", mdwerror.CodeValueOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.ext)
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("Parse() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestConfig_expandEnvVars(t *testing.T) {
	t.Setenv("CARDANO_TEST_DIR", "/var/lib/cardano")

	cfg := &Config{
		General: GeneralConfig{DataDir: "$CARDANO_TEST_DIR/data"},
		History: HistoryConfig{Path: "${CARDANO_TEST_DIR}/history.db"},
	}

	cfg.expandEnvVars()

	if cfg.General.DataDir != "/var/lib/cardano/data" {
		t.Errorf("DataDir = %v", cfg.General.DataDir)
	}
	if cfg.History.Path != "/var/lib/cardano/history.db" {
		t.Errorf("History.Path = %v", cfg.History.Path)
	}
}

func TestLoadFromEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "custom.toml")
	if err := os.WriteFile(configPath, []byte("[server]\nport = 9555\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	t.Setenv(EnvConfigPath, configPath)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Server.Port != 9555 {
		t.Errorf("Server.Port = %v, want 9555", cfg.Server.Port)
	}
}

func TestLoadFromEnv_NoConfigFound(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())

	// Change to a temp directory without config files
	originalWd, _ := os.Getwd()
	os.Chdir(t.TempDir())
	defer os.Chdir(originalWd)

	_, err := LoadFromEnv()
	if !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		t.Errorf("LoadFromEnv() error = %v, want MISSING_CONFIG", err)
	}

	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Server.Port != 9300 {
		t.Errorf("LoadOrDefault() should fall back to defaults, port = %v", cfg.Server.Port)
	}

	if _, err := LoadOrDefault("missing.toml"); err == nil {
		t.Error("LoadOrDefault() with an explicit missing path should fail")
	}
}
