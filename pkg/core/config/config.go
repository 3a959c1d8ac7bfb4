// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     config
// Description: Application configuration loaded from TOML or YAML
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	mdwerror "github.com/msto63/cardano/foundation/core/error"
	mdwerrors "github.com/msto63/cardano/foundation/core/errors"
	"github.com/msto63/cardano/foundation/utils/cmplxx"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "CARDANO_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Format  FormatConfig  `toml:"format" yaml:"format"`
	Server  ServerConfig  `toml:"server" yaml:"server"`
	History HistoryConfig `toml:"history" yaml:"history"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
	DataDir     string `toml:"data_dir" yaml:"data_dir"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	LogFormat   string `toml:"log_format" yaml:"log_format"`
}

// FormatConfig controls how results are rendered
type FormatConfig struct {
	// Pattern holds two float verbs for the real and imaginary parts
	Pattern string `toml:"pattern" yaml:"pattern"`
	// Output is "text" or "json"
	Output string `toml:"output" yaml:"output"`
}

// ServerConfig holds the gRPC calculator server settings
type ServerConfig struct {
	Host              string   `toml:"host" yaml:"host"`
	Port              int      `toml:"port" yaml:"port"`
	DisableReflection bool     `toml:"disable_reflection" yaml:"disable_reflection"`
	MaxRecvMsgSize    int      `toml:"max_recv_msg_size" yaml:"max_recv_msg_size"`
	ShutdownTimeout   Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
	RequestTimeout    Duration `toml:"request_timeout" yaml:"request_timeout"`
}

// HistoryConfig holds the evaluation history settings
type HistoryConfig struct {
	Disabled bool   `toml:"disabled" yaml:"disabled"`
	Path     string `toml:"path" yaml:"path"`
	// Retention of zero keeps entries forever
	Retention Duration `toml:"retention" yaml:"retention"`
	// Limit is the default page size for history queries
	Limit int `toml:"limit" yaml:"limit"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalYAML formats the duration as a string
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.expandEnvVars()
	return cfg
}

// Load loads configuration from a TOML or YAML file.
// The format is chosen by file extension.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("load").
			Messagef("config file not found: %s", path).
			Code(string(mdwerror.CodeMissingConfig)).
			Detail("path", path).
			Build()
	}
	if err != nil {
		return nil, mdwerrors.OperationFailed(mdwerrors.ModuleConfig, "load", err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes configuration data. ext selects the decoder
// (".toml", ".yaml" or ".yml").
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config
	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, parseError(err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, parseError(err)
		}
	default:
		return nil, mdwerrors.InvalidFormat(mdwerrors.ModuleConfig, ext, "toml or yaml")
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in paths
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseError(err error) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
		Operation("parse").
		Message("failed to parse config").
		Cause(err).
		Code(string(mdwerror.CodeInvalidConfig)).
		Build()
}

// LoadFromEnv loads configuration from the CARDANO_CONFIG environment
// variable or the first existing default location
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("load").
			Messagef("no config file found, set %s or create configs/cardano.toml", EnvConfigPath).
			Code(string(mdwerror.CodeMissingConfig)).
			Build()
	}

	return Load(path)
}

// LoadOrDefault loads path when given. Without a path it tries
// LoadFromEnv and falls back to Default when no file exists.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	cfg, err := LoadFromEnv()
	if mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		return Default(), nil
	}
	return cfg, err
}

// DefaultPaths lists the locations searched by LoadFromEnv
func DefaultPaths() []string {
	paths := []string{
		"./configs/cardano.toml",
		"./cardano.toml",
		"./cardano.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config/cardano/config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "Cardano"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}
	if c.General.DataDir == "" {
		c.General.DataDir = "./data"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Format
	if c.Format.Pattern == "" {
		c.Format.Pattern = cmplxx.DefaultFormat
	}
	if c.Format.Output == "" {
		c.Format.Output = "text"
	}

	// Server
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 9300
	}
	if c.Server.MaxRecvMsgSize == 0 {
		c.Server.MaxRecvMsgSize = 4 * 1024 * 1024
	}
	if c.Server.ShutdownTimeout.Duration == 0 {
		c.Server.ShutdownTimeout.Duration = 10 * time.Second
	}
	if c.Server.RequestTimeout.Duration == 0 {
		c.Server.RequestTimeout.Duration = 5 * time.Second
	}

	// History
	if c.History.Limit == 0 {
		c.History.Limit = 20
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.General.DataDir = os.ExpandEnv(c.General.DataDir)
	c.History.Path = os.ExpandEnv(c.History.Path)
}

// Validate checks value ranges and the result pattern
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return mdwerrors.OutOfRange(mdwerrors.ModuleConfig, "validate", c.Server.Port, 1, 65535)
	}
	if c.History.Limit < 1 || c.History.Limit > 1000 {
		return mdwerrors.OutOfRange(mdwerrors.ModuleConfig, "validate", c.History.Limit, 1, 1000)
	}
	if c.History.Retention.Duration < 0 {
		return mdwerrors.OutOfRange(mdwerrors.ModuleConfig, "validate", c.History.Retention.Duration, 0, "unbounded")
	}
	if rendered := fmt.Sprintf(c.Format.Pattern, 1.0, 2.0); strings.Contains(rendered, "%!") {
		return mdwerrors.InvalidFormat(mdwerrors.ModuleConfig, c.Format.Pattern, "two float verbs")
	}
	switch c.Format.Output {
	case "text", "json":
	default:
		return mdwerrors.InvalidFormat(mdwerrors.ModuleConfig, c.Format.Output, "text or json")
	}
	return nil
}

// ServerAddress returns the host:port address of the gRPC server
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// HistoryPath returns the SQLite file of the evaluation history.
// An empty string means history is disabled.
func (c *Config) HistoryPath() string {
	if c.History.Disabled {
		return ""
	}
	if c.History.Path != "" {
		return c.History.Path
	}
	return filepath.Join(c.General.DataDir, "history.db")
}
