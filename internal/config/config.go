// Package config loads recentlog's optional user configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/yarp-shell/recentlog/internal/errors"
)

// Config is the effective recentlog configuration.
type Config struct {
	// LogDir overrides the platform log directory. Empty means "resolve for
	// the host OS".
	LogDir string `yaml:"log_dir" toml:"log_dir" json:"log_dir"`

	// Pattern is the file name glob inside LogDir.
	Pattern string `yaml:"pattern" toml:"pattern" json:"pattern"`

	// LogLevel is the minimum level for recentlog's own diagnostics.
	LogLevel string `yaml:"log_level" toml:"log_level" json:"log_level"`

	// LogFile, when set, also writes diagnostics to a rotating file.
	LogFile string `yaml:"log_file" toml:"log_file" json:"log_file"`
}

const (
	defaultPattern  = "*.log"
	defaultLogLevel = "warn"
)

// Environment variable overrides.
const (
	EnvLogDir   = "RECENTLOG_DIR"
	EnvPattern  = "RECENTLOG_PATTERN"
	EnvLogLevel = "RECENTLOG_LOG_LEVEL"
)

// NewConfig returns the built-in defaults.
func NewConfig() *Config {
	return &Config{
		Pattern:  defaultPattern,
		LogLevel: defaultLogLevel,
	}
}

// GetUserConfigDir returns the directory holding the user configuration:
//   - $XDG_CONFIG_HOME/recentlog (if XDG_CONFIG_HOME is set)
//   - ~/.config/recentlog (default)
func GetUserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "recentlog")
	}
	home, err := homedir.Dir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "recentlog")
	}
	return filepath.Join(home, ".config", "recentlog")
}

// GetUserConfigPath returns the user config file path. config.yaml wins
// over config.toml when both exist; with neither, config.yaml is returned.
func GetUserConfigPath() string {
	dir := GetUserConfigDir()
	for _, name := range []string{"config.yaml", "config.yml", "config.toml"} {
		p := filepath.Join(dir, name)
		if fileExists(p) {
			return p
		}
	}
	return filepath.Join(dir, "config.yaml")
}

// UserConfigExists returns true if a user configuration file exists.
func UserConfigExists() bool {
	return fileExists(GetUserConfigPath())
}

// Load builds the effective configuration. Precedence, lowest first:
//  1. Hardcoded defaults
//  2. Config file (path, or the user config when path is empty)
//  3. Environment variables (RECENTLOG_*)
//
// A missing file is not an error unless path was given explicitly.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = GetUserConfigPath()
	}

	expanded, err := homedir.Expand(strings.TrimSpace(path))
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("expand config path %s", path), err)
	}

	if fileExists(expanded) {
		if err := cfg.loadFile(expanded); err != nil {
			return nil, err
		}
	} else if explicit {
		return nil, errors.ConfigError(fmt.Sprintf("config file not found: %s", expanded), nil)
	}

	cfg.applyEnvOverrides()

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile parses path by extension and merges non-empty values into c.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.ConfigError(fmt.Sprintf("read config file %s", path), err)
	}

	var parsed Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &parsed)
	case ".yaml", ".yml", "":
		err = yaml.Unmarshal(data, &parsed)
	default:
		return errors.ConfigError(fmt.Sprintf("unsupported config format %q (use .yaml or .toml)", filepath.Ext(path)), nil)
	}
	if err != nil {
		return errors.ConfigError(fmt.Sprintf("parse config file %s", path), err)
	}

	c.mergeWith(&parsed)
	return nil
}

// mergeWith merges non-empty values from other into c.
func (c *Config) mergeWith(other *Config) {
	if v := strings.TrimSpace(other.LogDir); v != "" {
		c.LogDir = v
	}
	if v := strings.TrimSpace(other.Pattern); v != "" {
		c.Pattern = v
	}
	if v := strings.TrimSpace(other.LogLevel); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(other.LogFile); v != "" {
		c.LogFile = v
	}
}

// applyEnvOverrides applies RECENTLOG_* environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv(EnvLogDir)); v != "" {
		c.LogDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPattern)); v != "" {
		c.Pattern = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
}

// normalize expands ~ in path fields.
func (c *Config) normalize() error {
	for _, field := range []*string{&c.LogDir, &c.LogFile} {
		if *field == "" {
			continue
		}
		expanded, err := homedir.Expand(*field)
		if err != nil {
			return errors.ConfigError(fmt.Sprintf("expand path %s", *field), err)
		}
		*field = expanded
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	return nil
}

// Validate returns an error if the configuration cannot be used.
func (c *Config) Validate() error {
	if err := ValidatePattern(c.Pattern); err != nil {
		return err
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return errors.ConfigError(fmt.Sprintf("log_level must be 'debug', 'info', 'warn', or 'error', got %s", c.LogLevel), nil)
	}
	return nil
}

// ValidatePattern checks that pattern is a well-formed glob naming files in
// a single directory.
func ValidatePattern(pattern string) error {
	if strings.TrimSpace(pattern) == "" {
		return errors.ConfigError("pattern must not be empty", nil)
	}
	if strings.ContainsAny(pattern, `/\`) {
		return errors.ConfigError(fmt.Sprintf("pattern %q must not contain a path separator (use log_dir)", pattern), nil)
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return errors.ConfigError(fmt.Sprintf("invalid pattern %q", pattern), err)
	}
	return nil
}

// fileExists checks if a regular file exists.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
