// Package config loads tarefas settings from a YAML file and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

const appDir = ".tarefas"

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Session  SessionConfig  `yaml:"session"`
	Theme    ColorScheme    `yaml:"theme"`
}

// DatabaseConfig locates the task database
type DatabaseConfig struct {
	Path string `yaml:"path" env:"TAREFAS_DB_PATH" env-description:"path of the SQLite task database"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level" env:"TAREFAS_LOG_LEVEL" env-description:"debug, info, warn or error"`
	Path  string `yaml:"path" env:"TAREFAS_LOG_PATH" env-description:"log file location"`
}

// SessionConfig tunes the interactive menu
type SessionConfig struct {
	// MaxAttempts bounds re-prompting on malformed input; 0 means unbounded
	MaxAttempts   int    `yaml:"max_attempts" env:"TAREFAS_MAX_ATTEMPTS" env-description:"re-prompt limit for invalid input (0 = unbounded)"`
	MarkdownStyle string `yaml:"markdown_style" env:"TAREFAS_MARKDOWN_STYLE" env-description:"glamour style for task details (auto, dark, light, notty, ascii)"`
}

// Default returns a config with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the config file at path (or the default location when path is
// empty) and then applies environment overrides.
// A missing file at the default location is not an error: defaults plus
// environment are used. A missing file named explicitly is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := getConfigPath()
		if err == nil {
			path = p
		}
	}

	var cfg Config
	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, err
			}
			return cfg.finish()
		case !errors.Is(err, os.ErrNotExist):
			return nil, err
		case explicit:
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return cfg.finish()
}

// finish applies defaults and rejects values no component can use
func (c *Config) finish() (*Config, error) {
	c.applyDefaults()
	if !ValidMarkdownStyle(c.Session.MarkdownStyle) {
		return nil, fmt.Errorf("session.markdown_style: unknown style %q (want one of %s)",
			c.Session.MarkdownStyle, strings.Join(MarkdownStyles, ", "))
	}
	return c, nil
}

// MarkdownStyles lists the glamour styles accepted for task details
var MarkdownStyles = []string{"auto", "dark", "light", "notty", "ascii"}

// ValidMarkdownStyle reports whether style is one of MarkdownStyles
func ValidMarkdownStyle(style string) bool {
	for _, s := range MarkdownStyles {
		if s == style {
			return true
		}
	}
	return false
}

// Save writes the config as YAML to path, or to the default location when path is empty
func (c *Config) Save(path string) (string, error) {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return "", err
		}
		path = p
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	data, err := c.Marshal()
	if err != nil {
		return "", err
	}

	return path, os.WriteFile(path, data, 0o644)
}

// Marshal renders the config as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// EnvDescription lists the environment variables understood by Load
func EnvDescription() (string, error) {
	var cfg Config
	header := "Environment variables:"
	return cleanenv.GetDescription(&cfg, &header)
}

// Path returns the config file location used when no explicit path is given
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tarefas", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tarefas", "config.yaml"), nil
}

// dataDir is where the database and logs live by default
func dataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return appDir
	}
	return filepath.Join(homeDir, appDir)
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(dataDir(), "tarefas.db")
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Path == "" {
		c.Log.Path = filepath.Join(dataDir(), "logs", "tarefas.log")
	}
	if c.Session.MaxAttempts < 0 {
		c.Session.MaxAttempts = 0
	}
	if c.Session.MarkdownStyle == "" {
		c.Session.MarkdownStyle = "auto"
	}
	c.Theme.ApplyDefaults()
}
