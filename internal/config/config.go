// Package config loads the optional YAML settings file and applies
// ALGEBLAST_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration.
type Config struct {
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
	Bank struct {
		Path string `yaml:"path"`
	} `yaml:"bank"`
	Timing struct {
		FeedbackDelay string `yaml:"feedback_delay"`
		LaunchDelay   string `yaml:"launch_delay"`
	} `yaml:"timing"`
	Hints struct {
		Enabled bool   `yaml:"enabled"`
		Timeout string `yaml:"timeout"`
	} `yaml:"hints"`
	LLM struct {
		Provider string `yaml:"provider"`
		Model    string `yaml:"model"`
	} `yaml:"llm"`
}

// Defaults for the timing and hint settings.
const (
	DefaultFeedbackDelay = 1500 * time.Millisecond
	DefaultLaunchDelay   = 3500 * time.Millisecond
	DefaultHintTimeout   = 5 * time.Second
)

// Default returns the configuration used when no file is present.
func Default() Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.Timing.FeedbackDelay = DefaultFeedbackDelay.String()
	cfg.Timing.LaunchDelay = DefaultLaunchDelay.String()
	cfg.Hints.Enabled = true
	cfg.Hints.Timeout = DefaultHintTimeout.String()
	return cfg
}

// Load reads YAML config from path on top of the defaults. A missing file
// is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath resolves the config file path:
// 1. ALGEBLAST_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/algeblast/config.yaml
// 3. ~/.config/algeblast/config.yaml
func DefaultPath() string {
	if p := os.Getenv("ALGEBLAST_CONFIG"); p != "" {
		return p
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "algeblast", "config.yaml")
}

// ApplyEnv overrides fields from ALGEBLAST_* environment variables.
func (c *Config) ApplyEnv() {
	set := func(dst *string, name string) {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}
	set(&c.Database.Path, "ALGEBLAST_DB")
	set(&c.Log.Level, "ALGEBLAST_LOG_LEVEL")
	set(&c.Log.File, "ALGEBLAST_LOG_FILE")
	set(&c.Bank.Path, "ALGEBLAST_BANK")
	set(&c.Timing.FeedbackDelay, "ALGEBLAST_FEEDBACK_DELAY")
	set(&c.Timing.LaunchDelay, "ALGEBLAST_LAUNCH_DELAY")
	set(&c.Hints.Timeout, "ALGEBLAST_HINT_TIMEOUT")
	set(&c.LLM.Provider, "ALGEBLAST_LLM_PROVIDER")
	set(&c.LLM.Model, "ALGEBLAST_LLM_MODEL")

	if v := os.Getenv("ALGEBLAST_HINTS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Hints.Enabled = b
		} else if strings.EqualFold(v, "off") {
			c.Hints.Enabled = false
		}
	}
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []string

	check := func(name, raw string, allowZero bool) {
		if raw == "" {
			return
		}
		d, err := time.ParseDuration(raw)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("%s: %v", name, err))
		case d < 0:
			errs = append(errs, fmt.Sprintf("%s must not be negative", name))
		case d == 0 && !allowZero:
			errs = append(errs, fmt.Sprintf("%s must be positive", name))
		}
	}
	check("timing.feedback_delay", c.Timing.FeedbackDelay, true)
	check("timing.launch_delay", c.Timing.LaunchDelay, true)
	check("hints.timeout", c.Hints.Timeout, false)

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level: unknown level %q", c.Log.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// FeedbackDelay is the pause between a verified answer and the next question.
func (c Config) FeedbackDelay() time.Duration {
	return Duration(c.Timing.FeedbackDelay, DefaultFeedbackDelay)
}

// LaunchDelay is the length of the launch sequence.
func (c Config) LaunchDelay() time.Duration {
	return Duration(c.Timing.LaunchDelay, DefaultLaunchDelay)
}

// HintTimeout bounds a single hint request.
func (c Config) HintTimeout() time.Duration {
	return Duration(c.Hints.Timeout, DefaultHintTimeout)
}

// Duration parses a duration string or returns the fallback if empty or
// malformed.
func Duration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
