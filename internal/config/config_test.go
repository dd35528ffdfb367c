package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1500*time.Millisecond, cfg.FeedbackDelay())
	assert.Equal(t, 3500*time.Millisecond, cfg.LaunchDelay())
	assert.Equal(t, 5*time.Second, cfg.HintTimeout())
	assert.True(t, cfg.Hints.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeFile(t, `
timing:
  launch_delay: 1s
hints:
  enabled: false
llm:
  provider: openai
  model: gpt-4.1-mini
bank:
  path: /tmp/bank.yaml
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.LaunchDelay())
	assert.Equal(t, DefaultFeedbackDelay, cfg.FeedbackDelay(), "unset keys keep defaults")
	assert.False(t, cfg.Hints.Enabled)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4.1-mini", cfg.LLM.Model)
	assert.Equal(t, "/tmp/bank.yaml", cfg.Bank.Path)
}

func TestLoadMalformed(t *testing.T) {
	path := writeFile(t, "timing: [unclosed")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ALGEBLAST_DB", "/tmp/events.db")
	t.Setenv("ALGEBLAST_LOG_LEVEL", "debug")
	t.Setenv("ALGEBLAST_FEEDBACK_DELAY", "0s")
	t.Setenv("ALGEBLAST_HINTS", "off")
	t.Setenv("ALGEBLAST_LLM_MODEL", "gemini-2.5-pro")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "/tmp/events.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, time.Duration(0), cfg.FeedbackDelay())
	assert.False(t, cfg.Hints.Enabled)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.Model)
	assert.NoError(t, cfg.Validate())
}

func TestValidateCollectsProblems(t *testing.T) {
	cfg := Default()
	cfg.Timing.FeedbackDelay = "-1s"
	cfg.Timing.LaunchDelay = "soon"
	cfg.Hints.Timeout = "0s"
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "timing.feedback_delay must not be negative")
	assert.Contains(t, msg, "timing.launch_delay")
	assert.Contains(t, msg, "hints.timeout must be positive")
	assert.Contains(t, msg, `unknown level "loud"`)
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 2*time.Second, Duration("2s", time.Minute))
	assert.Equal(t, time.Minute, Duration("", time.Minute))
	assert.Equal(t, time.Minute, Duration("bogus", time.Minute))
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("ALGEBLAST_CONFIG", "/etc/algeblast.yaml")
	assert.Equal(t, "/etc/algeblast.yaml", DefaultPath())

	t.Setenv("ALGEBLAST_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "algeblast", "config.yaml"), DefaultPath())
}
