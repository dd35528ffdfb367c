// Package logging builds the application's zap logger. The TUI owns the
// terminal, so logs go to a file unless stderr is asked for explicitly.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Stderr as Options.File sends logs to standard error.
const Stderr = "-"

// Options configures New.
type Options struct {
	Level       string // debug, info, warn, error; default info
	File        string // log file path, Stderr, or empty for DefaultPath
	Development bool   // human-readable console encoding
}

// New builds a logger from opts. The parent directory of the log file is
// created if needed.
func New(opts Options) (*zap.Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var cfg zap.Config
	if opts.Development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Sampling = nil
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	out, err := resolveOutput(opts.File)
	if err != nil {
		return nil, err
	}
	cfg.OutputPaths = []string{out}
	cfg.ErrorOutputPaths = []string{out}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.With(zap.Int("pid", os.Getpid())), nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}

// DefaultPath resolves the log file path:
// 1. $XDG_STATE_HOME/algeblast/algeblast.log
// 2. ~/.local/state/algeblast/algeblast.log
func DefaultPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "algeblast", "algeblast.log"), nil
}

func resolveOutput(file string) (string, error) {
	switch file {
	case Stderr:
		return "stderr", nil
	case "":
		p, err := DefaultPath()
		if err != nil {
			return "", err
		}
		file = p
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return "", fmt.Errorf("create log dir: %w", err)
	}
	return file, nil
}

func parseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return l, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}
