package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/algeblast/internal/config"
	"github.com/abhisek/algeblast/internal/curriculum"
	"github.com/abhisek/algeblast/internal/hint"
	"github.com/abhisek/algeblast/internal/llm"
	"github.com/abhisek/algeblast/internal/logging"
	"github.com/abhisek/algeblast/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "algeblast",
	Short: "Rocket-themed algebra practice",
	Long:  "Alge-Blast Off: solve 6th grade equations to fuel a rocket and launch it into orbit.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if env.logger != nil {
			_ = env.logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !interactive() {
			fmt.Fprintln(cmd.ErrOrStderr(), "Not a terminal; starting line mode.")
			return runDrill(cmd, drillFlags{})
		}
		return runApp(cmd)
	},
	SilenceUsage: true,
}

// env carries what setup resolved for the running command.
var env struct {
	cfg    config.Config
	logger *zap.Logger
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides ALGEBLAST_DB env var)")
	pf.String("config", "", "Path to config file (overrides ALGEBLAST_CONFIG env var)")
	pf.String("log-file", "", "Log file path, or - for stderr")
	pf.Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and builds the logger.
func setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()

	if f, _ := cmd.Flags().GetString("log-file"); f != "" {
		cfg.Log.File = f
	}
	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:       cfg.Log.Level,
		File:        cfg.Log.File,
		Development: debug,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	env.cfg = cfg
	env.logger = logger.With(zap.String("command", cmd.Name()))
	return nil
}

func interactive() bool {
	in, out := os.Stdin.Fd(), os.Stdout.Fd()
	return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
		(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
}

// dbPath returns the database path using --db flag (highest priority),
// then the config file or ALGEBLAST_DB, then the default XDG path. It does
// not touch the filesystem.
func dbPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, nil
	}
	if p := env.cfg.Database.Path; p != "" {
		return p, nil
	}
	return store.DefaultDBPath()
}

// openStore opens the event log, creating its directory on first use.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, err := dbPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	if err := store.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// loadCurriculum returns the bank at path, the configured bank, or the
// built-in one.
func loadCurriculum(path string) (*curriculum.Curriculum, error) {
	if path == "" {
		path = env.cfg.Bank.Path
	}
	if path == "" {
		return curriculum.Default(), nil
	}
	c, err := curriculum.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}
	return c, nil
}

// newAdvisor builds the hint advisor. Without a configured provider the
// advisor answers with the offline text; when hints are disabled it is nil.
func newAdvisor(ctx context.Context, c *curriculum.Curriculum, repo store.EventRepo) hint.Advisor {
	if !env.cfg.Hints.Enabled {
		return nil
	}
	log := logger()

	opts := []hint.Option{
		hint.WithTimeout(env.cfg.HintTimeout()),
		hint.WithLogger(log),
		hint.WithStaticHints(c),
	}
	if repo != nil {
		opts = append(opts, hint.WithEventRepo(repo))
	}

	provider, err := newProvider(ctx, repo)
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		log.Info("hint provider not configured", zap.Error(err))
		return hint.New(nil, opts...)
	case err != nil:
		log.Warn("hint provider unavailable", zap.Error(err))
		return hint.New(nil, opts...)
	}
	return hint.New(provider, opts...)
}

func newProvider(ctx context.Context, repo store.EventRepo) (llm.Provider, error) {
	return llm.NewProviderFromEnv(ctx, env.cfg.LLM.Provider, env.cfg.LLM.Model, repo, logger())
}

func logger() *zap.Logger {
	if env.logger == nil {
		return logging.Nop()
	}
	return env.logger
}
