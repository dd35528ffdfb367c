package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/algeblast/internal/app"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	c, err := loadCurriculum("")
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		Curriculum:    c,
		Advisor:       newAdvisor(ctx, c, eventRepo),
		EventRepo:     eventRepo,
		Logger:        logger(),
		FeedbackDelay: env.cfg.FeedbackDelay(),
		LaunchDelay:   env.cfg.LaunchDelay(),
	}

	if err := app.Run(opts); err != nil {
		return fmt.Errorf("run app: %w", err)
	}
	return nil
}
