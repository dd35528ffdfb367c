package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/algeblast/internal/curriculum"
)

var checkCmd = &cobra.Command{
	Use:   "check <bank.yaml>",
	Short: "Validate a question bank file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := curriculum.LoadFile(args[0])
		if err != nil {
			var verr *curriculum.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d problem(s)\n", args[0], len(verr.Problems))
				for _, p := range verr.Problems {
					fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", p)
				}
				return fmt.Errorf("%s is not a valid bank", args[0])
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%d stages, %d questions)\n",
			args[0], c.StageCount(), c.TotalQuestions())
		return nil
	},
}
