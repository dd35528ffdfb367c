package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent missions from the event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		missions, err := st.EventRepo().RecentMissions(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query missions: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(missions) == 0 {
			fmt.Fprintln(out, "No missions flown yet.")
			return nil
		}

		// Header.
		fmt.Fprintf(out, "%-8s  %-15s  %-16s  %-14s  %5s  %7s  %8s  %5s\n",
			"Mission", "Commander", "Started", "Outcome", "Fuel", "Answers", "Accuracy", "Hints")
		fmt.Fprintln(out, strings.Repeat("─", 95))

		for _, m := range missions {
			accuracy := "-"
			if m.Answers > 0 {
				accuracy = fmt.Sprintf("%d%%", m.CorrectAnswers*100/m.Answers)
			}
			fmt.Fprintf(out, "%-8s  %-15s  %-16s  %-14s  %4.0f%%  %7d  %8s  %5d\n",
				truncate(m.MissionID, 8),
				truncate(m.Commander, 15),
				m.StartedAt.Local().Format("2006-01-02 15:04"),
				m.Outcome,
				m.FuelLevel,
				m.Answers,
				accuracy,
				m.Hints,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 10, "Number of missions to show")
}
