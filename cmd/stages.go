package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/algeblast/internal/curriculum"
	"github.com/abhisek/algeblast/internal/mission"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List the mission stages and their questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, _ := cmd.Flags().GetString("bank")
		verbose, _ := cmd.Flags().GetBool("verbose")
		export, _ := cmd.Flags().GetBool("export")

		c, err := loadCurriculum(bank)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if export {
			data, err := curriculum.Marshal(c)
			if err != nil {
				return fmt.Errorf("encode bank: %w", err)
			}
			_, err = out.Write(data)
			return err
		}

		// Header.
		fmt.Fprintf(out, "%-3s  %-16s  %-36s  %-28s  %s\n",
			"#", "ID", "Title", "Mastery", "Questions")
		fmt.Fprintln(out, strings.Repeat("─", 100))

		for i, s := range c.Stages() {
			questions := c.StageQuestions(i)
			fmt.Fprintf(out, "%-3d  %-16s  %-36s  %-28s  %d\n",
				i+1, s.ID, truncate(s.Title, 36), truncate(s.Mastery, 28), len(questions))
			if !verbose {
				continue
			}
			for _, q := range questions {
				fmt.Fprintf(out, "       %-5s %-24s = %s\n", q.ID, q.Equation, mission.FormatAnswer(q.Answer))
				for j, step := range q.Steps {
					fmt.Fprintf(out, "             %d. %s\n", j+1, step)
				}
			}
		}

		fmt.Fprintf(out, "\n%d stages, %d questions\n", c.StageCount(), c.TotalQuestions())
		return nil
	},
}

func init() {
	stagesCmd.Flags().String("bank", "", "Question bank YAML file")
	stagesCmd.Flags().BoolP("verbose", "v", false, "Also print questions, answers and steps")
	stagesCmd.Flags().Bool("export", false, "Print the bank as a YAML document")
}
