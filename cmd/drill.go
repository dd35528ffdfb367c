package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/algeblast/internal/curriculum"
	"github.com/abhisek/algeblast/internal/hint"
	"github.com/abhisek/algeblast/internal/journal"
	"github.com/abhisek/algeblast/internal/mission"
	"github.com/abhisek/algeblast/internal/store"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Fly a mission in line mode (no TUI)",
	Long: `Answer the mission's equations one line at a time on stdin/stdout.

Type a number to answer, ? to reveal the next solution step, or "abort" to
end the mission. After two misses on a question the flight computer sends a
hint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var f drillFlags
		f.name, _ = cmd.Flags().GetString("name")
		f.bank, _ = cmd.Flags().GetString("bank")
		f.noHints, _ = cmd.Flags().GetBool("no-hints")
		return runDrill(cmd, f)
	},
}

func init() {
	drillCmd.Flags().String("name", "", "Commander name (prompted if empty)")
	drillCmd.Flags().String("bank", "", "Question bank YAML file")
	drillCmd.Flags().Bool("no-hints", false, "Disable flight computer hints")
}

type drillFlags struct {
	name    string
	bank    string
	noHints bool
}

func runDrill(cmd *cobra.Command, f drillFlags) error {
	ctx := cmd.Context()
	log := logger()

	c, err := loadCurriculum(f.bank)
	if err != nil {
		return err
	}
	engine, err := mission.NewEngine(c)
	if err != nil {
		return err
	}

	var repo store.EventRepo
	if st, err := openStore(cmd); err != nil {
		log.Warn("event log unavailable", zap.Error(err))
	} else {
		defer st.Close()
		repo = st.EventRepo()
	}

	d := &drill{
		engine:  engine,
		journal: journal.New(repo, log),
		in:      bufio.NewScanner(cmd.InOrStdin()),
		out:     cmd.OutOrStdout(),
	}
	if !f.noHints {
		d.advisor = newAdvisor(ctx, c, repo)
	}
	return d.run(ctx, f.name)
}

// errInputClosed is returned when stdin ends before a commander is named.
var errInputClosed = errors.New("input closed")

// drill runs one mission over a line-oriented reader and writer. Deferred
// transitions are applied immediately.
type drill struct {
	engine  *mission.Engine
	advisor hint.Advisor
	journal *journal.Journal
	in      *bufio.Scanner
	out     io.Writer
}

func (d *drill) printf(format string, args ...any) {
	fmt.Fprintf(d.out, format, args...)
}

func (d *drill) readLine() (string, bool) {
	if !d.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(d.in.Text()), true
}

func (d *drill) run(ctx context.Context, name string) error {
	d.printf("ALGE-BLAST OFF\nMission Control: 6th Grade\n\n")

	state, err := d.start(ctx, name)
	if err != nil {
		return err
	}

	lastStage := -1
	for {
		q, err := d.engine.CurrentQuestion(state)
		if err != nil {
			return err
		}
		if state.StageIndex != lastStage {
			lastStage = state.StageIndex
			stage, _ := d.engine.CurrentStage(state)
			d.printf("== %s ==\nMISSION TIP: %s\n\n", stage.Title, stage.Description)
		}

		next, done, err := d.ask(ctx, state, q)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		state = next
		if state.Phase == mission.PhaseCompleted {
			d.printCompletion(state)
			return nil
		}
	}
}

// start collects the commander name and begins the mission.
func (d *drill) start(ctx context.Context, name string) (mission.State, error) {
	state := d.engine.Initial()
	for {
		if strings.TrimSpace(name) == "" {
			d.printf("Commander name: ")
			line, ok := d.readLine()
			if !ok {
				d.printf("\n")
				return state, errInputClosed
			}
			name = line
		}
		next, err := d.engine.StartMission(state, name)
		if errors.Is(err, mission.ErrEmptyCommander) {
			d.printf("Commander identification required.\n")
			name = ""
			continue
		}
		if err != nil {
			return state, err
		}
		d.journal.Started(ctx, next)
		d.printf("Welcome aboard, Commander %s.\n\n", next.Commander)
		return next, nil
	}
}

// ask works one question until it is answered or the mission ends. done
// reports an abort.
func (d *drill) ask(ctx context.Context, state mission.State, q curriculum.Question) (mission.State, bool, error) {
	d.printf("%s\n  %s\n", q.Prompt, q.Equation)

	var attempts, misses, shown int
	for {
		d.printf("> ")
		line, ok := d.readLine()
		if !ok || strings.EqualFold(line, "abort") {
			d.printf("\nMission aborted.\n")
			d.journal.Aborted(ctx, state, q.ID)
			return d.engine.Restart(), true, nil
		}

		if line == "?" {
			if shown < len(q.Steps) {
				shown++
				d.printf("  Step %d/%d: %s\n", shown, len(q.Steps), q.Steps[shown-1])
			} else {
				d.printf("  All steps revealed.\n")
			}
			continue
		}

		value, err := mission.ParseAnswer(line)
		if err != nil {
			d.printf("Enter a numeric value.\n")
			continue
		}
		attempts++
		correct := mission.IsCorrect(q, value)
		d.journal.Answered(ctx, state, q, line, correct, attempts)

		if !correct {
			misses++
			d.printf("✗ Incorrect calculation. Check your inverse operations.\n")
			if misses >= 2 && d.advisor != nil {
				res := d.advisor.Hint(ctx, hint.Request{
					MissionID:  state.MissionID.String(),
					QuestionID: q.ID,
					Equation:   q.Equation,
					Guess:      line,
					Answer:     q.Answer,
				})
				d.printf("FLIGHT COMPUTER: %s\n", res.Text)
			}
			continue
		}

		d.printf("✓ Calculation verified! Fuel cells charging...\n")
		return d.advance(ctx, state)
	}
}

func (d *drill) advance(ctx context.Context, state mission.State) (mission.State, bool, error) {
	next, t, err := d.engine.RecordCorrectAnswer(state)
	if err != nil {
		return state, false, err
	}
	d.journal.Transitioned(ctx, state, next, t)
	d.printf("FUEL STATUS %d%%\n\n", mission.DisplayFuel(next))

	switch t {
	case mission.TransitionStageComplete:
		if stage, ok := d.engine.Curriculum().Stage(state.StageIndex); ok {
			d.printf("✓ %s complete\n\n", stage.Title)
		}
	case mission.TransitionLaunch:
		d.printf("BLAST OFF!\n\n")
		done, err := d.engine.CompleteLaunch(next, next.MissionID)
		if err != nil {
			return next, false, err
		}
		d.journal.Completed(ctx, done)
		return done, false, nil
	}
	return next, false, nil
}

func (d *drill) printCompletion(state mission.State) {
	d.printf("MISSION ACCOMPLISHED!\n")
	d.printf("Commander %s has successfully piloted the Algebra-1 Rocket into orbit.\n\n", state.Commander)
	d.printf("You have mastered:\n")
	for _, s := range d.engine.Curriculum().Stages() {
		d.printf("  ✓ %s\n", s.Mastery)
	}
	d.printf("\nREADY FOR EXAM LAUNCH\n")
}
