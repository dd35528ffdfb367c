package flight

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/algeblast/internal/hint"
	"github.com/abhisek/algeblast/internal/mission"
	"github.com/abhisek/algeblast/internal/ui/components"
	"github.com/abhisek/algeblast/internal/ui/theme"
)

const (
	rocketPanelWidth = 22
	gaugeRows        = 8
	gaugeCols        = 6
)

// Feedback texts.
const (
	verifiedText   = "Calculation verified! Fuel cells charging..."
	wrongText      = "Incorrect calculation. Check your inverse operations."
	invalidText    = "Enter a numeric value."
	contactingText = "Contacting Flight Computer..."
	analysisText   = "Request Computer Analysis"
	blastOffText   = "BLAST OFF!"
)

func (s *FlightScreen) View(width, height int) string {
	if s.confirm != nil {
		return s.renderAbortConfirm(width, height)
	}
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}

	left := s.renderRocketPanel()
	mainWidth := max(width-rocketPanelWidth-6, 30)
	right := s.renderMissionPanel(mainWidth)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(rocketPanelWidth).Render(left),
		"  ",
		right,
	)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

// renderRocketPanel renders the fuel tank, the rocket and its exhaust.
func (s *FlightScreen) renderRocketPanel() string {
	var b strings.Builder
	b.WriteString(components.NewFuelGauge(s.state.FuelLevel, gaugeRows, gaugeCols).View())
	b.WriteString("\n\n")

	rocket := components.Rocket{
		Flame: components.FlameFor(s.state.FuelLevel, s.state.Launched),
		Frame: s.frame,
		Color: s.stage.Color,
	}
	b.WriteString(rocket.View())

	if s.state.Launched {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.FlameHot).
			Bold(true).
			Render(blastOffText))
	}
	return b.String()
}

// renderMissionPanel renders the HUD, the equation and the answer tools.
func (s *FlightScreen) renderMissionPanel(width int) string {
	var b strings.Builder
	stageColor := theme.StageColor(s.stage.Color)

	b.WriteString(lipgloss.NewStyle().Foreground(stageColor).Bold(true).Render(s.stage.Title))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Mission Protocol Active"))
	b.WriteString("   ")
	b.WriteString(theme.Label.Render(fmt.Sprintf("FUEL STATUS %d%%", mission.DisplayFuel(s.state))))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width)))
	b.WriteString("\n")

	if s.banner != "" {
		b.WriteString(theme.Correct.Render("✓ " + s.banner))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Problem display.
	problem := theme.Hint.Render(s.question.Prompt) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.question.Equation)
	b.WriteString(theme.Panel.
		BorderForeground(stageColor).
		Width(width).
		Align(lipgloss.Center).
		Render(problem))
	b.WriteString("\n\n")

	// Answer line.
	engage := components.NewButton("ENGAGE", !s.verifying && !s.state.Launched && s.input.Value() != "", nil)
	b.WriteString(s.input.View())
	b.WriteString("  ")
	b.WriteString(engage.View())
	b.WriteString("\n\n")

	if fb := s.renderFeedback(); fb != "" {
		b.WriteString(fb)
		b.WriteString("\n\n")
	}

	// Tools.
	b.WriteString(s.renderTools())
	b.WriteString("\n")

	if s.stepsShown > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Tactical Analysis"))
		b.WriteString("\n")
		for i, step := range s.question.Steps[:s.stepsShown] {
			b.WriteString(theme.Body.Render(fmt.Sprintf("  %d. %s", i+1, step)))
			b.WriteString("\n")
		}
	}

	if sp := s.scratch.View(); sp != "" {
		b.WriteString("\n")
		b.WriteString(sp)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Render(
		theme.Hint.Render("MISSION TIP: " + s.stage.Description)))
	b.WriteString("\n")
	b.WriteString(theme.Label.Render("COMMANDER: " + s.state.Commander))

	return b.String()
}

func (s *FlightScreen) renderFeedback() string {
	var lines []string
	switch s.feedback {
	case feedbackVerified:
		lines = append(lines, theme.Correct.Render("✓ "+verifiedText))
	case feedbackWrong:
		lines = append(lines, theme.Incorrect.Render("✗ "+wrongText))
	case feedbackInvalid:
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Warning).Render(invalidText))
	}

	switch {
	case s.hintPending:
		lines = append(lines, theme.Computer.Render("◌ "+contactingText))
	case s.hint != nil:
		lines = append(lines, renderHint(*s.hint))
	case s.feedback == feedbackWrong && s.canRequestHint() && s.misses < autoHintMisses:
		lines = append(lines, theme.Hint.Render(analysisText+" (ctrl+a)"))
	}
	return strings.Join(lines, "\n")
}

func renderHint(res hint.Result) string {
	label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("FLIGHT COMPUTER: ")
	return label + theme.Body.Render(res.Text)
}

func (s *FlightScreen) renderTools() string {
	work := "Show Work"
	if s.scratch.Visible {
		work = "Hide Mission Log"
	}
	reveal := fmt.Sprintf("Reveal Step (%d/%d)", s.stepsShown, len(s.question.Steps))

	revealStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if s.stepsShown >= len(s.question.Steps) {
		revealStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	}
	return theme.Hint.Render("[ctrl+w] ") + theme.Body.Render(work) +
		"    " +
		theme.Hint.Render("[ctrl+r] ") + revealStyle.Render(reveal)
}

// renderAbortConfirm renders the abort prompt.
func (s *FlightScreen) renderAbortConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Abort mission?"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Fuel will be lost and the mission restarts from the launch pad."))
	b.WriteString("\n\n")
	b.WriteString(s.confirm.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(b.String()))
}

// renderError renders an unrecoverable mission error.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Mission error: %s\n\n  Press Esc to abort.", errMsg))
}
