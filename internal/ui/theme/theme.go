package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: deep space with mission-control accents
var (
	Primary   = lipgloss.Color("#60A5FA") // Sky Blue
	Secondary = lipgloss.Color("#A78BFA") // Nebula Violet
	Accent    = lipgloss.Color("#FACC15") // Beacon Yellow
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#F97316") // Orange
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#020617") // Deep Space
	BgCard    = lipgloss.Color("#0F172A") // Hull Navy
	Border    = lipgloss.Color("#334155") // Slate

	FlameHot  = lipgloss.Color("#FB923C") // Bright exhaust
	FlameCore = lipgloss.Color("#FDE047") // Exhaust core
	FlameDim  = lipgloss.Color("#7C2D12") // Idle glow
)

// FullFuelThreshold is the fuel percentage above which the gauge turns green.
const FullFuelThreshold = 80

// FuelColor returns the gauge colour for a fuel level. The level is compared
// unrounded, so 80.4 is already full.
func FuelColor(fuel float64) color.Color {
	if fuel > FullFuelThreshold {
		return Success
	}
	return Warning
}

// StageColor parses a stage's hex colour, falling back to Primary.
func StageColor(hex string) color.Color {
	if hex == "" {
		return Primary
	}
	return lipgloss.Color(hex)
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Bold(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Computer = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)
)

// Components
var (
	GaugeEmpty = lipgloss.NewStyle().
			Foreground(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
