package intro

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/algeblast/internal/curriculum"
	"github.com/abhisek/algeblast/internal/mission"
	"github.com/abhisek/algeblast/internal/router"
	"github.com/abhisek/algeblast/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct {
	state mission.State
}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "flight" }
func (s *stubScreen) Title() string                           { return "Flight" }

func newTestIntro(t *testing.T, opts ...Option) (*IntroScreen, *int) {
	t.Helper()
	engine, err := mission.NewEngine(curriculum.Default())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	calls := 0
	factory := func(s mission.State) screen.Screen {
		calls++
		return &stubScreen{state: s}
	}
	return New(engine, nil, factory, opts...), &calls
}

func sendTicks(s *IntroScreen, n int) {
	for i := 0; i < n; i++ {
		s.Update(tickMsg(time.Now()))
	}
}

func typeText(s *IntroScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestPhaseTransitions(t *testing.T) {
	s, _ := newTestIntro(t)

	view := s.View(60, 30)
	if strings.Contains(view, "ALGE-BLAST OFF") {
		t.Error("banner should not be visible at start")
	}

	sendTicks(s, 5)
	if s.elapsed != phase1End {
		t.Errorf("expected elapsed %v, got %v", phase1End, s.elapsed)
	}

	sendTicks(s, 10)
	view = s.View(60, 30)
	if !strings.Contains(view, "ALGE-BLAST OFF") {
		t.Error("banner should be visible after phase 2")
	}
	if !strings.Contains(view, "Mission Control: 6th Grade") {
		t.Error("tagline should be visible after phase 2")
	}
	if strings.Contains(view, "Commander Identification") {
		t.Error("form should not be visible before the animation ends")
	}

	sendTicks(s, 10)
	if !strings.Contains(s.View(60, 30), "Commander Identification") {
		t.Error("form should be visible after the animation")
	}
}

func TestElapsedCapped(t *testing.T) {
	s, _ := newTestIntro(t)
	sendTicks(s, 60)
	if s.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, s.elapsed)
	}
}

func TestKeypressDuringAnimationSkips(t *testing.T) {
	s, calls := newTestIntro(t)
	sendTicks(s, 3)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'N', Text: "N"})
	if cmd != nil {
		t.Error("skipping the animation should not produce a command")
	}
	if !s.animationDone() {
		t.Error("animation should be finished after a key press")
	}
	if s.input.Value() != "" {
		t.Errorf("skip key should not be typed, got %q", s.input.Value())
	}
	if *calls != 0 {
		t.Errorf("factory should not be called, got %d", *calls)
	}
}

func TestEmptyNameStaysInIntro(t *testing.T) {
	s, calls := newTestIntro(t, WithSkipAnimation())
	typeText(s, "   ")

	_, cmd := s.Update(enter())
	if cmd != nil {
		t.Error("blank name should not start a mission")
	}
	if *calls != 0 {
		t.Errorf("factory should not be called, got %d", *calls)
	}
	if s.state.Phase != mission.PhaseIntro {
		t.Errorf("expected intro phase, got %s", s.state.Phase)
	}
	if !strings.Contains(s.View(100, 30), "Commander identification required.") {
		t.Error("expected inline error for blank name")
	}
}

func TestStartMissionReplacesScreen(t *testing.T) {
	s, calls := newTestIntro(t, WithSkipAnimation())
	typeText(s, "Nova")

	_, cmd := s.Update(enter())
	if cmd == nil {
		t.Fatal("expected a command after entering a name")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	stub, ok := msg.Screen.(*stubScreen)
	if !ok {
		t.Fatalf("expected flight stub, got %T", msg.Screen)
	}
	if stub.state.Commander != "Nova" || stub.state.Phase != mission.PhasePlaying {
		t.Errorf("unexpected mission state %+v", stub.state)
	}
	if *calls != 1 {
		t.Errorf("factory should be called once, got %d", *calls)
	}

	// A second enter does not start another mission.
	if _, cmd := s.Update(enter()); cmd != nil {
		t.Error("second enter should not produce a command")
	}
	if *calls != 1 {
		t.Errorf("factory should be called exactly once, got %d", *calls)
	}
}

func TestNameLimitedToMaxLength(t *testing.T) {
	s, _ := newTestIntro(t, WithSkipAnimation())
	typeText(s, "Commander Zarquon The Great")
	if got := len([]rune(s.input.Value())); got != mission.MaxCommanderLen {
		t.Errorf("expected %d characters, got %d", mission.MaxCommanderLen, got)
	}
}

func TestTitle(t *testing.T) {
	s, _ := newTestIntro(t)
	if s.Title() != "Mission Control" {
		t.Errorf("unexpected title %q", s.Title())
	}
}
