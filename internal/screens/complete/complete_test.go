package complete

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/algeblast/internal/curriculum"
	"github.com/abhisek/algeblast/internal/mission"
	"github.com/abhisek/algeblast/internal/router"
	"github.com/abhisek/algeblast/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "intro" }
func (s *stubScreen) Title() string                           { return "intro" }

// completedMission plays the default bank through to orbit.
func completedMission(t *testing.T) (*mission.Engine, mission.State) {
	t.Helper()
	e, err := mission.NewEngine(curriculum.Default())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	s, err := e.StartMission(e.Initial(), "Nova")
	if err != nil {
		t.Fatalf("StartMission: %v", err)
	}
	for !s.Launched {
		if s, _, err = e.RecordCorrectAnswer(s); err != nil {
			t.Fatalf("RecordCorrectAnswer: %v", err)
		}
	}
	s, err = e.CompleteLaunch(s, s.MissionID)
	if err != nil {
		t.Fatalf("CompleteLaunch: %v", err)
	}
	return e, s
}

func TestCompleteScreen_Title(t *testing.T) {
	e, st := completedMission(t)
	s := New(e, st, nil)
	if s.Title() != "Mission Accomplished" {
		t.Errorf("Title = %q, want %q", s.Title(), "Mission Accomplished")
	}
	if s.Fuel() != 100 {
		t.Errorf("Fuel = %v, want 100", s.Fuel())
	}
}

func TestCompleteScreen_Display(t *testing.T) {
	e, st := completedMission(t)
	view := New(e, st, nil).View(120, 40)

	for _, want := range []string{
		"MISSION ACCOMPLISHED!",
		"Commander Nova has successfully piloted the Algebra-1 Rocket into orbit.",
		"You have mastered:",
		"Two-Step Equations",
		"Distributive Property",
		"Combining Like Terms",
		"Variables on Both Sides",
		"READY FOR EXAM LAUNCH",
		"Start New Mission",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if got := strings.Count(view, "✓"); got != 4 {
		t.Errorf("expected 4 mastered lines, got %d", got)
	}
}

func TestCompleteScreen_Restart(t *testing.T) {
	e, st := completedMission(t)
	calls := 0
	s := New(e, st, func() screen.Screen {
		calls++
		return &stubScreen{}
	})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command on Enter")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Errorf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if s.state != e.Restart() {
		t.Error("restart should return the canonical zero state")
	}

	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("second Enter should not restart again")
	}
	if calls != 1 {
		t.Errorf("factory called %d times, want 1", calls)
	}
}

func TestCompleteScreen_IgnoresOtherKeys(t *testing.T) {
	e, st := completedMission(t)
	s := New(e, st, func() screen.Screen { return &stubScreen{} })
	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'q', Text: "q"}); cmd != nil {
		t.Error("only Enter should start a new mission")
	}
}
