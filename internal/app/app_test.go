package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/algeblast/internal/curriculum"
	"github.com/abhisek/algeblast/internal/router"
)

func newTestModel(t *testing.T) AppModel {
	t.Helper()
	m, err := NewAppModel(Options{SkipIntroAnimation: true})
	if err != nil {
		t.Fatalf("NewAppModel: %v", err)
	}
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	return updated.(AppModel)
}

// send delivers msg and then every ReplaceScreenMsg its command produces.
func send(m AppModel, msg tea.Msg) AppModel {
	updated, cmd := m.Update(msg)
	m = updated.(AppModel)
	if cmd == nil {
		return m
	}
	if replace, ok := cmd().(router.ReplaceScreenMsg); ok {
		updated, _ = m.Update(replace)
		m = updated.(AppModel)
	}
	return m
}

func typeName(m AppModel, name string) AppModel {
	for _, r := range name {
		m = send(m, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return m
}

func TestStartsAtIntro(t *testing.T) {
	m := newTestModel(t)
	if got := m.router.Active().Title(); got != "Mission Control" {
		t.Errorf("expected intro screen, got %q", got)
	}
	if !strings.Contains(m.render(), "Commander Identification") {
		t.Error("expected the name form to be visible")
	}
}

func TestNameStartsFlight(t *testing.T) {
	m := newTestModel(t)
	m = typeName(m, "Nova")
	m = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	stage, _ := curriculum.Default().Stage(0)
	if got := m.router.Active().Title(); got != stage.Title {
		t.Errorf("expected flight screen titled %q, got %q", stage.Title, got)
	}
	if m.router.Depth() != 1 {
		t.Errorf("navigation should replace screens, depth %d", m.router.Depth())
	}
	if !strings.Contains(m.render(), "COMMANDER: Nova") {
		t.Error("expected commander in the flight view")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestTooSmallTerminal(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m = updated.(AppModel)
	if !strings.Contains(m.render(), "Terminal too small!") {
		t.Error("expected the minimum size message")
	}
}

func TestViewUsesAltScreen(t *testing.T) {
	m := newTestModel(t)
	if !m.View().AltScreen {
		t.Error("expected the alternate screen")
	}
}
