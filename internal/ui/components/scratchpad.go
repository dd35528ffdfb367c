package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/algeblast/internal/ui/theme"
)

// Scratchpad is a free-form work area for the learner's own steps. Its
// content is never checked.
type Scratchpad struct {
	Model   textarea.Model
	Visible bool
}

// NewScratchpad creates a hidden, unfocused scratchpad.
func NewScratchpad(width, height int) Scratchpad {
	ta := textarea.New()
	ta.Placeholder = "Type your steps here..."
	ta.ShowLineNumbers = false
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.Blur()
	return Scratchpad{Model: ta}
}

// Toggle shows or hides the scratchpad. Hiding it also drops focus.
func (s *Scratchpad) Toggle() {
	s.Visible = !s.Visible
	if !s.Visible {
		s.Model.Blur()
	}
}

// Focus focuses the text area.
func (s *Scratchpad) Focus() tea.Cmd {
	return s.Model.Focus()
}

// Blur removes focus from the text area.
func (s *Scratchpad) Blur() {
	s.Model.Blur()
}

// Focused reports whether the text area has focus.
func (s Scratchpad) Focused() bool {
	return s.Model.Focused()
}

// Reset clears the notes and hides the scratchpad.
func (s *Scratchpad) Reset() {
	s.Model.Reset()
	s.Model.Blur()
	s.Visible = false
}

// Value returns the notes.
func (s Scratchpad) Value() string {
	return s.Model.Value()
}

// Update forwards messages to the text area.
func (s Scratchpad) Update(msg tea.Msg) (Scratchpad, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the scratchpad, or nothing when hidden.
func (s Scratchpad) View() string {
	if !s.Visible {
		return ""
	}
	return theme.Label.Render("MISSION LOG / SCRATCHPAD") + "\n" + theme.Panel.Render(s.Model.View())
}
