package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/faang/internal/tui/styles"
)

// SearchInput wraps the bubbles textinput for the "/" query prompt.
type SearchInput struct {
	model   textinput.Model
	focused bool
	// committed is the value restored by Cancel.
	committed string
}

// NewSearchInput creates a new SearchInput.
func NewSearchInput() *SearchInput {
	ti := textinput.New()
	ti.CharLimit = 128
	ti.Width = 30
	ti.Prompt = "/ "
	ti.Placeholder = "title, description or tag"

	return &SearchInput{model: ti}
}

// Focus starts editing.
func (s *SearchInput) Focus() tea.Cmd {
	s.focused = true
	s.committed = s.model.Value()
	return s.model.Focus()
}

// Blur stops editing and keeps the current value.
func (s *SearchInput) Blur() {
	s.focused = false
	s.committed = s.model.Value()
	s.model.Blur()
}

// Cancel stops editing and restores the value from before Focus.
func (s *SearchInput) Cancel() {
	s.model.SetValue(s.committed)
	s.focused = false
	s.model.Blur()
}

// Focused reports whether the input is being edited.
func (s *SearchInput) Focused() bool {
	return s.focused
}

// SetValue sets the query.
func (s *SearchInput) SetValue(value string) {
	s.model.SetValue(value)
	if !s.focused {
		s.committed = value
	}
}

// Value returns the current query.
func (s *SearchInput) Value() string {
	return s.model.Value()
}

// SetWidth sets the width of the input.
func (s *SearchInput) SetWidth(width int) {
	s.model.Width = width - 4
	if s.model.Width < 10 {
		s.model.Width = 10
	}
}

// Update forwards messages to the text input while focused.
func (s *SearchInput) Update(msg tea.Msg) tea.Cmd {
	if !s.focused {
		return nil
	}

	var cmd tea.Cmd
	s.model, cmd = s.model.Update(msg)
	return cmd
}

// View renders the prompt, or the active query when not editing.
func (s *SearchInput) View() string {
	if s.focused {
		return lipgloss.NewStyle().
			Foreground(styles.Foreground).
			Render(s.model.View())
	}
	if s.model.Value() == "" {
		return ""
	}
	return styles.HeaderLabelStyle.Render("search: ") + styles.HeaderValueStyle.Render(s.model.Value())
}
