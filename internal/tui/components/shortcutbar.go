package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/faang/internal/tui/styles"
)

// ShortcutDef defines a single keyboard shortcut.
type ShortcutDef struct {
	Key  string
	Desc string
}

// ShortcutBar displays the keyboard shortcuts available in the current mode.
type ShortcutBar struct {
	shortcuts []ShortcutDef
	width     int
}

// NewShortcutBar creates a new ShortcutBar with the given shortcuts.
func NewShortcutBar(shortcuts ...ShortcutDef) *ShortcutBar {
	return &ShortcutBar{shortcuts: shortcuts}
}

// SetShortcuts replaces all shortcuts.
func (s *ShortcutBar) SetShortcuts(shortcuts ...ShortcutDef) {
	s.shortcuts = shortcuts
}

// SetWidth sets the bar width. Content wider than the bar is cut.
func (s *ShortcutBar) SetWidth(width int) {
	s.width = width
}

// View renders the shortcut bar.
func (s *ShortcutBar) View() string {
	if len(s.shortcuts) == 0 {
		return ""
	}

	parts := make([]string, 0, len(s.shortcuts))
	for _, sc := range s.shortcuts {
		parts = append(parts, styles.KeyStyle.Render(sc.Key)+styles.HelpStyle.Render(" "+sc.Desc))
	}
	sep := lipgloss.NewStyle().Foreground(styles.Muted).Render(" │ ")
	content := strings.Join(parts, sep)

	if s.width > 0 {
		return lipgloss.NewStyle().MaxWidth(s.width).Render(content)
	}
	return content
}

// Shortcut sets for each browse mode.
var (
	// BrowseShortcuts apply while the list has focus.
	BrowseShortcuts = []ShortcutDef{
		{"↑↓", "move"},
		{"/", "search"},
		{"c", "category"},
		{"t", "type"},
		{"f", "free"},
		{"x", "clear"},
		{"tab", "details"},
		{"?", "help"},
		{"q", "quit"},
	}

	// DetailShortcuts apply while the detail pane has focus.
	DetailShortcuts = []ShortcutDef{
		{"↑↓", "scroll"},
		{"tab", "list"},
		{"esc", "back"},
		{"q", "quit"},
	}

	// SearchShortcuts apply while typing a query.
	SearchShortcuts = []ShortcutDef{
		{"enter", "apply"},
		{"esc", "cancel"},
	}
)
