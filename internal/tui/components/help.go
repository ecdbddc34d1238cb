package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/faang/internal/tui/styles"
)

// ShortcutGroup is a titled set of shortcuts in the help overlay.
type ShortcutGroup struct {
	Title     string
	Shortcuts []ShortcutDef
}

// BrowseHelp lists every key the browser understands.
var BrowseHelp = []ShortcutGroup{
	{
		Title: "Navigation",
		Shortcuts: []ShortcutDef{
			{"j/↓", "Move down"},
			{"k/↑", "Move up"},
			{"g", "Go to top"},
			{"G", "Go to bottom"},
			{"tab", "Switch list/details"},
		},
	},
	{
		Title: "Filters",
		Shortcuts: []ShortcutDef{
			{"/", "Search titles, descriptions and tags"},
			{"c", "Next category"},
			{"t", "Next type"},
			{"f", "Free only"},
			{"x", "Clear filters"},
		},
	},
	{
		Title: "General",
		Shortcuts: []ShortcutDef{
			{"?", "Toggle help"},
			{"esc", "Close overlay"},
			{"q", "Quit"},
		},
	},
}

// HelpOverlay displays the shortcut groups in a framed box.
type HelpOverlay struct {
	visible bool
	width   int
	height  int
	groups  []ShortcutGroup
}

// NewHelpOverlay creates a hidden HelpOverlay showing BrowseHelp.
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{
		width:  60,
		height: 20,
		groups: BrowseHelp,
	}
}

// SetGroups replaces the shortcut groups.
func (h *HelpOverlay) SetGroups(groups []ShortcutGroup) {
	h.groups = groups
}

// SetSize sets the overlay dimensions.
func (h *HelpOverlay) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// Show makes the overlay visible.
func (h *HelpOverlay) Show() { h.visible = true }

// Hide hides the overlay.
func (h *HelpOverlay) Hide() { h.visible = false }

// Toggle toggles visibility.
func (h *HelpOverlay) Toggle() { h.visible = !h.visible }

// IsVisible returns whether the overlay is visible.
func (h *HelpOverlay) IsVisible() bool { return h.visible }

// Update closes the overlay on esc, ? or q.
func (h *HelpOverlay) Update(msg tea.Msg) tea.Cmd {
	if !h.visible {
		return nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "?", "q":
			h.Hide()
			return func() tea.Msg { return HelpClosedMsg{} }
		}
	}
	return nil
}

// View renders the overlay, or nothing when hidden.
func (h *HelpOverlay) View() string {
	if !h.visible {
		return ""
	}

	var b strings.Builder
	title := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Background(styles.Primary).
		Bold(true).
		Padding(0, 1).
		Width(max(h.width-8, 20))
	b.WriteString(title.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	for i, group := range h.groups {
		b.WriteString(renderGroup(group))
		if i < len(h.groups)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(styles.Muted).Italic(true).Render("Press ? or esc to close"))

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(styles.Primary).
		Padding(1, 2).
		Render(b.String())
}

func renderGroup(group ShortcutGroup) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(styles.Secondary).Bold(true).Render(group.Title))
	b.WriteString("\n")

	key := lipgloss.NewStyle().Foreground(styles.Foreground).Bold(true).Width(8)
	desc := lipgloss.NewStyle().Foreground(styles.MutedLight)
	for _, sc := range group.Shortcuts {
		b.WriteString("  ")
		b.WriteString(key.Render(sc.Key))
		b.WriteString(" ")
		b.WriteString(desc.Render(sc.Desc))
		b.WriteString("\n")
	}
	return b.String()
}

// HelpClosedMsg is sent when the help overlay is closed.
type HelpClosedMsg struct{}
