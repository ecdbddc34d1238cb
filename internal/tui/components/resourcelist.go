// Package components provides the widgets used by the browse TUI.
package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/faang/internal/resource"
	"github.com/dbmrq/faang/internal/tui/styles"
)

// ResourceList is a scrollable list of resources with price markers.
type ResourceList struct {
	items       []resource.Resource
	selected    int
	height      int
	width       int
	scrollStart int
	focused     bool
}

// NewResourceList creates a new ResourceList component.
func NewResourceList() *ResourceList {
	return &ResourceList{
		items:   []resource.Resource{},
		height:  10,
		focused: true,
	}
}

// SetItems replaces the list contents. The selection is kept on the same
// resource when it is still present, and clamped otherwise.
func (l *ResourceList) SetItems(items []resource.Resource) {
	var current *resource.Resource
	if r, ok := l.SelectedItem(); ok {
		current = &r
	}

	l.items = items
	if current != nil {
		for i, r := range items {
			if r.Equal(*current) {
				l.selected = i
				break
			}
		}
	}
	if l.selected >= len(items) {
		l.selected = len(items) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
	l.scrollStart = 0
	l.updateScroll()
}

// Len returns the number of items.
func (l *ResourceList) Len() int {
	return len(l.items)
}

// SetSize sets both width and height.
func (l *ResourceList) SetSize(width, height int) {
	l.width = width
	if height < 1 {
		height = 1
	}
	l.height = height
	l.updateScroll()
}

// SetFocused sets whether the list is focused.
func (l *ResourceList) SetFocused(focused bool) {
	l.focused = focused
}

// Selected returns the currently selected item index.
func (l *ResourceList) Selected() int {
	return l.selected
}

// SelectedItem returns the currently selected resource.
func (l *ResourceList) SelectedItem() (resource.Resource, bool) {
	if len(l.items) == 0 || l.selected < 0 || l.selected >= len(l.items) {
		return resource.Resource{}, false
	}
	return l.items[l.selected], true
}

// MoveUp moves selection up.
func (l *ResourceList) MoveUp() {
	if l.selected > 0 {
		l.selected--
		l.updateScroll()
	}
}

// MoveDown moves selection down.
func (l *ResourceList) MoveDown() {
	if l.selected < len(l.items)-1 {
		l.selected++
		l.updateScroll()
	}
}

// GoToTop moves selection to the first item.
func (l *ResourceList) GoToTop() {
	l.selected = 0
	l.updateScroll()
}

// GoToBottom moves selection to the last item.
func (l *ResourceList) GoToBottom() {
	if len(l.items) > 0 {
		l.selected = len(l.items) - 1
		l.updateScroll()
	}
}

// updateScroll ensures the selected item is visible.
func (l *ResourceList) updateScroll() {
	if l.selected < l.scrollStart {
		l.scrollStart = l.selected
	}
	if l.selected >= l.scrollStart+l.height {
		l.scrollStart = l.selected - l.height + 1
	}
	if l.scrollStart < 0 {
		l.scrollStart = 0
	}
}

// Update handles keyboard events for navigation.
func (l *ResourceList) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		case "home", "g":
			l.GoToTop()
		case "end", "G":
			l.GoToBottom()
		}
	}
	return nil
}

// View renders the visible part of the list.
func (l *ResourceList) View() string {
	if len(l.items) == 0 {
		return lipgloss.NewStyle().
			Foreground(styles.Muted).
			Italic(true).
			Padding(1, 2).
			Render("No resources match")
	}

	end := l.scrollStart + l.height
	if end > len(l.items) {
		end = len(l.items)
	}

	lines := make([]string, 0, end-l.scrollStart+2)
	if l.scrollStart > 0 {
		lines = append(lines, styles.MutedTextStyle.Render("  ↑ more above"))
	}
	for i := l.scrollStart; i < end; i++ {
		lines = append(lines, l.renderItem(l.items[i], i == l.selected))
	}
	if end < len(l.items) {
		lines = append(lines, styles.MutedTextStyle.Render("  ↓ more below"))
	}

	return strings.Join(lines, "\n")
}

func (l *ResourceList) renderItem(r resource.Resource, isSelected bool) string {
	cursor := " "
	if isSelected {
		cursor = lipgloss.NewStyle().
			Foreground(styles.Secondary).
			Bold(true).
			Render("▶")
	}

	icon := styles.PaidIcon
	if r.IsFree() {
		icon = styles.FreeIcon
	}

	typ := styles.TypeStyle.Width(11).Render(r.Type().String())
	line := fmt.Sprintf("%s %s %s %s", cursor, icon, typ, r.Title())

	lineStyle := lipgloss.NewStyle()
	if isSelected && l.focused {
		lineStyle = lineStyle.
			Background(styles.Background).
			Bold(true)
	}
	if l.width > 0 {
		lineStyle = lineStyle.Width(l.width).MaxHeight(1)
	}

	return lineStyle.Render(line)
}
