// Package tui provides the interactive resource browser.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/faang/internal/catalog"
	"github.com/dbmrq/faang/internal/logging"
	"github.com/dbmrq/faang/internal/resource"
	"github.com/dbmrq/faang/internal/tui/components"
	"github.com/dbmrq/faang/internal/tui/styles"
)

// FocusedPane indicates which pane receives navigation keys.
type FocusedPane int

const (
	FocusList FocusedPane = iota
	FocusDetail
)

// Model is the Bubble Tea model for the resource browser.
type Model struct {
	// Components
	list      *components.ResourceList
	detail    *components.DetailPane
	search    *components.SearchInput
	help      *components.HelpOverlay
	shortcuts *components.ShortcutBar

	// State
	catalog *catalog.Catalog
	filter  catalog.Filter
	visible []resource.Resource

	// Window dimensions
	width  int
	height int

	quitting    bool
	focusedPane FocusedPane
}

// New creates a browser over cat, starting with filter applied.
func New(cat *catalog.Catalog, filter catalog.Filter) *Model {
	m := &Model{
		list:        components.NewResourceList(),
		detail:      components.NewDetailPane(),
		search:      components.NewSearchInput(),
		help:        components.NewHelpOverlay(),
		shortcuts:   components.NewShortcutBar(components.BrowseShortcuts...),
		catalog:     cat,
		filter:      filter,
		focusedPane: FocusList,
	}
	m.refresh()
	return m
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.layout()
		return m, nil
	}

	// The help overlay captures input while visible.
	if m.help.IsVisible() {
		return m, m.help.Update(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.search.Focused() {
			return m.handleSearchKey(msg)
		}
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "?":
		m.help.Toggle()
		return m, nil
	case "/":
		m.setFocus(FocusList)
		m.shortcuts.SetShortcuts(components.SearchShortcuts...)
		return m, m.search.Focus()
	case "tab", "enter":
		if m.focusedPane == FocusList && m.list.Len() > 0 {
			m.setFocus(FocusDetail)
		} else {
			m.setFocus(FocusList)
		}
		return m, nil
	case "esc":
		m.setFocus(FocusList)
		return m, nil
	}

	if m.focusedPane == FocusDetail {
		return m, m.detail.Update(msg)
	}

	switch msg.String() {
	case "c":
		m.filter.Category = nextCategory(m.filter.Category)
		m.refresh()
	case "t":
		m.filter.Type = nextType(m.filter.Type)
		m.refresh()
	case "f":
		m.filter.FreeOnly = !m.filter.FreeOnly
		m.refresh()
	case "x":
		m.filter = catalog.Filter{}
		m.search.SetValue("")
		m.refresh()
	default:
		cmd := m.list.Update(msg)
		m.syncDetail()
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.search.Blur()
		m.shortcuts.SetShortcuts(components.BrowseShortcuts...)
		return m, nil
	case tea.KeyEsc:
		m.search.Cancel()
		m.shortcuts.SetShortcuts(components.BrowseShortcuts...)
		m.refresh()
		return m, nil
	}

	cmd := m.search.Update(msg)
	m.refresh()
	return m, cmd
}

// refresh recomputes the visible resources from the filter and query.
func (m *Model) refresh() {
	query := strings.TrimSpace(m.search.Value())
	m.visible = []resource.Resource{}
	for _, r := range m.catalog.Filter(m.filter) {
		if query == "" || catalog.Matches(r, query) {
			m.visible = append(m.visible, r)
		}
	}
	m.list.SetItems(m.visible)
	m.syncDetail()

	logging.Debug("browse filter applied",
		"category", m.filter.Category.String(),
		"type", m.filter.Type.String(),
		"free_only", m.filter.FreeOnly,
		"query", query,
		"matches", len(m.visible),
	)
}

func (m *Model) syncDetail() {
	if r, ok := m.list.SelectedItem(); ok {
		m.detail.SetResource(r)
		return
	}
	m.detail.Clear()
	if m.focusedPane == FocusDetail {
		m.setFocus(FocusList)
	}
}

func (m *Model) setFocus(p FocusedPane) {
	m.focusedPane = p
	m.list.SetFocused(p == FocusList)
	m.detail.SetFocused(p == FocusDetail)
	if p == FocusDetail {
		m.shortcuts.SetShortcuts(components.DetailShortcuts...)
	} else {
		m.shortcuts.SetShortcuts(components.BrowseShortcuts...)
	}
}

func (m *Model) layout() {
	// Header, search line and shortcut bar take one row each.
	body := max(m.height-3, 3)
	listWidth := m.width / 2
	m.list.SetSize(listWidth, body)
	m.detail.SetSize(m.width-listWidth, body)
	m.search.SetWidth(listWidth)
	m.shortcuts.SetWidth(m.width)
	m.help.SetSize(min(m.width, 64), m.height)
}

// View renders the browser.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.help.IsVisible() {
		return m.place(m.help.View())
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), m.detail.View())

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.shortcuts.View())
	return b.String()
}

func (m *Model) header() string {
	parts := []string{
		styles.TitleStyle.Render("FAANG Resources"),
		styles.HeaderValueStyle.Render(fmt.Sprintf("%d of %d", len(m.visible), m.catalog.Len())),
	}
	if m.filter.Category != "" {
		parts = append(parts, styles.HeaderLabelStyle.Render("category: ")+styles.CategoryStyle.Render(m.filter.Category.String()))
	}
	if m.filter.Type != "" {
		parts = append(parts, styles.HeaderLabelStyle.Render("type: ")+styles.TypeStyle.Render(m.filter.Type.String()))
	}
	if m.filter.FreeOnly {
		parts = append(parts, styles.FreeIcon+styles.HeaderLabelStyle.Render(" free only"))
	}
	return strings.Join(parts, "  ")
}

func (m *Model) place(overlay string) string {
	if m.width == 0 || m.height == 0 {
		return overlay
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}

// Filter returns the active category, type and price filter.
func (m *Model) Filter() catalog.Filter {
	return m.filter
}

// Query returns the active search query.
func (m *Model) Query() string {
	return m.search.Value()
}

// Visible returns the resources currently listed.
func (m *Model) Visible() []resource.Resource {
	return append([]resource.Resource(nil), m.visible...)
}

// Focused returns the pane that has focus.
func (m *Model) Focused() FocusedPane {
	return m.focusedPane
}

// nextCategory cycles through all categories, then back to no filter.
func nextCategory(c resource.Category) resource.Category {
	return cycle(resource.Categories(), c)
}

// nextType cycles through all types, then back to no filter.
func nextType(t resource.Type) resource.Type {
	return cycle(resource.Types(), t)
}

func cycle[T comparable](all []T, current T) T {
	var zero T
	if current == zero {
		return all[0]
	}
	for i, v := range all {
		if v == current {
			if i+1 < len(all) {
				return all[i+1]
			}
			return zero
		}
	}
	return zero
}
