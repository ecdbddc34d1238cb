package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/faang/internal/resource"
	"github.com/dbmrq/faang/internal/tui/styles"
)

// DetailPane is a scrollable view of one resource.
type DetailPane struct {
	viewport viewport.Model
	focused  bool
	width    int
	height   int
	current  resource.Resource
	hasValue bool
}

// NewDetailPane creates a new DetailPane.
func NewDetailPane() *DetailPane {
	d := &DetailPane{
		viewport: viewport.New(40, 20),
		width:    40,
		height:   20,
	}
	d.applyStyle()
	return d
}

// SetSize sets the pane dimensions, borders included.
func (d *DetailPane) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.viewport.Width = max(width-2, 1)
	d.viewport.Height = max(height-2, 1)
	d.refresh()
}

// SetFocused sets whether the pane is focused.
func (d *DetailPane) SetFocused(focused bool) {
	d.focused = focused
	d.applyStyle()
}

func (d *DetailPane) applyStyle() {
	border := styles.BorderColor
	if d.focused {
		border = styles.Primary
	}
	d.viewport.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// SetResource shows r, scrolled to the top.
func (d *DetailPane) SetResource(r resource.Resource) {
	if d.hasValue && d.current.Equal(r) {
		return
	}
	d.current = r
	d.hasValue = true
	d.refresh()
	d.viewport.GotoTop()
}

// Clear empties the pane.
func (d *DetailPane) Clear() {
	d.hasValue = false
	d.current = resource.Resource{}
	d.viewport.SetContent("")
}

// Content returns the rendered text of the current resource.
func (d *DetailPane) Content() string {
	if !d.hasValue {
		return ""
	}
	return describe(d.current, d.viewport.Width)
}

func (d *DetailPane) refresh() {
	d.viewport.SetContent(d.Content())
}

// ScrollDown scrolls one line down.
func (d *DetailPane) ScrollDown() {
	d.viewport.LineDown(1)
}

// ScrollUp scrolls one line up.
func (d *DetailPane) ScrollUp() {
	d.viewport.LineUp(1)
}

// GoToTop scrolls to the top.
func (d *DetailPane) GoToTop() {
	d.viewport.GotoTop()
}

// GoToBottom scrolls to the bottom.
func (d *DetailPane) GoToBottom() {
	d.viewport.GotoBottom()
}

// Update handles navigation keys while focused.
func (d *DetailPane) Update(msg tea.Msg) tea.Cmd {
	if !d.focused {
		return nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			d.ScrollUp()
		case "down", "j":
			d.ScrollDown()
		case "home", "g":
			d.GoToTop()
		case "end", "G":
			d.GoToBottom()
		}
	}
	return nil
}

// View renders the pane.
func (d *DetailPane) View() string {
	return d.viewport.View()
}

func describe(r resource.Resource, width int) string {
	label := styles.HeaderLabelStyle
	wrap := lipgloss.NewStyle().Width(max(width-2, 10))

	difficulty := "unspecified"
	if dv, ok := r.Difficulty(); ok {
		difficulty = dv.String()
	}
	price := "Free"
	if !r.IsFree() {
		price = "Paid"
	}
	if p, ok := r.Price(); ok {
		price += " (" + p + ")"
	}
	rating := "N/A"
	if rv, ok := r.Rating(); ok {
		rating = fmt.Sprintf("%.1f⭐", rv)
	}

	lines := []string{
		styles.HeaderValueStyle.Render(r.Title()),
		"",
		wrap.Render(r.Description()),
		"",
		label.Render("URL         ") + r.URL(),
		label.Render("Type        ") + styles.TypeStyle.Render(r.Type().String()),
		label.Render("Category    ") + styles.CategoryStyle.Render(r.Category().String()),
		label.Render("Difficulty  ") + difficulty,
		label.Render("Price       ") + price,
		label.Render("Rating      ") + rating,
	}
	if tags := r.Tags(); len(tags) > 0 {
		lines = append(lines, label.Render("Tags        ")+strings.Join(tags, ", "))
	}
	lines = append(lines, "", styles.MutedTextStyle.Render(r.ID().String()))

	return strings.Join(lines, "\n")
}
