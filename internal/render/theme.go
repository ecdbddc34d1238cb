package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/dbmrq/faang/internal/tui/styles"
)

// Theme holds the styles used for table output. Styles are bound to a
// renderer for the destination writer so color detection follows it.
type Theme struct {
	renderer *lipgloss.Renderer

	Title    lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Name     lipgloss.Style
	Type     lipgloss.Style
	Category lipgloss.Style
	Price    lipgloss.Style
	Rating   lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Border   lipgloss.Style
}

// NewTheme returns a theme for w. With color false every style renders
// plain text.
func NewTheme(w io.Writer, color bool) *Theme {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Theme{
		renderer: r,
		Title:    r.NewStyle().Bold(true).Foreground(styles.Primary),
		Header:   r.NewStyle().Bold(true).Foreground(styles.Primary).Padding(0, 1),
		Cell:     r.NewStyle().Padding(0, 1),
		Name:     r.NewStyle().Foreground(styles.Secondary).Padding(0, 1),
		Type:     r.NewStyle().Foreground(styles.Success).Padding(0, 1),
		Category: r.NewStyle().Foreground(styles.Primary).Padding(0, 1),
		Price:    r.NewStyle().Foreground(styles.Warning).Padding(0, 1).Align(lipgloss.Center),
		Rating:   r.NewStyle().Foreground(styles.Error).Padding(0, 1).Align(lipgloss.Center),
		Label:    r.NewStyle().Bold(true),
		Muted:    r.NewStyle().Foreground(styles.Muted),
		Success:  r.NewStyle().Bold(true).Foreground(styles.Success),
		Warning:  r.NewStyle().Foreground(styles.Warning),
		Border:   r.NewStyle().Foreground(styles.BorderColor),
	}
}

// Panel returns a rounded box style with the given border color.
func (t *Theme) Panel(border lipgloss.Color) lipgloss.Style {
	return t.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2)
}

// Style returns an empty style bound to the theme's renderer.
func (t *Theme) Style() lipgloss.Style {
	return t.renderer.NewStyle()
}
