// Package styles holds the color palette and Lip Gloss styles shared by the
// browser and the table renderer.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	Primary     = lipgloss.Color("#7C3AED") // purple: titles, focus
	Secondary   = lipgloss.Color("#06B6D4") // cyan: names, categories
	Success     = lipgloss.Color("#10B981") // green: free, types
	Warning     = lipgloss.Color("#F59E0B") // amber: paid, prices
	Error       = lipgloss.Color("#EF4444") // red: ratings
	Muted       = lipgloss.Color("#6B7280")
	MutedLight  = lipgloss.Color("#9CA3AF")
	Background  = lipgloss.Color("#1F2937")
	Foreground  = lipgloss.Color("#F9FAFB")
	BorderColor = lipgloss.Color("#374151")
)

// Browser header.
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	HeaderLabelStyle = lipgloss.NewStyle().Foreground(MutedLight)
	HeaderValueStyle = lipgloss.NewStyle().Foreground(Foreground).Bold(true)
)

// Resource attributes.
var (
	TypeStyle      = lipgloss.NewStyle().Foreground(Success)
	CategoryStyle  = lipgloss.NewStyle().Foreground(Secondary)
	MutedTextStyle = lipgloss.NewStyle().Foreground(Muted)

	// FreeIcon and PaidIcon mark price in list rows.
	FreeIcon = lipgloss.NewStyle().Foreground(Success).Render("✓")
	PaidIcon = lipgloss.NewStyle().Foreground(Warning).Render("$")
)

// Shortcut bar.
var (
	KeyStyle  = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	HelpStyle = lipgloss.NewStyle().Foreground(Muted)
)
