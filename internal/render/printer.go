// Package render prints catalog data as styled terminal tables, trees and
// panels, or as JSON or YAML for scripting.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/lipgloss/tree"
	"gopkg.in/yaml.v3"

	"github.com/dbmrq/faang/internal/catalog"
	"github.com/dbmrq/faang/internal/config"
	"github.com/dbmrq/faang/internal/resource"
	"github.com/dbmrq/faang/internal/roadmap"
	"github.com/dbmrq/faang/internal/tui/styles"
	"github.com/dbmrq/faang/internal/version"
)

// Headings and messages printed in table mode.
const (
	ListTitle         = "🚀 FAANG Interview Resources"
	NoMatchesMessage  = "No resources found matching the criteria."
	CategoriesTitle   = "🎯 Resource Categories"
	StatsPanelTitle   = "📈 Statistics"
	StatsHeading      = "📊 Resource Statistics"
	RoadmapPanelTitle = "🚀 FAANG Roadmap"
	RecommendedPace   = "🎯 Recommended: 4-5 hours/day consistently!"
)

// Options configures a Printer.
type Options struct {
	Format           config.OutputFormat
	Color            bool
	DescriptionWidth int
}

// Printer writes command results in the configured format.
type Printer struct {
	w         io.Writer
	format    config.OutputFormat
	descWidth int
	theme     *Theme
}

// New returns a Printer writing to w. Zero options mean table output with
// color detection and the default description width.
func New(w io.Writer, opts Options) *Printer {
	if opts.Format == "" {
		opts.Format = config.OutputTable
	}
	if opts.DescriptionWidth <= 0 {
		opts.DescriptionWidth = config.DefaultDescriptionWidth
	}
	return &Printer{
		w:         w,
		format:    opts.Format,
		descWidth: opts.DescriptionWidth,
		theme:     NewTheme(w, opts.Color),
	}
}

// Format returns the output format.
func (p *Printer) Format() config.OutputFormat { return p.format }

// emit writes v as JSON or YAML, or calls text for table output.
func (p *Printer) emit(v any, text func() error) error {
	switch p.format {
	case config.OutputJSON:
		return writeJSON(p.w, v)
	case config.OutputYAML:
		return writeYAML(p.w, v)
	case config.OutputTable:
		return text()
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

func (p *Printer) println(s string) error {
	_, err := fmt.Fprintln(p.w, s)
	return err
}

// Resources prints the list command's result.
func (p *Printer) Resources(rs []resource.Resource) error {
	return p.emit(NewResourceViews(rs), func() error {
		if len(rs) == 0 {
			return p.println(p.theme.Warning.Render(NoMatchesMessage))
		}

		rows := make([][]string, 0, len(rs))
		for _, r := range rs {
			rows = append(rows, []string{
				r.Title(),
				r.Type().String(),
				r.Category().String(),
				FreeIcon(r),
				RatingString(r),
			})
		}

		cols := []lipgloss.Style{p.theme.Name, p.theme.Type, p.theme.Category, p.theme.Price, p.theme.Rating}
		out := []string{
			p.theme.Title.Render(ListTitle),
			p.table([]string{"Title", "Type", "Category", "Free", "Rating"}, rows, cols),
			"",
			p.theme.Success.Render(fmt.Sprintf("Total: %d resources", len(rs))),
		}
		return p.println(strings.Join(out, "\n"))
	})
}

// SearchResults prints the search command's result.
func (p *Printer) SearchResults(query string, rs []resource.Resource) error {
	return p.emit(NewResourceViews(rs), func() error {
		if len(rs) == 0 {
			return p.println(p.theme.Warning.Render(fmt.Sprintf("No resources found for query: '%s'", query)))
		}

		rows := make([][]string, 0, len(rs))
		for _, r := range rs {
			rows = append(rows, []string{
				r.Title(),
				Truncate(r.Description(), p.descWidth),
				r.Category().String(),
				r.Type().String(),
			})
		}

		cols := []lipgloss.Style{p.theme.Name, p.theme.Cell, p.theme.Category, p.theme.Type}
		out := []string{
			p.theme.Title.Render(fmt.Sprintf("🔍 Search Results for '%s'", query)),
			p.table([]string{"Title", "Description", "Category", "Type"}, rows, cols),
			"",
			p.theme.Success.Render(fmt.Sprintf("Found: %d resources", len(rs))),
		}
		return p.println(strings.Join(out, "\n"))
	})
}

// Resource prints a detail panel for r.
func (p *Printer) Resource(r resource.Resource) error {
	return p.emit(NewResourceView(r), func() error {
		label := p.theme.Label
		lines := []string{
			p.theme.Title.Render(r.Title()),
			"",
			p.theme.Style().Width(72).Render(r.Description()),
			"",
			label.Render("URL:        ") + r.URL(),
			label.Render("Type:       ") + r.Type().String(),
			label.Render("Category:   ") + r.Category().String(),
			label.Render("Difficulty: ") + DifficultyString(r),
			label.Render("Price:      ") + PriceString(r),
			label.Render("Rating:     ") + RatingString(r),
		}
		if tags := r.Tags(); len(tags) > 0 {
			lines = append(lines, label.Render("Tags:       ")+strings.Join(tags, ", "))
		}
		lines = append(lines, p.theme.Muted.Render("ID:         "+r.ID().String()))

		return p.println(p.theme.Panel(styles.Secondary).Render(strings.Join(lines, "\n")))
	})
}

// Categories prints the category tree.
func (p *Printer) Categories(nodes []catalog.CategoryNode) error {
	return p.emit(nodes, func() error {
		t := tree.Root(p.theme.Label.Render(CategoriesTitle)).
			Enumerator(tree.RoundedEnumerator).
			EnumeratorStyle(p.theme.Border)

		for _, node := range nodes {
			branch := tree.Root(fmt.Sprintf("%s (%d resources)",
				p.theme.Name.UnsetPadding().Render(node.Category.String()), node.Count))
			for _, tc := range node.Types {
				branch.Child(fmt.Sprintf("%s: %d", p.theme.Type.UnsetPadding().Render(tc.Type.String()), tc.Count))
			}
			t.Child(branch)
		}

		return p.println(t.String())
	})
}

// Stats prints the statistics panel.
func (p *Printer) Stats(s catalog.Stats) error {
	return p.emit(NewStatsView(s), func() error {
		label := p.theme.Label
		lines := []string{
			p.theme.Title.Render(StatsHeading),
			"",
			label.Render("Total Resources:") + fmt.Sprintf(" %d", s.Total),
			p.theme.Success.Render("Free:") + fmt.Sprintf(" %d (%.1f%%)", s.Free, s.FreePercent()),
			p.theme.Warning.Bold(true).Render("Paid:") + fmt.Sprintf(" %d (%.1f%%)", s.Paid, s.PaidPercent()),
			"",
			p.theme.Title.Render("By Category:"),
		}
		for _, cc := range s.ByCategory {
			lines = append(lines, fmt.Sprintf("  • %s: %d", cc.Category, cc.Count))
		}
		lines = append(lines, "", p.theme.Title.Render("By Type:"))
		for _, tc := range s.ByType {
			lines = append(lines, fmt.Sprintf("  • %s: %d", tc.Type, tc.Count))
		}

		return p.panel(StatsPanelTitle, styles.Success, lines)
	})
}

// Roadmap prints the full roadmap panel.
func (p *Printer) Roadmap(rm roadmap.Roadmap) error {
	return p.emit(NewRoadmapView(rm), func() error {
		lines := []string{
			p.theme.Title.Render(fmt.Sprintf("%d-Week FAANG Interview Preparation Roadmap", rm.Plan.DurationWeeks())),
		}
		for _, phase := range rm.Phases {
			lines = append(lines, "")
			lines = append(lines, p.phaseLines(phase)...)
		}
		lines = append(lines,
			"",
			p.theme.Success.Render(RecommendedPace),
			p.theme.Muted.Render(fmt.Sprintf("%d weeks at %.1f hours/day is about %.0f hours in total.",
				rm.Plan.DurationWeeks(), rm.Plan.HoursPerDay(), rm.Plan.TotalHours())),
		)
		return p.panel(RoadmapPanelTitle, styles.Primary, lines)
	})
}

// Phase prints one roadmap phase together with the catalog resources that
// back it.
func (p *Printer) Phase(week int, rm roadmap.Roadmap, phase roadmap.Phase, rs []resource.Resource) error {
	view := struct {
		Week      int            `json:"week"      yaml:"week"`
		Phase     roadmap.Phase  `json:"phase"     yaml:"phase"`
		Resources []ResourceView `json:"resources" yaml:"resources"`
	}{week, phase, NewResourceViews(rs)}

	return p.emit(view, func() error {
		lines := p.phaseLines(phase)
		if len(rs) > 0 {
			lines = append(lines, "", p.theme.Label.Render("Resources:"))
			for _, r := range rs {
				lines = append(lines, fmt.Sprintf("  %s %s %s", FreeIcon(r), r.Title(), p.theme.Muted.Render(r.URL())))
			}
		}
		title := fmt.Sprintf("Week %d of %d", week, rm.Plan.DurationWeeks())
		return p.panel(title, styles.Primary, lines)
	})
}

// Version prints build information.
func (p *Printer) Version(info *version.Info) error {
	return p.emit(info, func() error {
		return p.println(info.FullString())
	})
}

func (p *Printer) phaseLines(phase roadmap.Phase) []string {
	lines := []string{
		p.theme.Warning.Bold(true).Render(phase.Weeks()+":") + " " + phase.Title,
	}
	for _, item := range phase.Items {
		lines = append(lines, "  • "+item)
	}
	return lines
}

func (p *Printer) panel(title string, border lipgloss.Color, lines []string) error {
	box := p.theme.Panel(border).Render(strings.Join(lines, "\n"))
	return p.println(p.theme.Label.Render(title) + "\n" + box)
}

func (p *Printer) table(headers []string, rows [][]string, cols []lipgloss.Style) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.theme.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.theme.Header
			}
			if col < len(cols) {
				return cols[col]
			}
			return p.theme.Cell
		})
	return t.String()
}

// Truncate shortens s to n runes followed by "...". Strings of at most n
// runes are returned unchanged.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

// FreeIcon marks free and paid resources.
func FreeIcon(r resource.Resource) string {
	if r.IsFree() {
		return "✅"
	}
	return "💰"
}

// RatingString formats the rating, or "N/A" when absent.
func RatingString(r resource.Resource) string {
	if rating, ok := r.Rating(); ok {
		return fmt.Sprintf("%.1f⭐", rating)
	}
	return "N/A"
}

// PriceString describes what r costs.
func PriceString(r resource.Resource) string {
	price, hasPrice := r.Price()
	switch {
	case r.IsFree() && hasPrice:
		return "Free (" + price + ")"
	case r.IsFree():
		return "Free"
	case hasPrice:
		return price
	default:
		return "Paid"
	}
}

// DifficultyString returns the difficulty, or "unspecified".
func DifficultyString(r resource.Resource) string {
	if d, ok := r.Difficulty(); ok {
		return d.String()
	}
	return "unspecified"
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

func writeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(v); err != nil {
		return err
	}

	return encoder.Close()
}
