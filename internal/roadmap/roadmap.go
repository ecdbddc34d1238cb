// Package roadmap provides the week-by-week interview preparation roadmap.
package roadmap

import (
	"fmt"

	"github.com/dbmrq/faang/internal/catalog"
	faangerrors "github.com/dbmrq/faang/internal/errors"
	"github.com/dbmrq/faang/internal/resource"
)

// Default plan parameters.
const (
	DefaultName        = "FAANG Preparation - 16 Weeks"
	DefaultDescription = "Complete preparation plan for FAANG interviews"
	DefaultWeeks       = 16
	DefaultHoursPerDay = 4.0
)

// Phase is a contiguous range of weeks with a single focus.
type Phase struct {
	StartWeek int      `json:"start_week" yaml:"start_week"`
	EndWeek   int      `json:"end_week"   yaml:"end_week"`
	Title     string   `json:"title"      yaml:"title"`
	Items     []string `json:"items"      yaml:"items"`
	// Resources names catalog titles that back the phase.
	Resources []string `json:"resources,omitempty" yaml:"resources,omitempty"`
}

// Weeks returns the phase label, e.g. "Week 1-2".
func (p Phase) Weeks() string {
	if p.StartWeek == p.EndWeek {
		return fmt.Sprintf("Week %d", p.StartWeek)
	}
	return fmt.Sprintf("Week %d-%d", p.StartWeek, p.EndWeek)
}

// Roadmap is a study plan split into phases.
type Roadmap struct {
	Plan   resource.StudyPlan
	Phases []Phase
}

var defaultPhases = []Phase{
	{
		StartWeek: 1, EndWeek: 2, Title: "DSA Basics",
		Items:     []string{"NeetCode Roadmap", "VisuAlgo", "Big O Cheat Sheet"},
		Resources: []string{"NeetCode 150", "VisuAlgo", "Big O Cheat Sheet"},
	},
	{
		StartWeek: 3, EndWeek: 6, Title: "Problem Solving",
		Items:     []string{"LeetCode Grind 75 (Easy → Medium)", "Focus on patterns"},
		Resources: []string{"LeetCode Grind 75", "NeetCode YouTube"},
	},
	{
		StartWeek: 7, EndWeek: 10, Title: "Advanced Problems",
		Items:     []string{"Blind 75", "NeetCode 150", "Hard problems"},
		Resources: []string{"Blind 75", "NeetCode 150"},
	},
	{
		StartWeek: 11, EndWeek: 12, Title: "System Design",
		Items:     []string{"ByteByteGo", "System Design Primer", "Design patterns"},
		Resources: []string{"ByteByteGo", "System Design Primer", "Refactoring.Guru Design Patterns"},
	},
	{
		StartWeek: 13, EndWeek: 14, Title: "Mock Interviews",
		Items:     []string{"Pramp", "Interviewing.io", "Practice with peers"},
		Resources: []string{"Pramp", "Interviewing.io"},
	},
	{
		StartWeek: 15, EndWeek: 16, Title: "Final Prep",
		Items:     []string{"Behavioral questions", "Company-specific prep", "Resume polish"},
		Resources: []string{"Tech Interview Handbook: Behavioral"},
	},
}

// Default builds the 16-week roadmap, attaching the catalog resources its
// phases name. Names missing from cat are skipped; each resource is attached
// once, in order of first mention.
func Default(cat *catalog.Catalog) (Roadmap, error) {
	phases := make([]Phase, len(defaultPhases))
	for i, p := range defaultPhases {
		p.Items = append([]string(nil), p.Items...)
		p.Resources = append([]string(nil), p.Resources...)
		phases[i] = p
	}

	var rs []resource.Resource
	seen := map[string]bool{}
	for _, p := range phases {
		for _, title := range p.Resources {
			if seen[title] {
				continue
			}
			r, err := cat.Find(title)
			if err != nil {
				continue
			}
			seen[title] = true
			rs = append(rs, r)
		}
	}

	plan, err := resource.NewStudyPlan(DefaultName, DefaultDescription, DefaultWeeks, DefaultHoursPerDay, rs...)
	if err != nil {
		return Roadmap{}, err
	}

	rm := Roadmap{Plan: plan, Phases: phases}
	if err := rm.Validate(); err != nil {
		return Roadmap{}, err
	}
	return rm, nil
}

// Validate checks that the phases start at week 1, leave no gaps or
// overlaps, and end at the plan's last week.
func (rm Roadmap) Validate() error {
	if len(rm.Phases) == 0 {
		return &resource.ValidationError{Field: "phases", Reason: "must not be empty"}
	}
	next := 1
	for i, p := range rm.Phases {
		if p.StartWeek != next {
			return &resource.ValidationError{
				Field:  fmt.Sprintf("phases[%d].start_week", i),
				Reason: fmt.Sprintf("must be %d, got %d", next, p.StartWeek),
			}
		}
		if p.EndWeek < p.StartWeek {
			return &resource.ValidationError{
				Field:  fmt.Sprintf("phases[%d].end_week", i),
				Reason: "must not be before start_week",
			}
		}
		next = p.EndWeek + 1
	}
	if last := next - 1; last != rm.Plan.DurationWeeks() {
		return &resource.ValidationError{
			Field:  "phases",
			Reason: fmt.Sprintf("end at week %d but the plan lasts %d weeks", last, rm.Plan.DurationWeeks()),
		}
	}
	return nil
}

// PhaseForWeek returns the phase covering week.
func (rm Roadmap) PhaseForWeek(week int) (Phase, error) {
	for _, p := range rm.Phases {
		if week >= p.StartWeek && week <= p.EndWeek {
			return p, nil
		}
	}
	return Phase{}, faangerrors.WeekOutOfRange(week, rm.Plan.DurationWeeks())
}
