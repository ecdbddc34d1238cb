package render

import (
	"github.com/dbmrq/faang/internal/catalog"
	"github.com/dbmrq/faang/internal/resource"
	"github.com/dbmrq/faang/internal/roadmap"
)

// ResourceView is the serialized form of a resource.
type ResourceView struct {
	ID           string            `json:"id"                   yaml:"id"`
	Title        string            `json:"title"                yaml:"title"`
	Description  string            `json:"description"          yaml:"description"`
	URL          string            `json:"url"                  yaml:"url"`
	ResourceType resource.Type     `json:"resource_type"        yaml:"resource_type"`
	Category     resource.Category `json:"category"             yaml:"category"`
	Difficulty   string            `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	IsFree       bool              `json:"is_free"              yaml:"is_free"`
	Price        string            `json:"price,omitempty"      yaml:"price,omitempty"`
	Rating       *float64          `json:"rating,omitempty"     yaml:"rating,omitempty"`
	Tags         []string          `json:"tags"                 yaml:"tags"`
}

// NewResourceView converts r for serialization.
func NewResourceView(r resource.Resource) ResourceView {
	v := ResourceView{
		ID:           r.ID().String(),
		Title:        r.Title(),
		Description:  r.Description(),
		URL:          r.URL(),
		ResourceType: r.Type(),
		Category:     r.Category(),
		IsFree:       r.IsFree(),
		Tags:         r.Tags(),
	}
	if d, ok := r.Difficulty(); ok {
		v.Difficulty = d.String()
	}
	if p, ok := r.Price(); ok {
		v.Price = p
	}
	if rating, ok := r.Rating(); ok {
		v.Rating = &rating
	}
	return v
}

// NewResourceViews converts rs, returning an empty slice rather than nil.
func NewResourceViews(rs []resource.Resource) []ResourceView {
	views := make([]ResourceView, 0, len(rs))
	for _, r := range rs {
		views = append(views, NewResourceView(r))
	}
	return views
}

// StatsView is the serialized form of catalog statistics.
type StatsView struct {
	Total       int                     `json:"total"        yaml:"total"`
	Free        int                     `json:"free"         yaml:"free"`
	Paid        int                     `json:"paid"         yaml:"paid"`
	FreePercent float64                 `json:"free_percent" yaml:"free_percent"`
	PaidPercent float64                 `json:"paid_percent" yaml:"paid_percent"`
	ByCategory  []catalog.CategoryCount `json:"by_category"  yaml:"by_category"`
	ByType      []catalog.TypeCount     `json:"by_type"      yaml:"by_type"`
}

// NewStatsView converts s for serialization.
func NewStatsView(s catalog.Stats) StatsView {
	v := StatsView{
		Total:       s.Total,
		Free:        s.Free,
		Paid:        s.Paid,
		FreePercent: s.FreePercent(),
		PaidPercent: s.PaidPercent(),
		ByCategory:  s.ByCategory,
		ByType:      s.ByType,
	}
	if v.ByCategory == nil {
		v.ByCategory = []catalog.CategoryCount{}
	}
	if v.ByType == nil {
		v.ByType = []catalog.TypeCount{}
	}
	return v
}

// RoadmapView is the serialized form of a roadmap.
type RoadmapView struct {
	Name          string          `json:"name"           yaml:"name"`
	Description   string          `json:"description"    yaml:"description"`
	DurationWeeks int             `json:"duration_weeks" yaml:"duration_weeks"`
	HoursPerDay   float64         `json:"hours_per_day"  yaml:"hours_per_day"`
	TotalHours    float64         `json:"total_hours"    yaml:"total_hours"`
	Phases        []roadmap.Phase `json:"phases"         yaml:"phases"`
	Resources     []ResourceView  `json:"resources"      yaml:"resources"`
}

// NewRoadmapView converts rm for serialization.
func NewRoadmapView(rm roadmap.Roadmap) RoadmapView {
	return RoadmapView{
		Name:          rm.Plan.Name(),
		Description:   rm.Plan.Description(),
		DurationWeeks: rm.Plan.DurationWeeks(),
		HoursPerDay:   rm.Plan.HoursPerDay(),
		TotalHours:    rm.Plan.TotalHours(),
		Phases:        rm.Phases,
		Resources:     NewResourceViews(rm.Plan.Resources()),
	}
}
