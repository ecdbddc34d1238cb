package components

import (
	"strings"
	"testing"

	"github.com/dbmrq/faang/internal/resource"
)

func TestNewDetailPane(t *testing.T) {
	d := NewDetailPane()
	if d.Content() != "" {
		t.Errorf("new pane should be empty, got %q", d.Content())
	}
	if d.focused {
		t.Error("new pane should not be focused")
	}
}

func TestDetailPane_SetResource(t *testing.T) {
	r := resource.MustNew(
		"Designing Data-Intensive Applications",
		"Storage engines, replication and stream processing.",
		"https://dataintensive.net",
		resource.TypeBook,
		resource.CategorySystemDesign,
		resource.Paid("$40"),
		resource.WithDifficulty(resource.DifficultyAdvanced),
		resource.WithRating(4.8),
		resource.WithTags("databases", "distributed"),
	)

	d := NewDetailPane()
	d.SetSize(80, 30)
	d.SetResource(r)

	content := d.Content()
	for _, want := range []string{
		"Designing Data-Intensive Applications",
		"https://dataintensive.net",
		"book",
		"system_design",
		"advanced",
		"Paid ($40)",
		"4.8⭐",
		"databases, distributed",
		r.ID().String(),
	} {
		if !strings.Contains(content, want) {
			t.Errorf("content missing %q", want)
		}
	}
}

func TestDetailPane_Unspecified(t *testing.T) {
	r := resource.MustNew("Plain", "No extras.", "https://example.com/plain", resource.TypeTool, resource.CategoryGeneral)

	d := NewDetailPane()
	d.SetResource(r)

	content := d.Content()
	for _, want := range []string{"unspecified", "Free", "N/A"} {
		if !strings.Contains(content, want) {
			t.Errorf("content missing %q", want)
		}
	}
	if strings.Contains(content, "Tags") {
		t.Error("content should omit tags when there are none")
	}
}

func TestDetailPane_Clear(t *testing.T) {
	d := NewDetailPane()
	d.SetResource(testResources(1)[0])
	d.Clear()
	if d.Content() != "" {
		t.Errorf("Clear should empty the pane, got %q", d.Content())
	}
}

func TestDetailPane_UpdateWhenBlurred(t *testing.T) {
	d := NewDetailPane()
	d.SetSize(40, 4)
	d.SetResource(testResources(1)[0])

	d.Update(key("j"))
	if d.viewport.YOffset != 0 {
		t.Errorf("blurred pane scrolled to %d", d.viewport.YOffset)
	}
}

func TestDetailPane_Scroll(t *testing.T) {
	d := NewDetailPane()
	d.SetSize(40, 5)
	d.SetFocused(true)
	d.SetResource(testResources(1)[0])

	d.Update(key("j"))
	if d.viewport.YOffset != 1 {
		t.Errorf("YOffset after j = %d, want 1", d.viewport.YOffset)
	}
	d.Update(key("k"))
	if d.viewport.YOffset != 0 {
		t.Errorf("YOffset after k = %d, want 0", d.viewport.YOffset)
	}
	d.Update(key("G"))
	if d.viewport.YOffset == 0 {
		t.Error("G should scroll to the bottom")
	}
	d.Update(key("g"))
	if d.viewport.YOffset != 0 {
		t.Errorf("YOffset after g = %d, want 0", d.viewport.YOffset)
	}
}

func TestDetailPane_View(t *testing.T) {
	d := NewDetailPane()
	d.SetSize(60, 20)
	d.SetResource(testResources(1)[0])
	if !strings.Contains(d.View(), "Resource 0") {
		t.Error("view should contain the title")
	}
}
