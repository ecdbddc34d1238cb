package components

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/faang/internal/resource"
)

func testResources(n int) []resource.Resource {
	out := make([]resource.Resource, n)
	for i := range out {
		opts := []resource.Option{resource.WithTags("test")}
		if i%2 == 1 {
			opts = append(opts, resource.Paid("$10"))
		}
		out[i] = resource.MustNew(
			fmt.Sprintf("Resource %d", i),
			fmt.Sprintf("Description of resource %d", i),
			fmt.Sprintf("https://example.com/%d", i),
			resource.TypeBook,
			resource.CategoryCoding,
			opts...,
		)
	}
	return out
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewResourceList(t *testing.T) {
	l := NewResourceList()

	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
	if l.Selected() != 0 {
		t.Errorf("Selected() = %d, want 0", l.Selected())
	}
	if _, ok := l.SelectedItem(); ok {
		t.Error("SelectedItem() should report false on an empty list")
	}
}

func TestResourceList_SetItems_KeepsSelection(t *testing.T) {
	items := testResources(5)
	l := NewResourceList()
	l.SetItems(items)
	l.MoveDown()
	l.MoveDown()

	// Drop the first two; the selected resource moves to index 0.
	l.SetItems(items[2:])

	got, ok := l.SelectedItem()
	if !ok {
		t.Fatal("expected a selection")
	}
	if !got.Equal(items[2]) {
		t.Errorf("selected %q, want %q", got.Title(), items[2].Title())
	}
	if l.Selected() != 0 {
		t.Errorf("Selected() = %d, want 0", l.Selected())
	}
}

func TestResourceList_SetItems_ClampsSelection(t *testing.T) {
	items := testResources(5)
	l := NewResourceList()
	l.SetItems(items)
	l.GoToBottom()

	l.SetItems(testResources(2)[:1])
	if l.Selected() != 0 {
		t.Errorf("Selected() = %d, want 0", l.Selected())
	}

	l.SetItems(nil)
	if l.Selected() != 0 {
		t.Errorf("Selected() = %d on empty list, want 0", l.Selected())
	}
}

func TestResourceList_Navigation(t *testing.T) {
	l := NewResourceList()
	l.SetItems(testResources(4))

	l.MoveUp()
	if l.Selected() != 0 {
		t.Errorf("MoveUp at top: Selected() = %d, want 0", l.Selected())
	}

	l.MoveDown()
	l.MoveDown()
	if l.Selected() != 2 {
		t.Errorf("Selected() = %d, want 2", l.Selected())
	}

	l.GoToBottom()
	l.MoveDown()
	if l.Selected() != 3 {
		t.Errorf("MoveDown at bottom: Selected() = %d, want 3", l.Selected())
	}

	l.GoToTop()
	if l.Selected() != 0 {
		t.Errorf("GoToTop: Selected() = %d, want 0", l.Selected())
	}
}

func TestResourceList_Update(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want int
	}{
		{"j moves down", []string{"j"}, 1},
		{"down arrow", []string{"down", "down"}, 2},
		{"k moves up", []string{"j", "j", "k"}, 1},
		{"G goes to bottom", []string{"G"}, 5},
		{"g goes to top", []string{"G", "g"}, 0},
		{"end and home", []string{"end", "up", "home"}, 0},
		{"unknown key", []string{"z"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewResourceList()
			l.SetItems(testResources(6))
			for _, k := range tt.keys {
				l.Update(key(k))
			}
			if l.Selected() != tt.want {
				t.Errorf("Selected() = %d, want %d", l.Selected(), tt.want)
			}
		})
	}
}

func TestResourceList_Scroll(t *testing.T) {
	l := NewResourceList()
	l.SetSize(80, 3)
	l.SetItems(testResources(10))

	for range 5 {
		l.MoveDown()
	}
	if l.scrollStart != 3 {
		t.Errorf("scrollStart = %d, want 3", l.scrollStart)
	}

	l.GoToTop()
	if l.scrollStart != 0 {
		t.Errorf("scrollStart after GoToTop = %d, want 0", l.scrollStart)
	}
}

func TestResourceList_View(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		l := NewResourceList()
		if !strings.Contains(l.View(), "No resources match") {
			t.Error("empty list should show a placeholder")
		}
	})

	t.Run("scroll indicators", func(t *testing.T) {
		l := NewResourceList()
		l.SetSize(80, 3)
		l.SetItems(testResources(10))

		view := l.View()
		if !strings.Contains(view, "Resource 0") {
			t.Error("view should contain the first item")
		}
		if strings.Contains(view, "Resource 5") {
			t.Error("view should not contain items below the fold")
		}
		if !strings.Contains(view, "more below") {
			t.Error("view should show the more below indicator")
		}
		if strings.Contains(view, "more above") {
			t.Error("view should not show the more above indicator at the top")
		}

		l.GoToBottom()
		view = l.View()
		if !strings.Contains(view, "more above") {
			t.Error("view should show the more above indicator at the bottom")
		}
		if !strings.Contains(view, "Resource 9") {
			t.Error("view should contain the last item")
		}
	})

	t.Run("cursor and type", func(t *testing.T) {
		l := NewResourceList()
		l.SetItems(testResources(2))
		view := l.View()
		if !strings.Contains(view, "▶") {
			t.Error("view should show the cursor")
		}
		if !strings.Contains(view, "book") {
			t.Error("view should show the resource type")
		}
	})
}
