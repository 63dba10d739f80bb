package tui

import (
	"strings"
	"testing"
	"time"

	"repodeck/internal/discovery"
)

func TestRepoItem_Fields(t *testing.T) {
	item := repoItem{repo: discovery.Repo{
		Name:        "alpha",
		Path:        "/home/dev/repos/alpha",
		SourceLabel: "Work",
	}}

	if item.Title() != "alpha" {
		t.Errorf("Title: got %q", item.Title())
	}
	if item.FilterValue() != "alpha" {
		t.Errorf("FilterValue: got %q", item.FilterValue())
	}
	desc := item.Description()
	if !strings.Contains(desc, "Work") || !strings.Contains(desc, "/home/dev/repos/alpha") {
		t.Errorf("Description: got %q", desc)
	}
}

func TestToListItems(t *testing.T) {
	repos := []discovery.Repo{{Name: "a"}, {Name: "b"}}
	items := toListItems(repos)

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[1].(repoItem).repo.Name != "b" {
		t.Errorf("item order not preserved")
	}
}

func TestRelTime(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero time", time.Time{}, "unknown"},
		{"seconds", now.Add(-30 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-49 * time.Hour), "2d ago"},
		{"months", now.Add(-45 * 24 * time.Hour), "1mo ago"},
		{"years", now.Add(-800 * 24 * time.Hour), "2y ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relTime(tt.t, now); got != tt.want {
				t.Errorf("relTime: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDelegate_Dimensions(t *testing.T) {
	d := newRepoDelegate(NewStyles("mocha"), nil)
	if d.Height() != 2 {
		t.Errorf("Height: got %d", d.Height())
	}
	if d.Spacing() != 1 {
		t.Errorf("Spacing: got %d", d.Spacing())
	}
}
