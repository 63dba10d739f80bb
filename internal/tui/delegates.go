// pattern: Imperative Shell

package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"repodeck/internal/discovery"
)

// repoItem wraps a repository for display in a list.
type repoItem struct {
	repo discovery.Repo
}

// Title returns the repository name for display.
func (i repoItem) Title() string {
	return i.repo.Name
}

// Description returns repository details for display.
func (i repoItem) Description() string {
	return fmt.Sprintf("%s | %s | %s", i.repo.SourceLabel, relTime(i.repo.LastModified, time.Now()), i.repo.Path)
}

// FilterValue returns the value to filter on.
func (i repoItem) FilterValue() string {
	return i.repo.Name
}

// repoDelegate handles rendering of repository items in a list.
type repoDelegate struct {
	styles *Styles
	slots  map[string]int // source label -> registry position, drives badge color
}

// newRepoDelegate creates a repository delegate with the given styles and
// source slot assignment.
func newRepoDelegate(styles *Styles, slots map[string]int) repoDelegate {
	return repoDelegate{styles: styles, slots: slots}
}

// Height returns the height of a single item.
func (d repoDelegate) Height() int {
	return 2
}

// Spacing returns the spacing between items.
func (d repoDelegate) Spacing() int {
	return 1
}

// Update handles item-specific updates.
func (d repoDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render renders a single repository item.
func (d repoDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ri, ok := item.(repoItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(d.styles.flavor.Text().Hex))
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(d.styles.flavor.Subtext0().Hex))

	if isSelected {
		titleStyle = titleStyle.
			Bold(true).
			Foreground(lipgloss.Color(d.styles.flavor.Mauve().Hex))
		descStyle = descStyle.
			Foreground(lipgloss.Color(d.styles.flavor.Overlay0().Hex))
	}

	indicator := "  "
	if isSelected {
		indicator = lipgloss.NewStyle().
			Foreground(lipgloss.Color(d.styles.flavor.Mauve().Hex)).
			Render("▸ ")
	}

	slot, ok := d.slots[ri.repo.SourceLabel]
	if !ok {
		slot = -1
	}
	badge := d.styles.BadgeStyle(slot).Render("[" + ri.repo.SourceLabel + "]")

	title := titleStyle.Render(ri.repo.Name)
	desc := descStyle.Render(fmt.Sprintf("%s | %s", relTime(ri.repo.LastModified, time.Now()), ri.repo.Path))

	_, _ = fmt.Fprintf(w, "%s%s %s\n%s%s", indicator, title, badge, "    ", desc)
}

// toListItems converts repositories to list items.
func toListItems(repos []discovery.Repo) []list.Item {
	items := make([]list.Item, len(repos))
	for i, r := range repos {
		items[i] = repoItem{repo: r}
	}
	return items
}

// relTime renders a timestamp as a coarse "time ago" label.
func relTime(t, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(d.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy ago", int(d.Hours()/(24*365)))
	}
}
