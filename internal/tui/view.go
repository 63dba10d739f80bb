// pattern: Imperative Shell

package tui

import (
	"fmt"
	"strings"
)

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.confirmOpen {
		return m.confirmView()
	}
	if m.formOpen {
		return m.formView()
	}

	var b strings.Builder

	b.WriteString(m.styles.TitleStyle().Render("Repodeck"))
	b.WriteString("\n")
	b.WriteString(m.searchLine())
	b.WriteString("\n")

	if m.sourcesOpen {
		b.WriteString(m.sourcesPanel())
	} else {
		b.WriteString(m.sourcesSummary())
		b.WriteString("\n\n")
		b.WriteString(m.repoList.View())
	}

	if m.logPanelOpen && m.logReady {
		b.WriteString("\n")
		b.WriteString(m.styles.SubtitleStyle().Render(strings.Repeat("─", max(1, m.width-2))))
		b.WriteString("\n")
		b.WriteString(m.logViewport.View())
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.helpLine())

	return b.String()
}

// searchLine renders the search input line.
func (m Model) searchLine() string {
	label := m.styles.SubtitleStyle().Render("Search: ")
	if m.searchFocused {
		return label + m.styles.InfoStyle().Render(m.searchQuery) +
			m.styles.AccentStyle().Render("_")
	}
	if m.searchQuery != "" {
		return label + m.styles.InfoStyle().Render(m.searchQuery)
	}
	sort := "recent"
	if m.sortMode == SortName {
		sort = "name"
	}
	return label + m.styles.SubtitleStyle().Render("(press / to search, sorted by "+sort+")")
}

// sourcesSummary renders the one-line list of source badges shown above
// the repository list.
func (m Model) sourcesSummary() string {
	sources := m.registry.List()
	if len(sources) == 0 {
		return m.styles.SubtitleStyle().Render("No sources configured. Press s to manage sources.")
	}

	parts := make([]string, 0, len(sources))
	for i, s := range sources {
		slot := i
		if !s.Enabled {
			slot = -1
		}
		parts = append(parts, m.styles.BadgeStyle(slot).Render("["+s.Label+"]"))
	}
	return strings.Join(parts, " ")
}

// sourcesPanel renders the source management panel.
func (m Model) sourcesPanel() string {
	var b strings.Builder
	b.WriteString(m.styles.AccentStyle().Render("Sources"))
	b.WriteString("\n\n")

	sources := m.registry.List()
	if len(sources) == 0 {
		b.WriteString(m.styles.SubtitleStyle().Render("  No sources configured. Press a to add one."))
		b.WriteString("\n")
	}

	for i, s := range sources {
		cursor := "  "
		if i == m.sourceCursor {
			cursor = m.styles.AccentStyle().Render("▸ ")
		}
		check := "[ ]"
		if s.Enabled {
			check = "[x]"
		}
		slot := i
		if !s.Enabled {
			slot = -1
		}
		label := m.styles.BadgeStyle(slot).Render(s.Label)
		path := m.styles.SubtitleStyle().Render(s.Path)
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n", cursor, check, label, path))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.HelpStyle().Render("space toggle · a add · e edit · d remove · esc back"))
	b.WriteString("\n")
	return b.String()
}

// formView renders the source add/edit form.
func (m Model) formView() string {
	var b strings.Builder

	title := "Add Source"
	if m.formEditing {
		title = "Edit Source"
	}
	b.WriteString(m.styles.TitleStyle().Render(title))
	b.WriteString("\n")

	b.WriteString(m.renderFormField("Label", m.formLabel, m.formFocus == fieldLabel))
	b.WriteString("\n")
	b.WriteString(m.renderFormField("Path", m.formPath, m.formFocus == fieldPath))
	b.WriteString("\n")

	if m.formError != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.ErrorStyle().Render(m.formError))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.HelpStyle().Render("enter save · tab next field · esc cancel"))

	return m.styles.BoxStyle().Render(b.String())
}

// renderFormField renders a labelled form input with a cursor when focused.
func (m Model) renderFormField(label, value string, focused bool) string {
	labelStyle := m.styles.SubtitleStyle()
	if focused {
		labelStyle = m.styles.AccentStyle()
	}
	line := labelStyle.Render(label+": ") + m.styles.InfoStyle().Render(value)
	if focused {
		line += m.styles.AccentStyle().Render("_")
	}
	return line
}

// confirmView renders the remove confirmation dialog.
func (m Model) confirmView() string {
	var b strings.Builder
	b.WriteString(m.styles.ErrorStyle().Render("Remove source?"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.InfoStyle().Render("This removes " + m.confirmTarget + " from the source list."))
	b.WriteString("\n")
	b.WriteString(m.styles.SubtitleStyle().Render("Repositories on disk are not touched."))
	b.WriteString("\n\n")
	b.WriteString(m.styles.HelpStyle().Render("y/enter confirm · n/esc cancel"))
	return m.styles.BoxStyle().Render(b.String())
}

// statusLine renders the status bar.
func (m Model) statusLine() string {
	if m.statusMessage == "" {
		return ""
	}
	if m.statusIsError {
		return m.styles.ErrorStyle().Render(m.statusMessage)
	}
	return m.styles.SuccessStyle().Render(m.statusMessage)
}

// helpLine renders the contextual key hints.
func (m Model) helpLine() string {
	var hints string
	switch {
	case m.sourcesOpen:
		hints = "↑/↓ move · space toggle · esc back · ctrl+d quit"
	case m.searchFocused:
		hints = "type to filter · enter keep · esc clear · ctrl+d quit"
	default:
		hints = "enter open · / search · tab sort · r rescan · s sources · l logs · ctrl+d quit"
	}
	return m.styles.HelpStyle().Render(hints)
}
