package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestView_ZeroWidthShowsLoading(t *testing.T) {
	m := newTestModel(t)
	m.width = 0
	if m.View() != "Loading..." {
		t.Errorf("got %q", m.View())
	}
}

func TestView_MainShowsTitleAndSources(t *testing.T) {
	m := newTestModel(t)
	m = runScan(t, m)

	out := m.View()
	if !strings.Contains(out, "Repodeck") {
		t.Error("view should contain the title")
	}
	if !strings.Contains(out, "Work") {
		t.Error("view should contain the source badge")
	}
	if !strings.Contains(out, "alpha") {
		t.Error("view should contain a repository name")
	}
}

func TestView_SearchCursorWhenFocused(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, keyRunes("/"))
	m, _ = press(t, m, keyRunes("al"))

	if !strings.Contains(m.View(), "al") {
		t.Error("view should show the typed query")
	}
}

func TestView_SourcesPanel(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, keyRunes("s"))

	out := m.View()
	if !strings.Contains(out, "Sources") {
		t.Error("view should show the sources panel")
	}
	if !strings.Contains(out, "[x]") {
		t.Error("enabled source should show a checked marker")
	}
}

func TestView_SourcesPanelUncheckedWhenDisabled(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, keyRunes("s"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})

	if !strings.Contains(m.View(), "[ ]") {
		t.Error("disabled source should show an unchecked marker")
	}
}

func TestView_FormReplacesContent(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, keyRunes("a"))

	out := m.View()
	if !strings.Contains(out, "Add Source") {
		t.Error("view should show the add form")
	}
	if strings.Contains(out, "Repodeck") {
		t.Error("form should replace the main screen")
	}
}

func TestView_EditFormTitle(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, keyRunes("s"))
	m, _ = press(t, m, keyRunes("e"))

	if !strings.Contains(m.View(), "Edit Source") {
		t.Error("view should show the edit form")
	}
}

func TestView_ConfirmDialog(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, keyRunes("s"))
	m, _ = press(t, m, keyRunes("d"))

	out := m.View()
	if !strings.Contains(out, "Remove source?") {
		t.Error("view should show the confirmation dialog")
	}
	if !strings.Contains(out, "Work") {
		t.Error("confirmation should name the target source")
	}
}

func TestView_FormErrorShown(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, keyRunes("a"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !strings.Contains(m.View(), "must not be empty") {
		t.Error("view should show the validation error")
	}
}

func TestFriendlyError_FallsBackToErrorString(t *testing.T) {
	err := errFake("boom")
	if friendlyError(err) != "boom" {
		t.Errorf("got %q", friendlyError(err))
	}
}

type errFake string

func (e errFake) Error() string { return string(e) }
