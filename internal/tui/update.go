// pattern: Imperative Shell

package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"repodeck/internal/discovery"
	"repodeck/internal/logging"
)

// doubleCtrlCWindow is the maximum time between two ctrl+c presses to trigger quit.
const doubleCtrlCWindow = 500 * time.Millisecond

// logPanelHeight is the number of rows the log panel occupies when open.
const logPanelHeight = 8

// catalogMsg delivers the result of a discovery scan.
type catalogMsg struct {
	catalog discovery.Catalog
}

// launchResultMsg is sent after an editor launch attempt.
type launchResultMsg struct {
	name string
	err  error
}

// logEntriesMsg delivers log entries from the logging channel.
type logEntriesMsg struct {
	entries []logging.LogEntry
}

// clearStatusMsg is sent after a timed delay to clear the status bar.
type clearStatusMsg struct{}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanels()
		return m, nil

	case tea.KeyMsg:
		// Quit shortcuts come first (ctrl+d always, ctrl+c double-press)
		if msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyCtrlC {
			now := time.Now()
			if !m.lastCtrlCTime.IsZero() && now.Sub(m.lastCtrlCTime) <= doubleCtrlCWindow {
				return m, tea.Quit
			}
			m.lastCtrlCTime = now
			m.setStatus("press ctrl+c again to quit")
			return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
				return clearStatusMsg{}
			})
		}

		if m.confirmOpen {
			return m.handleConfirmKey(msg)
		}
		if m.formOpen {
			return m.handleFormKey(msg)
		}
		if m.sourcesOpen {
			return m.handleSourcesKey(msg)
		}
		if m.searchFocused {
			return m.handleSearchKey(msg)
		}
		return m.handleMainKey(msg)

	case catalogMsg:
		m.catalog = msg.catalog
		m.refreshList()
		m.setStatus(fmt.Sprintf("%d repositories", len(m.catalog)))
		return m, nil

	case launchResultMsg:
		if msg.err != nil {
			m.logger.Error("editor launch failed", "name", msg.name, "error", msg.err)
			m.setError("Failed to open " + msg.name + ": " + msg.err.Error())
			return m, nil
		}
		m.setStatus("Opened " + msg.name + " in editor")
		return m, nil

	case logEntriesMsg:
		m.logEntries = append(m.logEntries, msg.entries...)
		if len(m.logEntries) > maxLogEntries {
			m.logEntries = m.logEntries[len(m.logEntries)-maxLogEntries:]
		}
		if m.logPanelOpen && m.logReady {
			m.updateLogViewport()
		}
		return m, m.waitForLogs()

	case clearStatusMsg:
		if m.statusMessage == "press ctrl+c again to quit" {
			m.clearStatus()
		}
		return m, nil
	}

	return m, nil
}

// handleMainKey processes key events on the main repository list.
func (m Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m, m.launchSelected()

	case tea.KeyTab:
		if m.sortMode == SortRecent {
			m.sortMode = SortName
		} else {
			m.sortMode = SortRecent
		}
		m.refreshList()
		return m, nil

	case tea.KeyEscape:
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.refreshList()
			return m, nil
		}
		m.clearStatus()
		return m, nil
	}

	switch msg.String() {
	case "/":
		m.searchFocused = true
		return m, nil

	case "r":
		m.logger.Debug("rescan requested")
		m.setStatus("Rescanning...")
		return m, m.scanCmd()

	case "s":
		m.sourcesOpen = true
		m.sourceCursor = 0
		return m, nil

	case "a":
		m.openAddForm()
		return m, nil

	case "l", "L":
		m.logPanelOpen = !m.logPanelOpen
		m.resizePanels()
		return m, nil

	case "j":
		if m.logPanelOpen && m.logReady {
			m.logViewport.ScrollDown(1)
			return m, nil
		}

	case "k":
		if m.logPanelOpen && m.logReady {
			m.logViewport.ScrollUp(1)
			return m, nil
		}

	case "g":
		if m.logPanelOpen && m.logReady {
			m.logViewport.GotoTop()
			return m, nil
		}

	case "G":
		if m.logPanelOpen && m.logReady {
			m.logViewport.GotoBottom()
			return m, nil
		}
	}

	// Forward to list for navigation
	var cmd tea.Cmd
	m.repoList, cmd = m.repoList.Update(msg)
	return m, cmd
}

// handleSearchKey processes key events while the search input has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.searchFocused = false
		m.searchQuery = ""
		m.refreshList()
		return m, nil

	case tea.KeyEnter:
		// Keep the filter, return focus to the list
		m.searchFocused = false
		return m, nil

	case tea.KeyUp, tea.KeyDown:
		// Allow list navigation without leaving the search box
		var cmd tea.Cmd
		m.repoList, cmd = m.repoList.Update(msg)
		return m, cmd

	case tea.KeyBackspace:
		if len(m.searchQuery) > 0 {
			runes := []rune(m.searchQuery)
			m.searchQuery = string(runes[:len(runes)-1])
			m.refreshList()
		}
		return m, nil

	case tea.KeyRunes:
		m.searchQuery += string(msg.Runes)
		m.refreshList()
		return m, nil

	case tea.KeySpace:
		m.searchQuery += " "
		m.refreshList()
		return m, nil
	}

	return m, nil
}

// handleSourcesKey processes key events while the sources panel has focus.
func (m Model) handleSourcesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sources := m.registry.List()

	switch msg.Type {
	case tea.KeyEscape:
		m.sourcesOpen = false
		return m, nil

	case tea.KeyUp:
		if m.sourceCursor > 0 {
			m.sourceCursor--
		}
		return m, nil

	case tea.KeyDown:
		if m.sourceCursor < len(sources)-1 {
			m.sourceCursor++
		}
		return m, nil

	case tea.KeySpace:
		if m.sourceCursor < len(sources) {
			s := sources[m.sourceCursor]
			if err := m.registry.SetEnabled(s.Label, !s.Enabled); err != nil {
				m.setError(err.Error())
				return m, nil
			}
			m.logger.Info("source toggled", "label", s.Label, "enabled", !s.Enabled)
			m.persistSources()
			return m, m.scanCmd()
		}
		return m, nil
	}

	switch msg.String() {
	case "s":
		m.sourcesOpen = false
		return m, nil

	case "a":
		m.openAddForm()
		return m, nil

	case "e":
		if m.sourceCursor < len(sources) {
			m.openEditForm(sources[m.sourceCursor])
		}
		return m, nil

	case "d":
		if m.sourceCursor < len(sources) {
			m.confirmOpen = true
			m.confirmTarget = sources[m.sourceCursor].Label
		}
		return m, nil
	}

	return m, nil
}

// handleConfirmKey processes key events while the remove confirmation is open.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	confirmed := msg.Type == tea.KeyEnter || msg.String() == "y" || msg.String() == "Y"
	cancelled := msg.Type == tea.KeyEscape || msg.String() == "n" || msg.String() == "N"

	switch {
	case confirmed:
		target := m.confirmTarget
		m.confirmOpen = false
		m.confirmTarget = ""
		if err := m.registry.Remove(target); err != nil {
			m.setError(friendlyError(err))
			return m, nil
		}
		m.logger.Info("source removed", "label", target)
		if m.sourceCursor >= m.registry.Len() && m.sourceCursor > 0 {
			m.sourceCursor--
		}
		m.persistSources()
		m.refreshDelegate()
		m.setStatus("Source removed: " + target)
		return m, m.scanCmd()

	case cancelled:
		m.confirmOpen = false
		m.confirmTarget = ""
		return m, nil
	}

	return m, nil
}

// resizePanels recomputes the list and log viewport dimensions.
func (m *Model) resizePanels() {
	if m.width == 0 || m.height == 0 {
		return
	}

	// Header, search line, sources line, status bar, and help line
	chrome := 7
	listHeight := m.height - chrome
	if m.logPanelOpen {
		listHeight -= logPanelHeight + 1
	}
	if listHeight < 1 {
		listHeight = 1
	}
	m.repoList.SetSize(m.width-4, listHeight)

	if m.logPanelOpen {
		if !m.logReady {
			m.logViewport = viewport.New(m.width-2, logPanelHeight)
			m.logReady = true
		} else {
			m.logViewport.Width = m.width - 2
			m.logViewport.Height = logPanelHeight
		}
		m.updateLogViewport()
	}
}

// updateLogViewport re-renders the log panel content and follows the tail.
func (m *Model) updateLogViewport() {
	if !m.logReady {
		return
	}
	lines := make([]string, len(m.logEntries))
	for i, e := range m.logEntries {
		lines[i] = e.String()
	}
	m.logViewport.SetContent(joinLines(lines))
	m.logViewport.GotoBottom()
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
