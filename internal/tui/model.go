package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"repodeck/internal/config"
	"repodeck/internal/discovery"
	"repodeck/internal/launcher"
	"repodeck/internal/logging"
	"repodeck/internal/registry"
)

// SortMode selects the ordering of the unfiltered repository list.
type SortMode int

const (
	SortRecent SortMode = iota
	SortName
)

// formField identifies the focused source form input.
type formField int

const (
	fieldLabel formField = iota
	fieldPath
	formFieldCount
)

// maxLogEntries bounds the in-memory log panel history.
const maxLogEntries = 500

// Model represents the TUI application state.
type Model struct {
	width  int
	height int
	styles *Styles

	cfg        *config.Config
	configPath string
	registry   *registry.Registry
	scanner    *discovery.Scanner
	catalog    discovery.Catalog
	launcher   *launcher.Launcher
	logManager *logging.Manager
	logger     *logging.ScopedLogger

	repoList     list.Model
	repoDelegate repoDelegate

	searchQuery   string
	searchFocused bool
	sortMode      SortMode

	sourcesOpen  bool
	sourceCursor int

	formOpen    bool
	formEditing bool
	formTarget  string // label being edited, when formEditing
	formLabel   string
	formPath    string
	formFocus   formField
	formError   string

	confirmOpen   bool
	confirmTarget string

	logPanelOpen bool
	logViewport  viewport.Model
	logReady     bool
	logEntries   []logging.LogEntry

	statusMessage string
	statusIsError bool

	lastCtrlCTime time.Time
}

// NewModel creates a new TUI model wired to the given collaborators.
func NewModel(cfg *config.Config, configPath string, reg *registry.Registry, launch *launcher.Launcher, lm *logging.Manager) Model {
	styles := NewStyles(cfg.Theme)
	delegate := newRepoDelegate(styles, sourceSlots(reg.List()))

	repoList := list.New([]list.Item{}, delegate, 0, 0)
	repoList.SetShowTitle(false)
	repoList.SetShowStatusBar(false)
	repoList.SetFilteringEnabled(false)
	repoList.SetShowHelp(false)

	return Model{
		styles:       styles,
		cfg:          cfg,
		configPath:   configPath,
		registry:     reg,
		scanner:      discovery.NewScanner(),
		catalog:      make(discovery.Catalog),
		launcher:     launch,
		logManager:   lm,
		logger:       lm.For("tui"),
		repoList:     repoList,
		repoDelegate: delegate,
	}
}

// Init returns the initial command to run.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.scanCmd(),
		m.waitForLogs(),
	)
}

// scanCmd returns a command that rescans the enabled roots and delivers a
// fresh catalog. The root list is captured on the event loop; the closure
// itself only touches the scanner, which holds no shared state.
func (m Model) scanCmd() tea.Cmd {
	roots := enabledRoots(m.registry)
	scanner := m.scanner
	logger := m.logger
	return func() tea.Msg {
		catalog := scanner.Scan(roots)
		logger.Debug("scan finished", "roots", len(roots), "repos", len(catalog))
		return catalogMsg{catalog: catalog}
	}
}

// launchSelected returns a command that opens the selected repository in
// the external editor.
func (m Model) launchSelected() tea.Cmd {
	item, ok := m.repoList.SelectedItem().(repoItem)
	if !ok {
		return nil
	}
	repo := item.repo
	launch := m.launcher
	m.logger.Info("opening repository", "name", repo.Name, "path", repo.Path)
	return func() tea.Msg {
		return launchResultMsg{name: repo.Name, err: launch.Open(repo.Path)}
	}
}

// waitForLogs returns a command that blocks for the next log entry and
// drains whatever else is already buffered.
func (m Model) waitForLogs() tea.Cmd {
	if m.logManager == nil {
		return nil
	}
	ch := m.logManager.Entries()
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		entries := []logging.LogEntry{entry}
		for {
			select {
			case e, ok := <-ch:
				if !ok {
					return logEntriesMsg{entries: entries}
				}
				entries = append(entries, e)
			default:
				return logEntriesMsg{entries: entries}
			}
		}
	}
}

// refreshList recomputes the visible list from the catalog: the query view
// while a search is active, otherwise the recency or name view.
func (m *Model) refreshList() {
	var repos []discovery.Repo
	switch {
	case m.searchQuery != "":
		repos = discovery.ByQuery(m.catalog, m.searchQuery)
	case m.sortMode == SortRecent:
		repos = discovery.ByRecency(m.catalog)
	default:
		repos = discovery.ByName(m.catalog)
	}
	m.repoList.SetItems(toListItems(repos))
}

// refreshDelegate rebuilds badge slot assignments after a registry change.
func (m *Model) refreshDelegate() {
	m.repoDelegate = newRepoDelegate(m.styles, sourceSlots(m.registry.List()))
	m.repoList.SetDelegate(m.repoDelegate)
}

// persistSources writes the registry contents back to the settings file.
func (m *Model) persistSources() {
	sources := m.registry.List()
	cfgSources := make([]config.Source, len(sources))
	for i, s := range sources {
		cfgSources[i] = config.Source{Label: s.Label, Path: s.Path, Disabled: !s.Enabled}
	}
	m.cfg.Sources = cfgSources
	if err := m.cfg.SaveTo(m.configPath); err != nil {
		m.logger.Error("failed to save settings", "path", m.configPath, "error", err)
		m.setError("Failed to save settings: " + err.Error())
	}
}

func (m *Model) setStatus(msg string) {
	m.statusMessage = msg
	m.statusIsError = false
}

func (m *Model) setError(msg string) {
	m.statusMessage = msg
	m.statusIsError = true
}

func (m *Model) clearStatus() {
	m.statusMessage = ""
	m.statusIsError = false
}

// enabledRoots converts the enabled registry sources into scan roots.
func enabledRoots(reg *registry.Registry) []discovery.Root {
	sources := reg.Enabled()
	roots := make([]discovery.Root, len(sources))
	for i, s := range sources {
		roots[i] = discovery.Root{Label: s.Label, Path: s.Path}
	}
	return roots
}

// sourceSlots maps each source label to its registry position.
func sourceSlots(sources []registry.Source) map[string]int {
	slots := make(map[string]int, len(sources))
	for i, s := range sources {
		slots[s.Label] = i
	}
	return slots
}

// Accessors used by the view and tests.

// Catalog returns the current catalog.
func (m Model) Catalog() discovery.Catalog {
	return m.catalog
}

// SearchQuery returns the active search query.
func (m Model) SearchQuery() string {
	return m.searchQuery
}

// IsSourcesOpen returns true while the sources panel has focus.
func (m Model) IsSourcesOpen() bool {
	return m.sourcesOpen
}

// IsConfirmOpen returns true while the remove confirmation is showing.
func (m Model) IsConfirmOpen() bool {
	return m.confirmOpen
}

// StatusMessage returns the current status bar message.
func (m Model) StatusMessage() string {
	return m.statusMessage
}
