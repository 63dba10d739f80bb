package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"repodeck/internal/config"
	"repodeck/internal/launcher"
	"repodeck/internal/logging"
	"repodeck/internal/registry"
)

// newTestModel builds a model over a temp directory holding one source
// root with two repositories and one plain directory.
func newTestModel(t *testing.T) Model {
	t.Helper()

	root := filepath.Join(t.TempDir(), "repos")
	makeRepo(t, root, "alpha")
	makeRepo(t, root, "beta")
	if err := os.MkdirAll(filepath.Join(root, "notes"), 0o755); err != nil {
		t.Fatalf("failed to create plain dir: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Sources = []config.Source{{Label: "Work", Path: root}}
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	reg := registry.New([]registry.Source{{Label: "Work", Path: root, Enabled: true}})

	lm, err := logging.NewManager(logging.Config{
		FilePath:       filepath.Join(t.TempDir(), "test.log"),
		ChannelBufSize: 100,
	})
	if err != nil {
		t.Fatalf("failed to create log manager: %v", err)
	}
	t.Cleanup(func() { _ = lm.Close() })

	launch := launcher.NewWithLookPath("", lm.For("launch"), func(name string) (string, error) {
		return "", os.ErrNotExist
	})

	m := NewModel(&cfg, configPath, reg, launch, lm)
	m.width = 100
	m.height = 40
	m.resizePanels()
	return m
}

func makeRepo(t *testing.T, root, name string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(root, name, ".git"), 0o755); err != nil {
		t.Fatalf("failed to create repo %s: %v", name, err)
	}
}

// runScan executes the model's scan command and feeds the result back
// through Update, mimicking one pass of the event loop.
func runScan(t *testing.T, m Model) Model {
	t.Helper()
	cmd := m.scanCmd()
	if cmd == nil {
		t.Fatal("scanCmd returned nil")
	}
	updated, _ := m.Update(cmd())
	return updated.(Model)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel_Defaults(t *testing.T) {
	m := newTestModel(t)

	if m.sortMode != SortRecent {
		t.Errorf("default sort mode: got %v, want SortRecent", m.sortMode)
	}
	if m.SearchQuery() != "" {
		t.Errorf("expected empty search query, got %q", m.SearchQuery())
	}
	if m.IsSourcesOpen() || m.IsFormOpen() || m.IsConfirmOpen() {
		t.Error("expected all panels closed initially")
	}
}

func TestInit_ReturnsCommand(t *testing.T) {
	m := newTestModel(t)
	if m.Init() == nil {
		t.Fatal("Init returned nil command")
	}
}

func TestScan_PopulatesCatalogAndList(t *testing.T) {
	m := newTestModel(t)
	m = runScan(t, m)

	if len(m.Catalog()) != 2 {
		t.Fatalf("catalog size: got %d, want 2", len(m.Catalog()))
	}
	if got := len(m.repoList.Items()); got != 2 {
		t.Errorf("list items: got %d, want 2", got)
	}
	if m.StatusMessage() != "2 repositories" {
		t.Errorf("status: got %q", m.StatusMessage())
	}
}

func TestScan_SkipsDisabledSources(t *testing.T) {
	m := newTestModel(t)
	if err := m.registry.SetEnabled("Work", false); err != nil {
		t.Fatalf("SetEnabled failed: %v", err)
	}
	m = runScan(t, m)

	if len(m.Catalog()) != 0 {
		t.Errorf("catalog size with disabled source: got %d, want 0", len(m.Catalog()))
	}
}

func TestRefreshList_QueryFilters(t *testing.T) {
	m := newTestModel(t)
	m = runScan(t, m)

	m.searchQuery = "alpha"
	m.refreshList()

	items := m.repoList.Items()
	if len(items) != 1 {
		t.Fatalf("filtered items: got %d, want 1", len(items))
	}
	if items[0].(repoItem).repo.Name != "alpha" {
		t.Errorf("filtered item: got %q, want alpha", items[0].(repoItem).repo.Name)
	}
}

func TestRefreshList_EmptyQueryShowsAll(t *testing.T) {
	m := newTestModel(t)
	m = runScan(t, m)

	m.searchQuery = "alpha"
	m.refreshList()
	m.searchQuery = ""
	m.refreshList()

	if got := len(m.repoList.Items()); got != 2 {
		t.Errorf("items after clearing query: got %d, want 2", got)
	}
}

func TestPersistSources_WritesConfig(t *testing.T) {
	m := newTestModel(t)
	m.persistSources()

	cfg, err := config.LoadFrom(m.configPath)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(cfg.Sources) != 1 || cfg.Sources[0].Label != "Work" {
		t.Errorf("persisted sources: got %+v", cfg.Sources)
	}
	if cfg.Sources[0].Disabled {
		t.Error("enabled source persisted as disabled")
	}
}

func TestLaunchSelected_ReportsFailure(t *testing.T) {
	m := newTestModel(t)
	m = runScan(t, m)

	cmd := m.launchSelected()
	if cmd == nil {
		t.Fatal("launchSelected returned nil with a selected item")
	}

	msg, ok := cmd().(launchResultMsg)
	if !ok {
		t.Fatalf("unexpected message type %T", cmd())
	}
	if msg.err == nil {
		t.Fatal("expected launch error with no editor available")
	}

	updated, _ := m.Update(msg)
	m = updated.(Model)
	if !m.statusIsError {
		t.Error("launch failure should set an error status")
	}
}

func TestLaunchSelected_EmptyList(t *testing.T) {
	m := newTestModel(t)
	if cmd := m.launchSelected(); cmd != nil {
		t.Error("expected nil command with no items")
	}
}
