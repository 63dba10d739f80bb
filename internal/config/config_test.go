package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFullConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	configContent := `
theme: latte
editor: windsurf
log_level: debug
sources:
  - label: My Repos
    path: /home/user/Development/git-repositories/My-Repos
  - label: Scratch
    path: /home/user/scratch
    disabled: true
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Theme != "latte" {
		t.Errorf("Theme: got %q, want %q", cfg.Theme, "latte")
	}
	if cfg.Editor != "windsurf" {
		t.Errorf("Editor: got %q, want %q", cfg.Editor, "windsurf")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, "debug")
	}

	if len(cfg.Sources) != 2 {
		t.Fatalf("Sources: got %d entries, want 2", len(cfg.Sources))
	}
	if cfg.Sources[0].Label != "My Repos" || cfg.Sources[0].Disabled {
		t.Errorf("first source: %+v", cfg.Sources[0])
	}
	if cfg.Sources[1].Label != "Scratch" || !cfg.Sources[1].Disabled {
		t.Errorf("second source: %+v", cfg.Sources[1])
	}
}

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/config.yaml")
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Theme != "mocha" {
		t.Errorf("Theme default: got %q, want %q", cfg.Theme, "mocha")
	}
	if len(cfg.Sources) != 0 {
		t.Errorf("expected no sources, got %d", len(cfg.Sources))
	}
}

func TestLoadFrom_MalformedFileFallsBackToDefaults(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("{{{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(configPath)
	if err == nil {
		t.Error("expected a parse error to be reported")
	}
	// Defaults must still be usable despite the error
	if cfg.Theme != "mocha" {
		t.Errorf("Theme default: got %q, want %q", cfg.Theme, "mocha")
	}
	if len(cfg.Sources) != 0 {
		t.Errorf("expected no sources after parse failure, got %d", len(cfg.Sources))
	}
}

func TestSaveAndReload_PreservesSourceOrder(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Editor = "code"
	cfg.Sources = []Source{
		{Label: "Zeta", Path: "/z"},
		{Label: "Alpha", Path: "/a", Disabled: true},
		{Label: "Mid", Path: "/m"},
	}

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	reloaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(reloaded.Sources) != 3 {
		t.Fatalf("got %d sources, want 3", len(reloaded.Sources))
	}
	for i, want := range []string{"Zeta", "Alpha", "Mid"} {
		if reloaded.Sources[i].Label != want {
			t.Errorf("source %d: got %q, want %q", i, reloaded.Sources[i].Label, want)
		}
	}
	if !reloaded.Sources[1].Disabled {
		t.Error("disabled flag lost on round trip")
	}
	if reloaded.Editor != "code" {
		t.Errorf("Editor: got %q, want %q", reloaded.Editor, "code")
	}
}

func TestPath(t *testing.T) {
	if got := Path("/tmp/override"); got != filepath.Join("/tmp/override", "config.yaml") {
		t.Errorf("override path: got %q", got)
	}

	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := Path(""); got != filepath.Join("/xdg", "repodeck", "config.yaml") {
		t.Errorf("xdg path: got %q", got)
	}
}
