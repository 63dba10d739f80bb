// pattern: Imperative Shell
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"repodeck/internal/config"
	"repodeck/internal/instance"
	"repodeck/internal/launcher"
	"repodeck/internal/logging"
	"repodeck/internal/registry"
	"repodeck/internal/tui"
)

var version = "dev"

func main() {
	configDir := flag.StringP("config-dir", "c", "", "config directory (default: ~/.config/repodeck)")
	editor := flag.StringP("editor", "e", "", "editor command (overrides the configured editor)")
	showVersion := flag.BoolP("version", "v", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("repodeck " + version)
		return
	}

	cfg, configPath, err := loadConfig(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}
	if *editor != "" {
		cfg.Editor = *editor
	}

	reg, err := buildRegistry(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dataDir, err := resolveDataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fl, err := instance.Lock(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer instance.Release(fl)

	logManager, err := logging.NewManager(logging.Config{
		FilePath:       filepath.Join(dataDir, "repodeck.log"),
		MaxSizeMB:      10,
		MaxBackups:     3,
		MaxAgeDays:     7,
		ChannelBufSize: 1000,
		Level:          cfg.LogLevel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logManager.Close() }()

	appLogger := logManager.For("app")
	appLogger.Info("application starting", "version", version, "sources", reg.Len())

	launch := launcher.New(cfg.Editor, logManager.For("launch"))
	model := tui.NewModel(&cfg, configPath, reg, launch, logManager)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		appLogger.Error("application exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	appLogger.Info("application stopped")
}

// loadConfig loads the configuration from the specified directory or the
// default location, returning the config together with the path it will
// be saved back to.
func loadConfig(configDir string) (config.Config, string, error) {
	if configDir != "" {
		cfg, err := config.LoadFromDir(configDir)
		return cfg, config.Path(configDir), err
	}
	cfg, err := config.Load()
	return cfg, config.Path(""), err
}

// buildRegistry creates the source registry from the configured sources,
// falling back to the default layout under the home directory when none
// are configured. Seed paths are not validated here: a source whose drive
// is unmounted simply yields no repositories during scans.
func buildRegistry(cfg config.Config) (*registry.Registry, error) {
	if len(cfg.Sources) == 0 {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		return registry.New(registry.DefaultSources(home)), nil
	}

	sources := make([]registry.Source, 0, len(cfg.Sources))
	for _, s := range cfg.Sources {
		sources = append(sources, registry.Source{
			Label:   s.Label,
			Path:    s.Path,
			Enabled: !s.Disabled,
		})
	}
	return registry.New(sources), nil
}

// resolveDataDir returns the directory holding the lock file and logs,
// honoring XDG_DATA_HOME and creating the directory when missing.
func resolveDataDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	dir := filepath.Join(base, "repodeck")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}
	return dir, nil
}
