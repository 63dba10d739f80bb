package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source is a persisted source root entry. Order in the file is the
// registry's insertion order. The zero value of Disabled keeps sources
// enabled by default.
type Source struct {
	Label    string `yaml:"label"`
	Path     string `yaml:"path"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

type Config struct {
	Theme    string   `yaml:"theme"`
	Editor   string   `yaml:"editor"`
	LogLevel string   `yaml:"log_level"`
	Sources  []Source `yaml:"sources"`
}

func DefaultConfig() Config {
	return Config{
		Theme: "mocha",
	}
}

func Load() (Config, error) {
	return LoadFrom(getConfigPath())
}

// LoadFromDir loads the config from the given directory instead of the
// default location.
func LoadFromDir(dir string) (Config, error) {
	return LoadFrom(filepath.Join(dir, "config.yaml"))
}

// LoadFrom reads the settings file at configPath. A missing file is not an
// error; a malformed file returns the defaults alongside the parse error so
// the caller can log it and continue.
func LoadFrom(configPath string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", configPath, err)
	}

	if cfg.Theme == "" {
		cfg.Theme = "mocha"
	}

	return cfg, nil
}

// SaveTo writes the settings file at configPath, creating parent
// directories as needed. Called after every successful source mutation.
func (c Config) SaveTo(configPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0644)
}

// Path returns the config file location for the given directory override,
// falling back to the default location when dir is empty.
func Path(dir string) string {
	if dir != "" {
		return filepath.Join(dir, "config.yaml")
	}
	return getConfigPath()
}

func getConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "repodeck", "config.yaml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "repodeck", "config.yaml")
	}

	return filepath.Join(home, ".config", "repodeck", "config.yaml")
}
