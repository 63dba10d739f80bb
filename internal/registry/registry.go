// pattern: Functional Core

package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Validation errors returned by Add, Rename, and Remove. Callers match with
// errors.Is and translate to user-facing messages.
var (
	ErrEmptyInput     = errors.New("label and path must not be empty")
	ErrDuplicateLabel = errors.New("duplicate label")
	ErrInvalidPath    = errors.New("path does not exist or is not a directory")
	ErrNotFound       = errors.New("source not found")
)

// Source is a labeled root directory to scan for repositories.
type Source struct {
	Label   string
	Path    string
	Enabled bool
}

// StatFunc is the function signature for checking a path on disk.
type StatFunc func(path string) (os.FileInfo, error)

// Registry holds the ordered set of source roots. Labels are unique; order
// is insertion order and survives renames.
type Registry struct {
	sources []Source
	stat    StatFunc
}

// New creates a registry seeded with the given sources. Seed entries are
// accepted as-is: persisted settings may reference paths that no longer
// exist (an unmounted drive is a normal condition, not an error).
func New(sources []Source) *Registry {
	return NewWithStat(sources, os.Stat)
}

// NewWithStat creates a registry using the provided stat function for path
// validation.
func NewWithStat(sources []Source, stat StatFunc) *Registry {
	r := &Registry{stat: stat}
	r.sources = append(r.sources, sources...)
	return r
}

// DefaultSources returns the built-in source roots under the given base
// directory, used on first run or when settings are unreadable.
func DefaultSources(baseDir string) []Source {
	root := filepath.Join(baseDir, "Development", "git-repositories")
	return []Source{
		{Label: "My Repos", Path: filepath.Join(root, "My-Repos"), Enabled: true},
		{Label: "My Forks", Path: filepath.Join(root, "My-Forks"), Enabled: true},
		{Label: "My Clones", Path: filepath.Join(root, "Cloned-Repos"), Enabled: true},
	}
}

// Add inserts a new source at the end of the list. The path must be an
// existing directory.
func (r *Registry) Add(label, path string) error {
	if err := r.validate(label, path); err != nil {
		return err
	}
	if r.indexOf(label) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
	}
	r.sources = append(r.sources, Source{Label: label, Path: path, Enabled: true})
	return nil
}

// Rename replaces the source named oldLabel with newLabel/newPath in place,
// preserving its position and enabled state. Label and path change together,
// matching the edit dialog where both fields are edited in one step. The
// duplicate check is skipped when the label is unchanged.
func (r *Registry) Rename(oldLabel, newLabel, newPath string) error {
	idx := r.indexOf(oldLabel)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, oldLabel)
	}
	if err := r.validate(newLabel, newPath); err != nil {
		return err
	}
	if newLabel != oldLabel && r.indexOf(newLabel) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateLabel, newLabel)
	}
	r.sources[idx].Label = newLabel
	r.sources[idx].Path = newPath
	return nil
}

// Remove deletes the source with the given label.
func (r *Registry) Remove(label string) error {
	idx := r.indexOf(label)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, label)
	}
	r.sources = append(r.sources[:idx], r.sources[idx+1:]...)
	return nil
}

// SetEnabled toggles whether a source participates in scans.
func (r *Registry) SetEnabled(label string, enabled bool) error {
	idx := r.indexOf(label)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, label)
	}
	r.sources[idx].Enabled = enabled
	return nil
}

// List returns a copy of all sources in insertion order.
func (r *Registry) List() []Source {
	out := make([]Source, len(r.sources))
	copy(out, r.sources)
	return out
}

// Enabled returns a copy of the enabled sources in insertion order.
func (r *Registry) Enabled() []Source {
	var out []Source
	for _, s := range r.sources {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of registered sources.
func (r *Registry) Len() int {
	return len(r.sources)
}

func (r *Registry) validate(label, path string) error {
	if strings.TrimSpace(label) == "" || strings.TrimSpace(path) == "" {
		return ErrEmptyInput
	}
	info, err := r.stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	return nil
}

func (r *Registry) indexOf(label string) int {
	for i, s := range r.sources {
		if s.Label == label {
			return i
		}
	}
	return -1
}
