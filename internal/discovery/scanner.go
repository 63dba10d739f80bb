// pattern: Imperative Shell

package discovery

import (
	"os"
	"path/filepath"
	"time"
)

// markerDir is the directory whose presence marks a git working copy. Its
// contents are never read.
const markerDir = ".git"

// Scanner discovers git working copies under configured source roots.
type Scanner struct{}

// NewScanner creates a new repository scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan walks each root one level deep and returns a fresh catalog of the
// working copies found. Roots are visited in the given order; a repository
// name seen under a later root overwrites an earlier one. A missing or
// unreadable root is skipped, never an error — an unmounted drive is a
// normal condition. Per-entry failures skip that entry only.
func (s *Scanner) Scan(roots []Root) Catalog {
	catalog := make(Catalog)

	for _, root := range roots {
		entries, err := os.ReadDir(root.Path)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			repoPath := filepath.Join(root.Path, entry.Name())
			if !isWorkingCopy(repoPath) {
				continue
			}
			catalog[entry.Name()] = Repo{
				Name:         entry.Name(),
				Path:         repoPath,
				SourceLabel:  root.Label,
				LastModified: lastModified(repoPath),
			}
		}
	}

	return catalog
}

// isWorkingCopy reports whether the directory contains a marker subdirectory.
// The marker must itself be a directory; a .git file (as left by git
// worktrees or submodules) does not qualify.
func isWorkingCopy(repoPath string) bool {
	entries, err := os.ReadDir(repoPath)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.Name() == markerDir {
			return entry.IsDir()
		}
	}
	return false
}

// lastModified returns the marker directory's mtime, falling back to the
// repository directory's own mtime if the marker cannot be stat'd.
func lastModified(repoPath string) time.Time {
	if info, err := os.Stat(filepath.Join(repoPath, markerDir)); err == nil {
		return info.ModTime()
	}
	if info, err := os.Stat(repoPath); err == nil {
		return info.ModTime()
	}
	return time.Time{}
}
