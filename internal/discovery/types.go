// pattern: Functional Core

package discovery

import "time"

// Root is a labeled directory to scan for working copies.
type Root struct {
	Label string // Source label the repositories are attributed to
	Path  string // Absolute path to the root directory
}

// Repo represents a git working copy found under a source root.
type Repo struct {
	Name         string    // Final path segment of the repository directory
	Path         string    // Absolute path to the working copy root
	SourceLabel  string    // Label of the root it was discovered under
	LastModified time.Time // Modification time of the marker directory
}

// Catalog maps repository name to its entry. It is rebuilt in full on every
// scan; when two roots contain a repository with the same name, the
// later-scanned root wins.
type Catalog map[string]Repo
