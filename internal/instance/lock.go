// pattern: Imperative Shell

package instance

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileName = "repodeck.lock"

// Lock acquires an exclusive file lock for single-instance enforcement.
// Returns the flock handle (caller must defer Release) or an error if
// another instance already holds the lock.
func Lock(dataDir string) (*flock.Flock, error) {
	fl := flock.New(filepath.Join(dataDir, lockFileName))
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another repodeck instance is already running")
	}
	return fl, nil
}

// Release releases the file lock.
func Release(fl *flock.Flock) {
	if fl != nil {
		_ = fl.Unlock()
	}
}
