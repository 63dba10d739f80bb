// pattern: Imperative Shell

package launcher

import (
	"fmt"
	"os/exec"

	"repodeck/internal/logging"
)

// LookPathFunc is the function signature for looking up executables.
type LookPathFunc func(name string) (string, error)

// fallbackEditors are tried in order when no editor is configured.
var fallbackEditors = []string{"code", "windsurf"}

// Launcher opens repositories in an external editor. It only spawns the
// process with the repository path as its argument; the editor's lifetime,
// exit code, and output are its own business.
type Launcher struct {
	editor   string
	lookPath LookPathFunc
	logger   *logging.ScopedLogger
}

// New creates a launcher. editor may be empty, in which case the fallback
// chain is consulted at launch time.
func New(editor string, logger *logging.ScopedLogger) *Launcher {
	return NewWithLookPath(editor, logger, exec.LookPath)
}

// NewWithLookPath creates a launcher using the provided executable lookup.
func NewWithLookPath(editor string, logger *logging.ScopedLogger, lookPath LookPathFunc) *Launcher {
	return &Launcher{editor: editor, lookPath: lookPath, logger: logger}
}

// Resolve returns the editor binary to launch. A configured editor must be
// on PATH; otherwise the fallbacks are tried in order.
func (l *Launcher) Resolve() (string, error) {
	if l.editor != "" {
		path, err := l.lookPath(l.editor)
		if err != nil {
			return "", fmt.Errorf("configured editor %q not found: %w", l.editor, err)
		}
		return path, nil
	}
	for _, candidate := range fallbackEditors {
		if path, err := l.lookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no editor found (tried %v); set one in the config file", fallbackEditors)
}

// Open spawns the editor pointed at repoPath and returns without waiting
// for it to exit.
func (l *Launcher) Open(repoPath string) error {
	bin, err := l.Resolve()
	if err != nil {
		return err
	}

	cmd := exec.Command(bin, repoPath)
	if err := cmd.Start(); err != nil {
		l.logger.Error("editor launch failed", "editor", bin, "path", repoPath, "error", err)
		return fmt.Errorf("launch %s: %w", bin, err)
	}
	l.logger.Info("editor launched", "editor", bin, "path", repoPath, "pid", cmd.Process.Pid)

	// Reap the child when it eventually exits so it doesn't zombie
	go func() { _ = cmd.Wait() }()

	return nil
}
