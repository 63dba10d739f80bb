// pattern: Functional Core

package logging

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// LogEntry is a parsed log line for display in the TUI log panel.
type LogEntry struct {
	Timestamp time.Time
	Level     string // DEBUG, INFO, WARN, ERROR
	Scope     string // Logger name (e.g. "scan", "tui")
	Message   string
	Fields    map[string]any
}

// String renders the entry as a single display line. Fields are emitted in
// key order so output is stable.
func (e LogEntry) String() string {
	var sb strings.Builder
	sb.WriteString(e.Timestamp.Format("15:04:05"))
	sb.WriteString(" ")
	sb.WriteString(e.Level)
	sb.WriteString(" [")
	sb.WriteString(e.Scope)
	sb.WriteString("] ")
	sb.WriteString(e.Message)

	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, " %s=%v", k, e.Fields[k])
		}
	}

	return sb.String()
}

// NormalizeLevel uppercases a level string, mapping unknown values to INFO.
func NormalizeLevel(level string) string {
	switch strings.ToLower(level) {
	case "debug":
		return "DEBUG"
	case "info":
		return "INFO"
	case "warn", "warning":
		return "WARN"
	case "error":
		return "ERROR"
	default:
		return "INFO"
	}
}
