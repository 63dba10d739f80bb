// pattern: Imperative Shell

package logging

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// ChannelSink implements zapcore.WriteSyncer, parsing each JSON log line
// into a LogEntry and delivering it to a buffered channel. Delivery never
// blocks the logger: when the channel is full the oldest entry is dropped.
type ChannelSink struct {
	entries chan LogEntry
	mu      sync.Mutex
	closed  bool
}

// NewChannelSink creates a sink with the given buffer size.
func NewChannelSink(bufferSize int) *ChannelSink {
	return &ChannelSink{entries: make(chan LogEntry, bufferSize)}
}

// Write implements io.Writer. Unparseable lines are dropped rather than
// surfaced, so a display problem can never break logging.
func (s *ChannelSink) Write(p []byte) (int, error) {
	entry, err := parseEntry(p)
	if err != nil {
		return len(p), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, fmt.Errorf("write to closed channel sink")
	}

	for {
		select {
		case s.entries <- entry:
			return len(p), nil
		default:
		}
		select {
		case <-s.entries: // full: drop oldest and retry
		default:
		}
	}
}

// Sync implements zapcore.WriteSyncer.
func (s *ChannelSink) Sync() error {
	return nil
}

// Close closes the entries channel. Safe to call more than once.
func (s *ChannelSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.entries)
	}
	return nil
}

// Entries returns the channel for consuming parsed log entries.
func (s *ChannelSink) Entries() <-chan LogEntry {
	return s.entries
}

// parseEntry converts one JSON-encoded zap line into a LogEntry.
func parseEntry(data []byte) (LogEntry, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return LogEntry{}, err
	}

	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     "INFO",
		Scope:     "app",
		Fields:    make(map[string]any),
	}

	if msg, ok := raw["msg"].(string); ok {
		entry.Message = msg
		delete(raw, "msg")
	}
	if level, ok := raw["level"].(string); ok {
		entry.Level = NormalizeLevel(level)
		delete(raw, "level")
	}
	if logger, ok := raw["logger"].(string); ok {
		entry.Scope = logger
		delete(raw, "logger")
	}
	if ts, ok := raw["ts"].(float64); ok {
		sec := int64(ts)
		nsec := int64((ts - float64(sec)) * 1e9)
		entry.Timestamp = time.Unix(sec, nsec)
		delete(raw, "ts")
	}

	delete(raw, "caller")
	delete(raw, "stacktrace")

	for k, v := range raw {
		entry.Fields[k] = v
	}

	return entry, nil
}
