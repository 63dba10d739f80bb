// pattern: Imperative Shell

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds configuration for the log manager.
type Config struct {
	FilePath       string // Path to log file
	MaxSizeMB      int    // Max size in MB before rotation
	MaxBackups     int    // Max number of old log files to keep
	MaxAgeDays     int    // Max days to keep old log files
	Level          string // Minimum log level (debug, info, warn, error)
	ChannelBufSize int    // Buffer size for the TUI channel
}

// Provider is an interface for obtaining scoped loggers.
type Provider interface {
	For(scope string) *ScopedLogger
}

// ScopedLogger is a named logger handed out by the manager. Arguments are
// alternating key/value pairs.
type ScopedLogger struct {
	sugar *zap.SugaredLogger
	scope string
}

func (l *ScopedLogger) Debug(msg string, keysAndValues ...any) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l *ScopedLogger) Info(msg string, keysAndValues ...any) {
	l.sugar.Infow(msg, keysAndValues...)
}

func (l *ScopedLogger) Warn(msg string, keysAndValues ...any) {
	l.sugar.Warnw(msg, keysAndValues...)
}

func (l *ScopedLogger) Error(msg string, keysAndValues ...any) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// With returns a logger with the given key/value pairs added to every entry.
func (l *ScopedLogger) With(keysAndValues ...any) *ScopedLogger {
	return &ScopedLogger{sugar: l.sugar.With(keysAndValues...), scope: l.scope}
}

// Scope returns the logger's scope name.
func (l *ScopedLogger) Scope() string {
	return l.scope
}

// Manager writes structured logs to a rotating file and tees them to a
// channel for display in the TUI log panel.
type Manager struct {
	base       *zap.Logger
	sink       *ChannelSink
	fileWriter *lumberjack.Logger

	mu      sync.Mutex
	loggers map[string]*ScopedLogger
}

// NewManager creates a log manager with the given configuration.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.FilePath == "" {
		return nil, fmt.Errorf("FilePath is required")
	}
	if cfg.ChannelBufSize == 0 {
		cfg.ChannelBufSize = 1000
	}
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = 3
	}
	if cfg.MaxAgeDays == 0 {
		cfg.MaxAgeDays = 7
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
		return nil, err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}

	sink := NewChannelSink(cfg.ChannelBufSize)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.EpochTimeEncoder
	encoderCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(fileWriter), level),
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(sink), level),
	)

	return &Manager{
		base:       zap.New(core),
		sink:       sink,
		fileWriter: fileWriter,
		loggers:    make(map[string]*ScopedLogger),
	}, nil
}

// For returns a logger for the given scope. Loggers are cached and reused.
func (m *Manager) For(scope string) *ScopedLogger {
	m.mu.Lock()
	defer m.mu.Unlock()

	if logger, ok := m.loggers[scope]; ok {
		return logger
	}
	logger := &ScopedLogger{
		sugar: m.base.Named(scope).Sugar(),
		scope: scope,
	}
	m.loggers[scope] = logger
	return logger
}

// Entries returns the channel the TUI consumes log entries from.
func (m *Manager) Entries() <-chan LogEntry {
	return m.sink.Entries()
}

// Sync flushes buffered logs.
func (m *Manager) Sync() error {
	return m.base.Sync()
}

// Close syncs and releases all resources.
func (m *Manager) Close() error {
	_ = m.Sync()
	_ = m.sink.Close()
	return m.fileWriter.Close()
}
