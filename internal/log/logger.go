// Package log is the leveled logger used by the host and the router.
// Output goes to a private file (or any writer) through charmbracelet/log.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	charmlog "github.com/charmbracelet/log"

	"github.com/footprint-tools/cmdtree/internal/domain"
)

// Level is the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level.
// Valid values: "debug", "info", "warn", "error" (case insensitive).
// Returns LevelWarn if the string is not recognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

func (l Level) charm() charmlog.Level {
	switch l {
	case LevelDebug:
		return charmlog.DebugLevel
	case LevelInfo:
		return charmlog.InfoLevel
	case LevelError:
		return charmlog.ErrorLevel
	default:
		return charmlog.WarnLevel
	}
}

// Logger writes leveled, printf-style messages. A nil *Logger discards
// everything.
type Logger struct {
	mu      sync.Mutex
	out     *charmlog.Logger
	closer  io.Closer
	enabled bool
}

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.RWMutex
)

// New creates a logger appending to the file at logPath. The file and its
// directory are only accessible by the current user.
func New(logPath string, minLevel Level) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	if info, err := os.Stat(logPath); err == nil && info.Mode().Perm() != 0600 {
		if err := os.Chmod(logPath, 0600); err != nil {
			return nil, fmt.Errorf("chmod existing log file: %w", err)
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := NewWriter(file, minLevel)
	l.closer = file
	return l, nil
}

// NewWriter creates a logger writing to w. Timestamps are included.
func NewWriter(w io.Writer, minLevel Level) *Logger {
	out := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           minLevel.charm(),
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
	})
	return &Logger{out: out, enabled: true}
}

// Close closes the underlying file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	err := l.closer.Close()
	l.closer = nil
	l.enabled = false
	return err
}

// SetEnabled turns logging on or off.
func (l *Logger) SetEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled {
		return
	}

	msg := fmt.Sprintf(format, args...)
	switch level {
	case LevelDebug:
		l.out.Debug(msg)
	case LevelInfo:
		l.out.Info(msg)
	case LevelWarn:
		l.out.Warn(msg)
	default:
		l.out.Error(msg)
	}
}

func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }

func (l *Logger) Info(format string, args ...any) { l.log(LevelInfo, format, args...) }

func (l *Logger) Warn(format string, args ...any) { l.log(LevelWarn, format, args...) }

func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }

// SetDefault installs l as the package-level logger.
func SetDefault(l *Logger) {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = l
}

func getDefault() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// Debug writes to the package-level logger, if one is installed.
func Debug(format string, args ...any) { getDefault().Debug(format, args...) }

func Info(format string, args ...any) { getDefault().Info(format, args...) }

func Warn(format string, args ...any) { getDefault().Warn(format, args...) }

func Error(format string, args ...any) { getDefault().Error(format, args...) }

// NopLogger discards all messages.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (NopLogger) Close() error             { return nil }

var _ domain.Logger = (*Logger)(nil)
var _ domain.Logger = NopLogger{}
