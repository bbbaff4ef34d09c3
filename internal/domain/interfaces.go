package domain

import (
	"time"

	"github.com/footprint-tools/cmdtree/dispatchers"
)

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	Success(text string) string
	Warning(text string) string
	Error(text string) string
	Info(text string) string
	Muted(text string) string
	Header(text string) string
}

// AuditEntry is one stored dispatch.
type AuditEntry struct {
	ID        string
	ActorID   string
	ActorKind string
	Label     string
	Args      []string
	Handled   bool
	Success   bool
	At        time.Time
}

// AuditFilter narrows an audit query. Zero fields match everything.
type AuditFilter struct {
	Label        string
	ActorID      string
	Since        *time.Time
	FailuresOnly bool

	// Limit caps the number of entries; zero or less means no cap.
	Limit int
}

// AuditStore persists dispatch records and reads them back newest first.
type AuditStore interface {
	dispatchers.Recorder

	// List returns at most limit entries, newest first.
	List(limit int) ([]AuditEntry, error)

	// Query returns the entries matching filter, newest first.
	Query(filter AuditFilter) ([]AuditEntry, error)

	// Count returns how many entries match filter, ignoring its Limit.
	Count(filter AuditFilter) (int64, error)

	// Prune deletes entries recorded before the given time.
	Prune(before time.Time) (int64, error)

	// Close closes the store connection.
	Close() error
}

// Application represents the main application context with all dependencies.
type Application struct {
	Router *dispatchers.Router
	Store  AuditStore
	Config ConfigProvider
	Logger Logger
	Styler Styler
}
