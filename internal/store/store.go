// Package store keeps the dispatch audit log in SQLite.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/cmdtree/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/log"
	"github.com/footprint-tools/cmdtree/internal/store/migrations"
)

const (
	memoryPath = ":memory:"

	// timeFormat is fixed width so that text ordering matches time ordering.
	timeFormat = "2006-01-02T15:04:05.000000000Z07:00"
)

// Store wraps a SQLite database connection for dispatch records.
// It implements domain.AuditStore.
type Store struct {
	db    *sql.DB
	path  string
	newID func() string
}

// New opens the database at path and runs any pending migrations.
func New(path string) (*Store, error) {
	log.Debug("store: opening database at %s", path)

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if path == memoryPath {
		// every pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = configureSQLite(db, path); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure database: %w", err)
	}

	setDBPermissions(path)

	if _, err = migrations.Up(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path, newID: uuid.NewString}, nil
}

// NewWithDB creates a Store from an existing, already migrated connection.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db, newID: uuid.NewString}
}

// DB returns the underlying database connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func configureSQLite(db *sql.DB, path string) error {
	pragmas := []string{"PRAGMA busy_timeout = 5000"}
	if path != memoryPath {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}

	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// setDBPermissions sets restrictive file permissions on the database and its WAL/SHM files.
func setDBPermissions(path string) {
	if path == memoryPath {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Record stores one dispatch under a fresh UUID.
func (s *Store) Record(rec dispatchers.DispatchRecord) error {
	args := rec.Args
	if args == nil {
		args = []string{}
	}
	encoded, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode args: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO dispatch_log
		 (id, actor_id, actor_kind, label, args, handled, success, at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.newID(),
		rec.ActorID,
		rec.ActorKind.String(),
		rec.Label,
		string(encoded),
		boolToInt(rec.Handled),
		boolToInt(rec.Success),
		rec.At.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert dispatch: %w", err)
	}
	return nil
}

// List returns at most limit entries, newest first. A limit of zero or less
// returns everything.
func (s *Store) List(limit int) ([]domain.AuditEntry, error) {
	return s.Query(domain.AuditFilter{Limit: limit})
}

// Query returns entries matching filter, newest first.
func (s *Store) Query(filter domain.AuditFilter) ([]domain.AuditEntry, error) {
	where, args := whereClause(filter)

	query := `
		SELECT id, actor_id, actor_kind, label, args, handled, success, at
		FROM dispatch_log
	` + where + " ORDER BY at DESC, rowid DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.AuditEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// Count returns the number of stored dispatches matching filter. The
// filter's Limit is ignored.
func (s *Store) Count(filter domain.AuditFilter) (int64, error) {
	where, args := whereClause(filter)

	var n int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM dispatch_log"+where, args...).Scan(&n)
	return n, err
}

func whereClause(filter domain.AuditFilter) (string, []any) {
	var (
		clauses []string
		args    []any
	)

	if filter.Label != "" {
		clauses = append(clauses, "label = ?")
		args = append(args, filter.Label)
	}

	if filter.ActorID != "" {
		clauses = append(clauses, "actor_id = ?")
		args = append(args, filter.ActorID)
	}

	if filter.Since != nil {
		clauses = append(clauses, "at >= ?")
		args = append(args, filter.Since.UTC().Format(timeFormat))
	}

	if filter.FailuresOnly {
		clauses = append(clauses, "success = 0")
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// Prune deletes entries older than before and returns how many were removed.
func (s *Store) Prune(before time.Time) (int64, error) {
	result, err := s.db.Exec(
		"DELETE FROM dispatch_log WHERE at < ?",
		before.UTC().Format(timeFormat),
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanEntry(rows *sql.Rows) (domain.AuditEntry, error) {
	var (
		e       domain.AuditEntry
		args    string
		handled int
		success int
		at      string
	)

	if err := rows.Scan(
		&e.ID,
		&e.ActorID,
		&e.ActorKind,
		&e.Label,
		&args,
		&handled,
		&success,
		&at,
	); err != nil {
		return domain.AuditEntry{}, err
	}

	if err := json.Unmarshal([]byte(args), &e.Args); err != nil {
		return domain.AuditEntry{}, fmt.Errorf("decode args of %s: %w", e.ID, err)
	}

	t, err := time.Parse(timeFormat, at)
	if err != nil {
		return domain.AuditEntry{}, err
	}

	e.At = t
	e.Handled = handled == 1
	e.Success = success == 1
	return e, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ domain.AuditStore = (*Store)(nil)
