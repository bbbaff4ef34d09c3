// Package migrations keeps the audit database schema current. The applied
// version lives in SQLite's user_version header field, so a fresh file and
// a migrated one need no bookkeeping table.
package migrations

import (
	"cmp"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/log"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// Step is one schema change, read from sql/NN_name.sql.
type Step struct {
	Version int
	Name    string
	SQL     string
}

func (s Step) String() string {
	return fmt.Sprintf("%02d_%s", s.Version, s.Name)
}

// ErrNewerSchema means the database was written by a newer binary.
var ErrNewerSchema = errors.New("database schema is newer than this binary")

// Steps returns the embedded schema changes in version order.
func Steps() ([]Step, error) {
	return load(sqlFiles)
}

func load(fsys fs.FS) ([]Step, error) {
	files, err := fs.Glob(fsys, "sql/*.sql")
	if err != nil {
		return nil, err
	}

	steps := make([]Step, 0, len(files))
	for _, file := range files {
		step, err := parseStep(path.Base(file))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}

		body, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, err
		}
		step.SQL = string(body)
		steps = append(steps, step)
	}

	slices.SortFunc(steps, func(a, b Step) int { return cmp.Compare(a.Version, b.Version) })

	for i := 1; i < len(steps); i++ {
		if steps[i].Version == steps[i-1].Version {
			return nil, fmt.Errorf("version %d used by both %s and %s", steps[i].Version, steps[i-1], steps[i])
		}
	}
	return steps, nil
}

func parseStep(base string) (Step, error) {
	number, name, ok := strings.Cut(strings.TrimSuffix(base, ".sql"), "_")
	if !ok || name == "" {
		return Step{}, errors.New("want NN_name.sql")
	}

	version, err := strconv.Atoi(number)
	if err != nil || version <= 0 {
		return Step{}, fmt.Errorf("bad version %q", number)
	}
	return Step{Version: version, Name: name}, nil
}

// Version reports the schema version recorded in the database header.
func Version(db *sql.DB) (int, error) {
	var v int
	if err := db.QueryRow("PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return v, nil
}

// Pending returns the steps newer than the database's version.
func Pending(db *sql.DB) ([]Step, error) {
	steps, err := Steps()
	if err != nil {
		return nil, err
	}

	current, err := Version(db)
	if err != nil || len(steps) == 0 {
		return nil, err
	}

	if latest := steps[len(steps)-1].Version; current > latest {
		return nil, fmt.Errorf("%w (v%d, binary knows v%d)", ErrNewerSchema, current, latest)
	}

	i, _ := slices.BinarySearchFunc(steps, current+1, func(s Step, v int) int {
		return cmp.Compare(s.Version, v)
	})
	return steps[i:], nil
}

// Up applies every pending step and returns the version the database ends
// at. Each step and its version bump commit together.
func Up(db *sql.DB) (int, error) {
	pending, err := Pending(db)
	if err != nil {
		return 0, err
	}

	if len(pending) == 0 {
		v, err := Version(db)
		if err == nil {
			log.Debug("migrations: schema at v%d", v)
		}
		return v, err
	}

	for _, step := range pending {
		if err := apply(db, step); err != nil {
			return 0, fmt.Errorf("apply %s: %w", step, err)
		}
		log.Info("migrations: applied %s", step)
	}
	return pending[len(pending)-1].Version, nil
}

func apply(db *sql.DB, step Step) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(step.SQL); err != nil {
		return err
	}

	// PRAGMA arguments cannot be bound; Version is an int from parseStep.
	if _, err = tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", step.Version)); err != nil {
		return err
	}
	return tx.Commit()
}
