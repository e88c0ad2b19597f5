package alarms

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	// Registers the "sqlite" driver (pure Go).
	_ "modernc.org/sqlite"

	"github.com/oshokin/clockrobustus/internal/apperr"
	"github.com/oshokin/clockrobustus/internal/config"
	"github.com/oshokin/clockrobustus/internal/domain/alarm"
	"github.com/oshokin/clockrobustus/internal/logger"
)

// Repository defines persistence operations for alarms.
type Repository interface {
	List(ctx context.Context) ([]alarm.Alarm, error)
	Upsert(ctx context.Context, a *alarm.Alarm) error
	Remove(ctx context.Context, a *alarm.Alarm) error
}

// Store implements Repository on top of SQLite.
type Store struct {
	// db is the single-connection database handle.
	db *sql.DB
	// mu serializes writers and lets readers share access.
	mu sync.RWMutex
}

const (
	schemaQuery = `
		CREATE TABLE IF NOT EXISTS alarms (
			id          INTEGER PRIMARY KEY,
			active_days INTEGER NOT NULL,
			hour        INTEGER NOT NULL,
			minute      INTEGER NOT NULL,
			seconds     INTEGER NOT NULL
		)`

	listQuery = `
		SELECT id, active_days, hour, minute, seconds
		FROM alarms`

	updateQuery = `
		UPDATE alarms
		SET active_days = ?, hour = ?, minute = ?, seconds = ?
		WHERE id = ?`

	insertQuery = `
		INSERT INTO alarms (active_days, hour, minute, seconds)
		VALUES (?, ?, ?, ?)`

	deleteQuery = `
		DELETE FROM alarms
		WHERE id = ?`
)

var _ Repository = (*Store)(nil)

// Open opens (or creates) the database at path and applies connection PRAGMAs.
// The alarm table itself is created lazily by the first operation.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), config.DefaultDirPermissions); err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, "create database directory", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, "open database", err)
	}

	// SQLite is a single-writer engine; one connection keeps it simple.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := applyPragmas(ctx, db); err != nil {
		_ = db.Close()

		return nil, apperr.Wrap(apperr.ErrStorage, "apply pragmas", err)
	}

	return &Store{db: db}, nil
}

// applyPragmas configures the connection for a daemon with occasional writers.
func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}

	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}

	return nil
}

// Close releases the underlying database resources.
func (s *Store) Close() error {
	return s.db.Close()
}

// EnsureSchema creates the alarm table if it is absent. It is idempotent.
func (s *Store) EnsureSchema(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ensureSchema(ctx)
}

func (s *Store) ensureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaQuery); err != nil {
		return apperr.Wrap(apperr.ErrStorage, "ensure schema", err)
	}

	return nil
}

// List returns every alarm in the table's natural row order.
func (s *Store) List(ctx context.Context) ([]alarm.Alarm, error) {
	// Creating the table is a write, so it runs before the shared lock is taken.
	if err := s.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, listQuery)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, "list alarms", err)
	}
	defer rows.Close()

	var res []alarm.Alarm

	for rows.Next() {
		var (
			id, activeDays       int64
			hour, minute, second int64
		)

		if err := rows.Scan(&id, &activeDays, &hour, &minute, &second); err != nil {
			return nil, apperr.Wrap(apperr.ErrStorage, "scan alarm", err)
		}

		res = append(res, alarm.Alarm{
			ID:         alarm.NewID(id),
			ActiveDays: alarm.ActiveDays(activeDays),
			Hour:       uint8(hour),
			Minute:     uint8(minute),
			Seconds:    uint8(second),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, "list alarms", err)
	}

	return res, nil
}

// Upsert updates the row with the alarm's id, or inserts a new row when the
// alarm has no id. Updating an id that does not exist is a silent no-op.
// The generated id of an inserted alarm is visible through List only.
func (s *Store) Upsert(ctx context.Context, a *alarm.Alarm) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureSchema(ctx); err != nil {
		return err
	}

	days := a.ActiveDays & alarm.AllDays

	if a.ID == nil {
		if _, err := s.db.ExecContext(ctx, insertQuery, days, a.Hour, a.Minute, a.Seconds); err != nil {
			return apperr.Wrap(apperr.ErrStorage, "insert alarm", err)
		}

		return nil
	}

	res, err := s.db.ExecContext(ctx, updateQuery, days, a.Hour, a.Minute, a.Seconds, *a.ID)
	if err != nil {
		return apperr.Wrap(apperr.ErrStorage, "update alarm", err)
	}

	logMissing(ctx, res, "update", *a.ID)

	return nil
}

// Remove deletes the row with the alarm's id. An alarm without id fails with
// apperr.ErrUnsavedEntity; an unknown id is a silent no-op.
func (s *Store) Remove(ctx context.Context, a *alarm.Alarm) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureSchema(ctx); err != nil {
		return err
	}

	if a.ID == nil {
		return fmt.Errorf("remove alarm: %w", apperr.ErrUnsavedEntity)
	}

	res, err := s.db.ExecContext(ctx, deleteQuery, *a.ID)
	if err != nil {
		return apperr.Wrap(apperr.ErrStorage, "delete alarm", err)
	}

	logMissing(ctx, res, "delete", *a.ID)

	return nil
}

// logMissing notes writes that matched no row.
func logMissing(ctx context.Context, res sql.Result, op string, id int64) {
	affected, err := res.RowsAffected()
	if err != nil || affected > 0 {
		return
	}

	logger.DebugKV(ctx, "Alarm not found, nothing to "+op, "id", id)
}
