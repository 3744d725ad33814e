// Package sqlite stores events in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/calgrid/internal/constants"
	"github.com/julianstephens/calgrid/internal/logger"
	"github.com/julianstephens/calgrid/internal/migration"
	"github.com/julianstephens/calgrid/internal/models"
	"github.com/julianstephens/calgrid/internal/source"
	"github.com/julianstephens/calgrid/migrations"
)

// ErrNotInitialized is returned by Load when the database file does not exist.
var ErrNotInitialized = errors.New("storage not initialized, run 'calgrid init' first")

type Store struct {
	path string
	db   *sql.DB
}

var _ source.Store = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

// Init creates the database file and its directory and applies pending migrations.
func (s *Store) Init(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	runner, err := s.runner()
	if err != nil {
		return err
	}
	if _, err := runner.Apply(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Load opens an initialized database and checks its schema version.
func (s *Store) Load(ctx context.Context) error {
	if s.db != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return ErrNotInitialized
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	runner, err := s.runner()
	if err != nil {
		return err
	}
	return runner.Validate(ctx)
}

func (s *Store) runner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, constants.SourceSQLite)
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS, migration.SQLite), nil
}

// SchemaVersion returns the applied and the latest embedded schema versions.
func (s *Store) SchemaVersion(ctx context.Context) (current, latest int, err error) {
	if s.db == nil {
		return 0, 0, source.ErrNotLoaded
	}
	runner, err := s.runner()
	if err != nil {
		return 0, 0, err
	}
	if current, err = runner.CurrentVersion(ctx); err != nil {
		return 0, 0, err
	}
	if latest, err = runner.LatestVersion(); err != nil {
		return 0, 0, err
	}
	return current, latest, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) Path() string {
	return s.path
}

// DB returns the underlying connection, nil before Init or Load.
func (s *Store) DB() *sql.DB {
	return s.db
}

// AddEvent normalizes and stores rec, replacing any event with the same id.
// It returns the stored id.
func (s *Store) AddEvent(ctx context.Context, rec models.EventRecord) (string, error) {
	rec, err := source.Normalize(rec)
	if err != nil {
		return "", fmt.Errorf("invalid event %q: %w", rec.Title, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO events
			(id, title, start_datetime, end_datetime, calendar_id, description, location, owner_name, event_type, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)`,
		rec.ID, rec.Title, rec.StartDateTime, rec.EndDateTime, rec.CalendarID,
		rec.Description, rec.Location, rec.OwnerName, rec.EventType,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save event: %w", err)
	}
	return rec.ID, nil
}

// DeleteEvent soft-deletes an event.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE events SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("event not found: %s", id)
	}
	return nil
}

// Fetch returns the live events starting within startDate..endDate, ordered by start.
func (s *Store) Fetch(ctx context.Context, startDate, endDate string) ([]models.EventRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, start_datetime, end_datetime, calendar_id, description, location, owner_name, event_type
		FROM events
		WHERE deleted_at IS NULL AND substr(start_datetime, 1, 10) BETWEEN ? AND ?
		ORDER BY start_datetime, id`, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.EventRecord{}
	for rows.Next() {
		var r models.EventRecord
		if err := rows.Scan(
			&r.ID, &r.Title, &r.StartDateTime, &r.EndDateTime, &r.CalendarID,
			&r.Description, &r.Location, &r.OwnerName, &r.EventType,
		); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	logger.Debug("Fetched events", "store", "sqlite", "start", startDate, "end", endDate, "count", len(records))
	return records, nil
}
