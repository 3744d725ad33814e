// Package postgres stores events in a PostgreSQL schema named after the app.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	pq "github.com/lib/pq"

	"github.com/julianstephens/calgrid/internal/constants"
	"github.com/julianstephens/calgrid/internal/logger"
	"github.com/julianstephens/calgrid/internal/migration"
	"github.com/julianstephens/calgrid/internal/models"
	"github.com/julianstephens/calgrid/internal/source"
	"github.com/julianstephens/calgrid/migrations"
)

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

// naiveLayout renders timestamp columns in the record layout without a zone.
const naiveLayout = `'YYYY-MM-DD"T"HH24:MI:SS'`

type Store struct {
	connStr string
	db      *sql.DB
}

var _ source.Store = (*Store)(nil)

// New creates a store for connStr, adding search_path=calgrid when absent.
func New(connStr string) *Store {
	return &Store{connStr: withSearchPath(connStr)}
}

func withSearchPath(connStr string) string {
	if isURL(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			logger.Warn("Failed to parse Postgres connection string", "error", err)
			return connStr
		}
		q := u.Query()
		if q.Get("search_path") == "" {
			q.Set("search_path", constants.AppName)
			u.RawQuery = q.Encode()
		}
		return u.String()
	}
	if _, ok := dsnParam(connStr, "search_path"); ok {
		return connStr
	}
	return strings.TrimSpace(connStr) + " search_path=" + constants.AppName
}

func isURL(connStr string) bool {
	return strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://")
}

// dsnParam looks up a key (case-insensitive) of a space-separated key=value DSN.
func dsnParam(connStr, key string) (string, bool) {
	for _, pair := range strings.Fields(connStr) {
		k, v, ok := strings.Cut(pair, "=")
		if ok && strings.EqualFold(strings.TrimSpace(k), key) {
			return v, true
		}
	}
	return "", false
}

func hasSSLMode(connStr string) bool {
	if u, err := url.Parse(connStr); err == nil && u.Scheme != "" {
		for key := range u.Query() {
			if strings.EqualFold(key, "sslmode") {
				return true
			}
		}
	}
	_, ok := dsnParam(connStr, "sslmode")
	return ok
}

// ValidateConnString checks that connStr is a PostgreSQL URI or DSN without
// an embedded password.
func ValidateConnString(connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}
	if _, err := pq.NewConnector(connStr); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
	}

	if isURL(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
		}
		if _, isSet := u.User.Password(); isSet {
			return ErrEmbeddedCredentials
		}
		if u.Host == "" && u.User == nil && (u.Path == "" || u.Path == "/") {
			return fmt.Errorf("%w: connection URL is incomplete", ErrInvalidConnectionString)
		}
		return nil
	}
	if _, ok := dsnParam(connStr, "password"); ok {
		return ErrEmbeddedCredentials
	}
	return nil
}

func (s *Store) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		if strings.Contains(err.Error(), "SSL is not enabled on the server") && !hasSSLMode(s.connStr) {
			return nil, fmt.Errorf("failed to connect to database: %w (hint: try adding ?sslmode=disable to your connection string)", err)
		}
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Init creates the schema and applies pending migrations.
func (s *Store) Init(ctx context.Context) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, "CREATE SCHEMA IF NOT EXISTS "+constants.AppName); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
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

// Load connects and checks the schema version.
func (s *Store) Load(ctx context.Context) error {
	if s.db != nil {
		return nil
	}
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	s.db = db

	runner, err := s.runner()
	if err != nil {
		return err
	}
	return runner.Validate(ctx)
}

func (s *Store) runner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, constants.SourcePostgres)
	if err != nil {
		return nil, fmt.Errorf("failed to access postgres migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS, migration.Postgres), nil
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

func (s *Store) AddEvent(ctx context.Context, rec models.EventRecord) (string, error) {
	rec, err := source.Normalize(rec)
	if err != nil {
		return "", fmt.Errorf("invalid event %q: %w", rec.Title, err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO events (id, title, start_datetime, end_datetime, calendar_id, description, location, owner_name, event_type, deleted_at)
VALUES ($1, $2, $3::timestamp, $4::timestamp, $5, $6, $7, $8, $9, NULL)
ON CONFLICT (id) DO UPDATE SET
    title = EXCLUDED.title,
    start_datetime = EXCLUDED.start_datetime,
    end_datetime = EXCLUDED.end_datetime,
    calendar_id = EXCLUDED.calendar_id,
    description = EXCLUDED.description,
    location = EXCLUDED.location,
    owner_name = EXCLUDED.owner_name,
    event_type = EXCLUDED.event_type,
    deleted_at = NULL`,
		rec.ID, rec.Title, rec.StartDateTime, rec.EndDateTime, rec.CalendarID,
		rec.Description, rec.Location, rec.OwnerName, rec.EventType,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save event: %w", err)
	}
	return rec.ID, nil
}

func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE events SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
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
SELECT id, title,
       to_char(start_datetime, `+naiveLayout+`),
       to_char(end_datetime, `+naiveLayout+`),
       calendar_id, description, location, owner_name, event_type
FROM events
WHERE deleted_at IS NULL AND start_datetime::date BETWEEN $1::date AND $2::date
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
	logger.Debug("Fetched events", "store", "postgres", "start", startDate, "end", endDate, "count", len(records))
	return records, nil
}
