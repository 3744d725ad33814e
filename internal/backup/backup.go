// Package backup keeps rotating snapshots of the SQLite event store.
package backup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/calgrid/internal/logger"
)

const (
	// MaxBackups is the number of snapshots kept after rotation
	MaxBackups = 14
	DirName    = "backups"
	filePrefix = "events-"
	fileSuffix = ".db"
	nameLayout = "20060102-150405"
)

// Info describes one snapshot file.
type Info struct {
	Path      string
	Name      string
	Timestamp time.Time
	Size      int64
}

type Manager struct {
	dbPath string
	dir    string
	now    func() time.Time
}

// NewManager manages snapshots of the database at dbPath, stored in a
// backups directory next to it.
func NewManager(dbPath string) *Manager {
	return &Manager{
		dbPath: dbPath,
		dir:    filepath.Join(filepath.Dir(dbPath), DirName),
		now:    time.Now,
	}
}

func (m *Manager) Dir() string {
	return m.dir
}

// Create writes a snapshot of the database and rotates old ones.
func (m *Manager) Create(ctx context.Context) (Info, error) {
	info, err := m.snapshot(ctx)
	if err != nil {
		return Info{}, err
	}
	if err := m.rotate(); err != nil {
		logger.Warn("Failed to rotate event store backups", "dir", m.dir, "error", err)
	}
	return info, nil
}

func (m *Manager) snapshot(ctx context.Context) (Info, error) {
	if _, err := os.Stat(m.dbPath); err != nil {
		return Info{}, fmt.Errorf("database does not exist: %s", m.dbPath)
	}
	if err := os.MkdirAll(m.dir, 0700); err != nil {
		return Info{}, fmt.Errorf("failed to create backup directory: %w", err)
	}

	ts := m.now()
	name := filePrefix + ts.Format(nameLayout) + fileSuffix
	for i := 1; fileExists(filepath.Join(m.dir, name)); i++ {
		name = fmt.Sprintf("%s%s-%d%s", filePrefix, ts.Format(nameLayout), i, fileSuffix)
	}
	dest := filepath.Join(m.dir, name)

	db, err := sql.Open("sqlite", m.dbPath+"?mode=ro")
	if err != nil {
		return Info{}, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	if _, err := db.ExecContext(ctx, "VACUUM INTO ?", dest); err != nil {
		return Info{}, fmt.Errorf("failed to back up database: %w", err)
	}

	st, err := os.Stat(dest)
	if err != nil {
		return Info{}, err
	}
	logger.Info("Backed up event store", "path", dest)
	return Info{Path: dest, Name: name, Timestamp: ts.Truncate(time.Second), Size: st.Size()}, nil
}

// List returns the snapshots, newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []Info{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []Info{}
	for _, entry := range entries {
		ts, ok := parseName(entry.Name())
		if entry.IsDir() || !ok {
			continue
		}
		st, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.dir, entry.Name()),
			Name:      entry.Name(),
			Timestamp: ts,
			Size:      st.Size(),
		})
	}
	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Name > backups[j].Name
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// parseName extracts the timestamp of a snapshot file name, ignoring a
// trailing collision counter.
func parseName(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
		return time.Time{}, false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
	if len(stamp) < len(nameLayout) {
		return time.Time{}, false
	}
	ts, err := time.ParseInLocation(nameLayout, stamp[:len(nameLayout)], time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Name, err)
		}
	}
	return nil
}

// Restore replaces the database with the named snapshot. The current
// database is snapshotted first, without rotation.
func (m *Manager) Restore(ctx context.Context, name string) (Info, error) {
	src := filepath.Join(m.dir, filepath.Base(name))
	if err := verify(ctx, src); err != nil {
		return Info{}, fmt.Errorf("backup %s is not a valid database: %w", name, err)
	}

	var previous Info
	if fileExists(m.dbPath) {
		info, err := m.snapshot(ctx)
		if err != nil {
			return Info{}, fmt.Errorf("failed to back up current database before restore: %w", err)
		}
		previous = info
	}

	tmp := m.dbPath + ".restore.tmp"
	if err := copyFile(src, tmp); err != nil {
		return Info{}, fmt.Errorf("failed to copy backup: %w", err)
	}
	if err := os.Rename(tmp, m.dbPath); err != nil {
		os.Remove(tmp)
		return Info{}, fmt.Errorf("failed to restore database: %w", err)
	}
	return previous, nil
}

func verify(ctx context.Context, path string) error {
	if !fileExists(path) {
		return fs.ErrNotExist
	}
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()
	var n int
	return db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sqlite_master").Scan(&n)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
