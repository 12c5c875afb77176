package docsite

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// RunIndex records when each run directory was first seen across builds, so
// freshly appeared runs can be badged on the page. It is strictly optional:
// any failure disables the badge for the pass without failing the build.
type RunIndex struct {
	db *sql.DB
}

// OpenRunIndex opens (or creates) the index database at path, ensuring the
// parent directory exists and running schema setup.
func OpenRunIndex(path string) (*RunIndex, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL plus a busy timeout so a concurrent preview server reading the
	// file never surfaces SQLITE_BUSY to the build.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	ix := &RunIndex{db: db}
	if err := ix.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return ix, nil
}

// Close closes the underlying database connection.
func (ix *RunIndex) Close() error {
	return ix.db.Close()
}

func (ix *RunIndex) ensureSchema() error {
	_, err := ix.db.Exec(`
CREATE TABLE IF NOT EXISTS runs (
    name TEXT PRIMARY KEY,
    first_seen TEXT NOT NULL,
    images INTEGER NOT NULL DEFAULT 0,
    files INTEGER NOT NULL DEFAULT 0
);
`)
	return err
}

// MarkSeen upserts a run and reports whether this build is its first
// sighting. File counts are refreshed on every pass.
func (ix *RunIndex) MarkSeen(name string, images, files int, now time.Time) (bool, error) {
	var firstSeen string
	err := ix.db.QueryRow(`SELECT first_seen FROM runs WHERE name = ?`, name).Scan(&firstSeen)
	if err == sql.ErrNoRows {
		_, err = ix.db.Exec(
			`INSERT INTO runs (name, first_seen, images, files) VALUES (?, ?, ?, ?)`,
			name, now.UTC().Format(time.RFC3339), images, files,
		)
		if err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}
	_, err = ix.db.Exec(`UPDATE runs SET images = ?, files = ? WHERE name = ?`, images, files, name)
	return false, err
}

// firstSeen returns the recorded first-sighting time of a run, or the zero
// time when the run is unknown.
func (ix *RunIndex) firstSeen(name string) (time.Time, error) {
	var raw string
	err := ix.db.QueryRow(`SELECT first_seen FROM runs WHERE name = ?`, name).Scan(&raw)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, raw)
}
