package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"tro/internal/domain"
	"tro/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Cache implements ports.BoardCache using SQLite
type Cache struct {
	db     *sql.DB
	dbPath string
	now    func() time.Time
}

// Ensure Cache implements BoardCache
var _ ports.BoardCache = (*Cache)(nil)

// NewCache creates a new, unopened SQLite cache
func NewCache() *Cache {
	return &Cache{now: time.Now}
}

// DefaultPath returns the cache database location under the XDG cache
// directory
func DefaultPath() string {
	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		home, _ := os.UserHomeDir()
		cacheHome = filepath.Join(home, ".cache")
	}
	return filepath.Join(cacheHome, "tro", "cache.db")
}

// Open opens (creating if needed) the database at dbPath
func (c *Cache) Open(dbPath string) error {
	c.dbPath = dbPath

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	c.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS boards (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			closed INTEGER NOT NULL,
			url TEXT NOT NULL,
			position INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if err := c.checkVersion(); err != nil {
		db.Close()
		return fmt.Errorf("failed to check schema version: %w", err)
	}

	return nil
}

// Close closes the database connection
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Path returns the database file path
func (c *Cache) Path() string {
	return c.dbPath
}

// checkVersion drops cached rows written by a different schema version
func (c *Cache) checkVersion() error {
	var version string
	err := c.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	if version == schemaVersion {
		return nil
	}

	if err := c.Clear(); err != nil {
		return err
	}
	_, err = c.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion)
	return err
}

// Boards returns the cached boards in their original order and whether
// they were stored less than maxAge ago. An empty cache is never fresh.
func (c *Cache) Boards(maxAge time.Duration) ([]domain.Board, bool, error) {
	var fetched string
	err := c.db.QueryRow("SELECT value FROM meta WHERE key = 'boards_fetched_at'").Scan(&fetched)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache metadata: %w", err)
	}

	unix, err := strconv.ParseInt(fetched, 10, 64)
	if err != nil {
		return nil, false, nil
	}
	fresh := c.now().Sub(time.Unix(0, unix)) < maxAge

	rows, err := c.db.Query("SELECT id, name, closed, url FROM boards ORDER BY position")
	if err != nil {
		return nil, false, fmt.Errorf("failed to query boards: %w", err)
	}
	defer rows.Close()

	var boards []domain.Board
	for rows.Next() {
		var b domain.Board
		if err := rows.Scan(&b.ID, &b.Name, &b.Closed, &b.URL); err != nil {
			return nil, false, err
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}

	return boards, fresh, nil
}

// StoreBoards replaces the cached boards and stamps them with the current time
func (c *Cache) StoreBoards(boards []domain.Board) error {
	tx, err := c.begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.DeleteBoards(); err != nil {
		return fmt.Errorf("failed to clear boards: %w", err)
	}
	for i, b := range boards {
		if err := tx.InsertBoard(i, b); err != nil {
			return fmt.Errorf("failed to store board %s: %w", b.ID, err)
		}
	}
	if err := tx.SetFetchedAt(c.now()); err != nil {
		return fmt.Errorf("failed to stamp cache: %w", err)
	}

	return tx.Commit()
}

// Clear removes all cached boards
func (c *Cache) Clear() error {
	tx, err := c.begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.DeleteBoards(); err != nil {
		return err
	}
	if _, err := tx.tx.Exec(`DELETE FROM meta WHERE key = 'boards_fetched_at'`); err != nil {
		return err
	}
	return tx.Commit()
}
