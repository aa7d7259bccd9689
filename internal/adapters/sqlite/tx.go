package sqlite

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"tro/internal/domain"
)

// cacheTx groups the writes of one cache update
type cacheTx struct {
	tx *sql.Tx
}

func (c *Cache) begin() (*cacheTx, error) {
	tx, err := c.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &cacheTx{tx: tx}, nil
}

// DeleteBoards removes every cached board
func (t *cacheTx) DeleteBoards() error {
	_, err := t.tx.Exec(`DELETE FROM boards`)
	return err
}

// InsertBoard stores a board at position
func (t *cacheTx) InsertBoard(position int, b domain.Board) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO boards (id, name, closed, url, position)
		VALUES (?, ?, ?, ?, ?)
	`, b.ID, b.Name, b.Closed, b.URL, position)
	return err
}

// SetFetchedAt records when the boards were fetched
func (t *cacheTx) SetFetchedAt(at time.Time) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('boards_fetched_at', ?)
	`, strconv.FormatInt(at.UnixNano(), 10))
	return err
}

// Commit commits the transaction
func (t *cacheTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *cacheTx) Rollback() error {
	return t.tx.Rollback()
}
