package ports

import (
	"time"

	"tro/internal/domain"
)

// BoardCache stores the list of open boards between invocations
type BoardCache interface {
	// Boards returns the cached boards and whether they are younger than maxAge
	Boards(maxAge time.Duration) ([]domain.Board, bool, error)
	StoreBoards(boards []domain.Board) error
	Clear() error
	Close() error
}
