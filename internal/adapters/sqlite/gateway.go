package sqlite

import (
	"context"
	"time"

	"tro/internal/domain"
	"tro/internal/logging"
	"tro/internal/ports"
)

// CachedGateway serves ListBoards from a BoardCache while it is fresh and
// forwards every other call. Board mutations invalidate the cache.
type CachedGateway struct {
	ports.TrelloGateway
	cache ports.BoardCache
	ttl   time.Duration
	log   logging.Logger
}

var _ ports.TrelloGateway = (*CachedGateway)(nil)

// NewCachedGateway wraps next with cache. A ttl <= 0 disables reads from
// the cache.
func NewCachedGateway(next ports.TrelloGateway, cache ports.BoardCache, ttl time.Duration, log logging.Logger) *CachedGateway {
	if log == nil {
		log = logging.Nop()
	}
	return &CachedGateway{TrelloGateway: next, cache: cache, ttl: ttl, log: log}
}

// ListBoards returns cached boards when fresh, otherwise fetches and stores them
func (g *CachedGateway) ListBoards(ctx context.Context) ([]domain.Board, error) {
	if g.ttl > 0 {
		boards, fresh, err := g.cache.Boards(g.ttl)
		if err != nil {
			g.log.Warn(ctx, "board cache read failed", "error", err)
		} else if fresh {
			g.log.Debug(ctx, "serving boards from cache", "count", len(boards))
			return boards, nil
		}
	}

	boards, err := g.TrelloGateway.ListBoards(ctx)
	if err != nil {
		return nil, err
	}
	if err := g.cache.StoreBoards(boards); err != nil {
		g.log.Warn(ctx, "board cache write failed", "error", err)
	}
	return boards, nil
}

// CreateBoard creates a board and invalidates the cache
func (g *CachedGateway) CreateBoard(ctx context.Context, name string) (*domain.Board, error) {
	b, err := g.TrelloGateway.CreateBoard(ctx, name)
	g.invalidate(ctx)
	return b, err
}

// UpdateBoard updates a board and invalidates the cache
func (g *CachedGateway) UpdateBoard(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	b, err := g.TrelloGateway.UpdateBoard(ctx, board)
	g.invalidate(ctx)
	return b, err
}

// OpenBoard re-opens a board and invalidates the cache
func (g *CachedGateway) OpenBoard(ctx context.Context, id string) (*domain.Board, error) {
	b, err := g.TrelloGateway.OpenBoard(ctx, id)
	g.invalidate(ctx)
	return b, err
}

func (g *CachedGateway) invalidate(ctx context.Context) {
	if err := g.cache.Clear(); err != nil {
		g.log.Warn(ctx, "board cache clear failed", "error", err)
	}
}
