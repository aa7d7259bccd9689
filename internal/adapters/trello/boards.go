package trello

import (
	"context"
	"net/http"
	"net/url"

	"tro/internal/domain"
)

const (
	boardFields = "id,name,closed,url"
	listFields  = "id,name,closed,idBoard"
	cardFields  = "id,name,desc,closed,url,idList,labels"
)

// ListBoards returns the open boards of the authenticated member
func (c *Client) ListBoards(ctx context.Context) ([]domain.Board, error) {
	var boards []domain.Board
	err := c.get(ctx, "/1/members/me/boards/", &boards,
		Param{"filter", "open"},
		Param{"fields", boardFields},
	)
	return boards, err
}

// GetBoard returns a board with its open lists and their open cards
func (c *Client) GetBoard(ctx context.Context, id string) (*domain.Board, error) {
	var board domain.Board
	if err := c.get(ctx, "/1/boards/"+segment(id)+"/", &board, Param{"fields", boardFields}); err != nil {
		return nil, err
	}

	var lists []domain.List
	err := c.get(ctx, "/1/boards/"+segment(id)+"/lists/", &lists,
		Param{"filter", "open"},
		Param{"fields", listFields},
		Param{"cards", "open"},
		Param{"card_fields", cardFields},
	)
	if err != nil {
		return nil, err
	}
	board.Lists = lists

	return &board, nil
}

// CreateBoard creates a board named name
func (c *Client) CreateBoard(ctx context.Context, name string) (*domain.Board, error) {
	var board domain.Board
	form := url.Values{"name": {name}}
	if err := c.send(ctx, http.MethodPost, "/1/boards/", form, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// UpdateBoard writes the board's name and closed state
func (c *Client) UpdateBoard(ctx context.Context, b *domain.Board) (*domain.Board, error) {
	var board domain.Board
	form := url.Values{
		"name":   {b.Name},
		"closed": {boolString(b.Closed)},
	}
	if err := c.send(ctx, http.MethodPut, "/1/boards/"+segment(b.ID)+"/", form, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// OpenBoard re-opens a closed board
func (c *Client) OpenBoard(ctx context.Context, id string) (*domain.Board, error) {
	var board domain.Board
	form := url.Values{"closed": {"false"}}
	if err := c.send(ctx, http.MethodPut, "/1/boards/"+segment(id)+"/", form, &board); err != nil {
		return nil, err
	}
	return &board, nil
}
