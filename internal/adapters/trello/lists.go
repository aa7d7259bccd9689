package trello

import (
	"context"
	"net/http"
	"net/url"

	"tro/internal/domain"
)

// CreateList creates a list named name on a board
func (c *Client) CreateList(ctx context.Context, boardID, name string) (*domain.List, error) {
	var list domain.List
	form := url.Values{
		"name":    {name},
		"idBoard": {boardID},
	}
	if err := c.send(ctx, http.MethodPost, "/1/lists/", form, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdateList writes the list's name and closed state
func (c *Client) UpdateList(ctx context.Context, l *domain.List) (*domain.List, error) {
	var list domain.List
	form := url.Values{
		"name":   {l.Name},
		"closed": {boolString(l.Closed)},
	}
	if err := c.send(ctx, http.MethodPut, "/1/lists/"+segment(l.ID)+"/", form, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// OpenList re-opens a closed list
func (c *Client) OpenList(ctx context.Context, id string) (*domain.List, error) {
	var list domain.List
	form := url.Values{"closed": {"false"}}
	if err := c.send(ctx, http.MethodPut, "/1/lists/"+segment(id)+"/", form, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
