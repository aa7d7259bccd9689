package trello

import (
	"context"
	"net/http"
	"net/url"

	"tro/internal/domain"
)

// ListLabels returns the labels defined on a board
func (c *Client) ListLabels(ctx context.Context, boardID string) ([]domain.Label, error) {
	var labels []domain.Label
	err := c.get(ctx, "/1/boards/"+segment(boardID)+"/labels/", &labels,
		Param{"fields", "id,name,color,idBoard"},
	)
	return labels, err
}

// ApplyLabel adds a board label to a card
func (c *Client) ApplyLabel(ctx context.Context, cardID, labelID string) error {
	form := url.Values{"value": {labelID}}
	return c.send(ctx, http.MethodPost, "/1/cards/"+segment(cardID)+"/idLabels", form, nil)
}

// RemoveLabel removes a label from a card
func (c *Client) RemoveLabel(ctx context.Context, cardID, labelID string) error {
	path := "/1/cards/" + segment(cardID) + "/idLabels/" + segment(labelID)
	return c.do(ctx, request{method: http.MethodDelete, path: path}, nil)
}
