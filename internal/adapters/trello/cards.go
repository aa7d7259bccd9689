package trello

import (
	"context"
	"net/http"
	"net/url"

	"tro/internal/domain"
)

// GetCard returns a card by ID
func (c *Client) GetCard(ctx context.Context, id string) (*domain.Card, error) {
	var card domain.Card
	if err := c.get(ctx, "/1/cards/"+segment(id)+"/", &card, Param{"fields", cardFields}); err != nil {
		return nil, err
	}
	return &card, nil
}

// CreateCard creates a card named name at the bottom of a list
func (c *Client) CreateCard(ctx context.Context, listID, name string) (*domain.Card, error) {
	var card domain.Card
	form := url.Values{
		"name":   {name},
		"desc":   {""},
		"idList": {listID},
	}
	if err := c.send(ctx, http.MethodPost, "/1/cards/", form, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// UpdateCard writes the card's name, description, closed state and list
func (c *Client) UpdateCard(ctx context.Context, in *domain.Card) (*domain.Card, error) {
	var card domain.Card
	form := url.Values{
		"name":   {in.Name},
		"desc":   {in.Desc},
		"closed": {boolString(in.Closed)},
	}
	if in.ListID != "" {
		form.Set("idList", in.ListID)
	}
	if err := c.send(ctx, http.MethodPut, "/1/cards/"+segment(in.ID)+"/", form, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// OpenCard re-opens a closed card
func (c *Client) OpenCard(ctx context.Context, id string) (*domain.Card, error) {
	var card domain.Card
	form := url.Values{"closed": {"false"}}
	if err := c.send(ctx, http.MethodPut, "/1/cards/"+segment(id)+"/", form, &card); err != nil {
		return nil, err
	}
	return &card, nil
}
