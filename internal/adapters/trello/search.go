package trello

import (
	"context"

	"tro/internal/domain"
)

// Search finds cards and boards matching query. With partial set, words
// in the query also match as prefixes.
func (c *Client) Search(ctx context.Context, query string, partial bool) (*domain.SearchResult, error) {
	var result domain.SearchResult
	err := c.get(ctx, "/1/search/", &result,
		Param{"query", query},
		Param{"partial", boolString(partial)},
		Param{"modelTypes", "cards,boards"},
		Param{"board_fields", boardFields},
		Param{"card_fields", cardFields},
	)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
