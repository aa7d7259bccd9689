package commands

import (
	"context"
	"fmt"

	"tro/internal/application"
	"tro/internal/domain"
	"tro/internal/ports"
)

// SearchCommand searches cards and boards
type SearchCommand struct {
	gateway ports.TrelloGateway
	Query   string
	Partial bool
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(gateway ports.TrelloGateway, query string, partial bool) *SearchCommand {
	return &SearchCommand{
		gateway: gateway,
		Query:   query,
		Partial: partial,
	}
}

// Validate checks the query is not empty
func (c *SearchCommand) Validate() error {
	return application.ValidateRequired("query", c.Query)
}

// Execute runs the search command
func (c *SearchCommand) Execute(ctx context.Context) (*domain.SearchResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	result, err := c.gateway.Search(ctx, c.Query, c.Partial)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return result, nil
}
