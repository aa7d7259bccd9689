package commands

import (
	"context"
	"fmt"

	"tro/internal/application"
	"tro/internal/domain"
	"tro/internal/ports"
)

// CloseResult contains the result of closing an object
type CloseResult struct {
	Type domain.ObjectType
	ID   string
	Name string
	// Board is the parent board fetched after the close, set when Show was
	// requested for a card or list
	Board *domain.Board
}

// Message returns a human-readable summary
func (r *CloseResult) Message() string {
	return fmt.Sprintf("Closed %s: '%s'", r.Type, r.Name)
}

// CloseCommand closes (archives) the most specific resolved object
type CloseCommand struct {
	gateway ports.TrelloGateway
	Target  *Target
	Show    bool
}

// NewCloseCommand creates a new CloseCommand
func NewCloseCommand(gateway ports.TrelloGateway, target *Target, show bool) *CloseCommand {
	return &CloseCommand{
		gateway: gateway,
		Target:  target,
		Show:    show,
	}
}

// Validate checks there is something to close
func (c *CloseCommand) Validate() error {
	if c.Target == nil || c.Target.Board == nil {
		return &application.ValidationError{
			Field:   "boardPattern",
			Message: "nothing to close, a board pattern is required",
		}
	}
	return nil
}

// Execute runs the close command
func (c *CloseCommand) Execute(ctx context.Context) (*CloseResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	t := c.Target
	var result *CloseResult

	switch {
	case t.Card != nil:
		card := *t.Card
		card.Closed = true
		if _, err := c.gateway.UpdateCard(ctx, &card); err != nil {
			return nil, fmt.Errorf("failed to close card: %w", err)
		}
		result = &CloseResult{Type: domain.ObjectTypeCard, ID: card.ID, Name: card.Name}

	case t.List != nil:
		list := *t.List
		list.Closed = true
		list.Cards = nil
		if _, err := c.gateway.UpdateList(ctx, &list); err != nil {
			return nil, fmt.Errorf("failed to close list: %w", err)
		}
		result = &CloseResult{Type: domain.ObjectTypeList, ID: list.ID, Name: list.Name}

	default:
		board := *t.Board
		board.Closed = true
		board.Lists = nil
		if _, err := c.gateway.UpdateBoard(ctx, &board); err != nil {
			return nil, fmt.Errorf("failed to close board: %w", err)
		}
		return &CloseResult{Type: domain.ObjectTypeBoard, ID: board.ID, Name: board.Name}, nil
	}

	if c.Show {
		// Refetch so the rendering no longer contains the closed object
		board, err := c.gateway.GetBoard(ctx, t.Board.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to refresh board: %w", err)
		}
		result.Board = board
	}

	return result, nil
}
