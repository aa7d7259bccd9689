package commands

import (
	"context"
	"fmt"

	"tro/internal/application"
	"tro/internal/domain"
	"tro/internal/ports"
)

// OpenResult contains the result of re-opening an object
type OpenResult struct {
	Type domain.ObjectType
	ID   string
	Name string
}

// Message returns a human-readable summary
func (r *OpenResult) Message() string {
	return fmt.Sprintf("Opened %s: %s", r.Type, r.Name)
}

// OpenCommand re-opens a closed board, list or card by ID
type OpenCommand struct {
	gateway ports.TrelloGateway
	ID      string
	Type    string

	objectType domain.ObjectType
}

// NewOpenCommand creates a new OpenCommand
func NewOpenCommand(gateway ports.TrelloGateway, objectType, id string) *OpenCommand {
	return &OpenCommand{
		gateway: gateway,
		ID:      id,
		Type:    objectType,
	}
}

// Validate checks the ID and type
func (c *OpenCommand) Validate() error {
	t, err := application.ValidateObjectType("objectType", c.Type)
	if err != nil {
		return err
	}
	if err := application.ValidateRequired("id", c.ID); err != nil {
		return err
	}
	c.objectType = t
	return nil
}

// Execute runs the open command
func (c *OpenCommand) Execute(ctx context.Context) (*OpenResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	switch c.objectType {
	case domain.ObjectTypeBoard:
		b, err := c.gateway.OpenBoard(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to open board: %w", err)
		}
		return &OpenResult{Type: c.objectType, ID: b.ID, Name: b.Name}, nil

	case domain.ObjectTypeList:
		l, err := c.gateway.OpenList(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to open list: %w", err)
		}
		return &OpenResult{Type: c.objectType, ID: l.ID, Name: l.Name}, nil

	default:
		card, err := c.gateway.OpenCard(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to open card: %w", err)
		}
		return &OpenResult{Type: c.objectType, ID: card.ID, Name: card.Name}, nil
	}
}
