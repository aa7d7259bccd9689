package commands

import (
	"context"
	"fmt"

	"tro/internal/application"
	"tro/internal/domain"
	"tro/internal/ports"
)

// CreateResult contains the result of creating an object. Exactly one of
// Board, List or Card is set.
type CreateResult struct {
	Type  domain.ObjectType
	Board *domain.Board
	List  *domain.List
	Card  *domain.Card
}

// Message returns a human-readable summary
func (r *CreateResult) Message() string {
	switch r.Type {
	case domain.ObjectTypeCard:
		return fmt.Sprintf("Created card: '%s'", r.Card.Name)
	case domain.ObjectTypeList:
		return fmt.Sprintf("Created list: '%s'", r.List.Name)
	default:
		return fmt.Sprintf("Created board: '%s'", r.Board.Name)
	}
}

// CreateCommand creates a card in the resolved list, a list on the resolved
// board, or a new board when nothing was resolved
type CreateCommand struct {
	gateway ports.TrelloGateway
	Target  *Target
	Name    string
}

// NewCreateCommand creates a new CreateCommand
func NewCreateCommand(gateway ports.TrelloGateway, target *Target, name string) *CreateCommand {
	return &CreateCommand{
		gateway: gateway,
		Target:  target,
		Name:    name,
	}
}

// Creates returns the type of object Execute will create
func (c *CreateCommand) Creates() domain.ObjectType {
	switch {
	case c.Target != nil && c.Target.List != nil:
		return domain.ObjectTypeCard
	case c.Target != nil && c.Target.Board != nil:
		return domain.ObjectTypeList
	default:
		return domain.ObjectTypeBoard
	}
}

// Validate checks the new object has a name
func (c *CreateCommand) Validate() error {
	return application.ValidateRequired("name", c.Name)
}

// Execute runs the create command
func (c *CreateCommand) Execute(ctx context.Context) (*CreateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	switch c.Creates() {
	case domain.ObjectTypeCard:
		card, err := c.gateway.CreateCard(ctx, c.Target.List.ID, c.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create card: %w", err)
		}
		return &CreateResult{Type: domain.ObjectTypeCard, Card: card}, nil

	case domain.ObjectTypeList:
		list, err := c.gateway.CreateList(ctx, c.Target.Board.ID, c.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create list: %w", err)
		}
		return &CreateResult{Type: domain.ObjectTypeList, List: list}, nil

	default:
		board, err := c.gateway.CreateBoard(ctx, c.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create board: %w", err)
		}
		return &CreateResult{Type: domain.ObjectTypeBoard, Board: board}, nil
	}
}
