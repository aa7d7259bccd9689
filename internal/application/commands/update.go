package commands

import (
	"context"
	"fmt"

	"tro/internal/application"
	"tro/internal/domain"
	"tro/internal/ports"
)

// UpdateCardCommand replaces the name and/or description of a card without
// an editor. Nil fields are left unchanged.
type UpdateCardCommand struct {
	updater ports.CardUpdater
	Card    *domain.Card
	Name    *string
	Desc    *string
}

// NewUpdateCardCommand creates a new UpdateCardCommand
func NewUpdateCardCommand(updater ports.CardUpdater, card *domain.Card, name, desc *string) *UpdateCardCommand {
	return &UpdateCardCommand{
		updater: updater,
		Card:    card,
		Name:    name,
		Desc:    desc,
	}
}

// Validate checks there is a card and something to change
func (c *UpdateCardCommand) Validate() error {
	if c.Card == nil {
		return application.ErrMissingCard
	}
	if c.Name == nil && c.Desc == nil {
		return &application.ValidationError{
			Field:   "name",
			Message: "name or description must be given",
		}
	}
	if c.Name != nil {
		return application.ValidateRequired("name", *c.Name)
	}
	return nil
}

// Execute runs the update command
func (c *UpdateCardCommand) Execute(ctx context.Context) (*domain.Card, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	card := *c.Card
	if c.Name != nil {
		card.Name = *c.Name
	}
	if c.Desc != nil {
		card.Desc = *c.Desc
	}

	updated, err := c.updater.UpdateCard(ctx, &card)
	if err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}
	return updated, nil
}
