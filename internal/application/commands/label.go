package commands

import (
	"context"
	"fmt"

	"tro/internal/application"
	"tro/internal/domain"
	"tro/internal/ports"
)

// LabelAction describes what the label command did
type LabelAction int

const (
	LabelApplied LabelAction = iota
	LabelRemoved
	LabelAlreadyPresent
	LabelNotPresent
)

// LabelResult contains the result of applying or removing a label
type LabelResult struct {
	Action LabelAction
	Label  domain.Label
	Card   domain.Card
}

// Changed reports whether the card was modified
func (r *LabelResult) Changed() bool {
	return r.Action == LabelApplied || r.Action == LabelRemoved
}

// Message returns a human-readable summary. label is the label as it should
// be displayed, which lets callers colour it.
func (r *LabelResult) Message(label string) string {
	switch r.Action {
	case LabelApplied:
		return fmt.Sprintf("Applied [%s] label to '%s'", label, r.Card.Name)
	case LabelRemoved:
		return fmt.Sprintf("Removed [%s] label from '%s'", label, r.Card.Name)
	case LabelAlreadyPresent:
		return fmt.Sprintf("Label [%s] already exists on '%s'", label, r.Card.Name)
	default:
		return fmt.Sprintf("Label [%s] does not exist on '%s'", label, r.Card.Name)
	}
}

// LabelCommand applies a board label to a card, or removes it
type LabelCommand struct {
	gateway    ports.TrelloGateway
	Target     *Target
	LabelName  string
	Delete     bool
	IgnoreCase bool
}

// NewLabelCommand creates a new LabelCommand
func NewLabelCommand(gateway ports.TrelloGateway, target *Target, labelName string, remove, ignoreCase bool) *LabelCommand {
	return &LabelCommand{
		gateway:    gateway,
		Target:     target,
		LabelName:  labelName,
		Delete:     remove,
		IgnoreCase: ignoreCase,
	}
}

// Validate checks a board, a card and a label name are present
func (c *LabelCommand) Validate() error {
	if err := application.ValidateRequired("labelName", c.LabelName); err != nil {
		return err
	}
	if c.Target == nil || c.Target.Board == nil {
		return application.ErrMissingBoard
	}
	if c.Target.Card == nil {
		return application.ErrMissingCard
	}
	return nil
}

// Execute runs the label command. Applying a label the card already has,
// or removing one it lacks, makes no remote change.
func (c *LabelCommand) Execute(ctx context.Context) (*LabelResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	labels, err := c.gateway.ListLabels(ctx, c.Target.Board.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	label, err := domain.MatchOne(labels, "label", c.LabelName, c.IgnoreCase)
	if err != nil {
		return nil, err
	}

	card := *c.Target.Card
	has := card.HasLabel(label.ID)
	result := &LabelResult{Label: label, Card: card}

	switch {
	case c.Delete && !has:
		result.Action = LabelNotPresent
	case c.Delete:
		if err := c.gateway.RemoveLabel(ctx, card.ID, label.ID); err != nil {
			return nil, fmt.Errorf("failed to remove label: %w", err)
		}
		result.Action = LabelRemoved
	case has:
		result.Action = LabelAlreadyPresent
	default:
		if err := c.gateway.ApplyLabel(ctx, card.ID, label.ID); err != nil {
			return nil, fmt.Errorf("failed to apply label: %w", err)
		}
		result.Action = LabelApplied
	}

	return result, nil
}
