package commands

import (
	"context"
	"fmt"
	"os"

	"tro/internal/application"
	"tro/internal/domain"
	"tro/internal/ports"
)

// AttachmentsCommand lists the attachments of a card
type AttachmentsCommand struct {
	gateway ports.TrelloGateway
	Target  *Target
}

// NewAttachmentsCommand creates a new AttachmentsCommand
func NewAttachmentsCommand(gateway ports.TrelloGateway, target *Target) *AttachmentsCommand {
	return &AttachmentsCommand{gateway: gateway, Target: target}
}

// Validate checks a card was resolved
func (c *AttachmentsCommand) Validate() error {
	if c.Target == nil || c.Target.Card == nil {
		return application.ErrMissingCard
	}
	return nil
}

// Execute runs the attachments command
func (c *AttachmentsCommand) Execute(ctx context.Context) ([]domain.Attachment, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	attachments, err := c.gateway.ListAttachments(ctx, c.Target.Card.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	return attachments, nil
}

// AttachCommand uploads a local file to a card
type AttachCommand struct {
	gateway ports.TrelloGateway
	Target  *Target
	Path    string
}

// NewAttachCommand creates a new AttachCommand
func NewAttachCommand(gateway ports.TrelloGateway, target *Target, path string) *AttachCommand {
	return &AttachCommand{gateway: gateway, Target: target, Path: path}
}

// Validate checks a card was resolved and the path names a regular file
func (c *AttachCommand) Validate() error {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return err
	}
	if c.Target == nil || c.Target.Card == nil {
		return application.ErrMissingCard
	}

	info, err := os.Stat(c.Path)
	if err != nil {
		return &application.ValidationError{Field: "path", Message: err.Error()}
	}
	if info.IsDir() {
		return &application.ValidationError{Field: "path", Message: fmt.Sprintf("%s is a directory", c.Path)}
	}
	return nil
}

// Execute runs the attach command
func (c *AttachCommand) Execute(ctx context.Context) (*domain.Attachment, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	attachment, err := c.gateway.AttachFile(ctx, c.Target.Card.ID, c.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to attach file: %w", err)
	}
	return attachment, nil
}
