package commands

import (
	"context"
	"fmt"

	"tro/internal/application"
	"tro/internal/ports"
)

// URLCommand returns the web URL of the resolved object. Lists have no URL
// of their own so their board's URL is used.
type URLCommand struct {
	clipboard ports.Clipboard
	Target    *Target
	Copy      bool
}

// NewURLCommand creates a new URLCommand. clipboard is only used when
// copying is requested.
func NewURLCommand(clipboard ports.Clipboard, target *Target, copyToClipboard bool) *URLCommand {
	return &URLCommand{clipboard: clipboard, Target: target, Copy: copyToClipboard}
}

// Validate checks a board was resolved
func (c *URLCommand) Validate() error {
	if c.Target == nil || c.Target.Board == nil {
		return application.ErrMissingBoard
	}
	if c.Copy && c.clipboard == nil {
		return fmt.Errorf("url: clipboard is not available")
	}
	return nil
}

// Execute runs the url command
func (c *URLCommand) Execute(ctx context.Context) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	url := c.Target.Board.URL
	if c.Target.Card != nil {
		url = c.Target.Card.URL
	}

	if c.Copy {
		if err := c.clipboard.WriteAll(url); err != nil {
			return "", fmt.Errorf("failed to copy url: %w", err)
		}
	}
	return url, nil
}
