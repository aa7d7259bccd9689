package commands

import (
	"context"
	"fmt"
	"strings"

	"tro/internal/domain"
	"tro/internal/ports"
)

// ShowResult contains what the show command produced. Text is set for
// boards, lists and printed cards; Card is set when a card was targeted.
type ShowResult struct {
	Type domain.ObjectType
	Text string
	Card *domain.Card
	// Edited is true when an edit session pushed at least one change
	Edited bool
	// Markdown is true when Text is a card document suitable for a
	// markdown renderer
	Markdown bool
}

// ShowCommand displays a board or list, or edits a card
type ShowCommand struct {
	gateway     ports.TrelloGateway
	editor      ports.CardEditor
	Target      *Target
	LabelFilter string
	Print       bool
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(gateway ports.TrelloGateway, editor ports.CardEditor, target *Target, labelFilter string, printOnly bool) *ShowCommand {
	return &ShowCommand{
		gateway:     gateway,
		editor:      editor,
		Target:      target,
		LabelFilter: labelFilter,
		Print:       printOnly,
	}
}

// Validate checks the command has a target
func (c *ShowCommand) Validate() error {
	if c.Target == nil {
		return fmt.Errorf("show: no target resolved")
	}
	if c.Target.Card != nil && !c.Print && c.editor == nil {
		return fmt.Errorf("show: no editor available for card")
	}
	return nil
}

// Execute runs the show command
func (c *ShowCommand) Execute(ctx context.Context) (*ShowResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	t := c.Target
	switch {
	case t.Card != nil:
		if c.Print {
			return &ShowResult{
				Type:     domain.ObjectTypeCard,
				Text:     domain.RenderCard(*t.Card),
				Card:     t.Card,
				Markdown: true,
			}, nil
		}

		edited, err := c.editor.Edit(ctx, *t.Card)
		if err != nil {
			return nil, err
		}
		result := &ShowResult{Type: domain.ObjectTypeCard, Card: t.Card}
		if edited != nil {
			result.Card = edited
			result.Edited = true
		}
		return result, nil

	case t.List != nil:
		list := *t.List
		if c.LabelFilter != "" {
			list = list.Filter(c.LabelFilter)
		}
		return &ShowResult{Type: domain.ObjectTypeList, Text: domain.RenderList(list)}, nil

	case t.Board != nil:
		board := *t.Board
		if c.LabelFilter != "" {
			board = board.Filter(c.LabelFilter)
		}
		return &ShowResult{Type: domain.ObjectTypeBoard, Text: domain.RenderBoard(board)}, nil
	}

	boards, err := c.gateway.ListBoards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	return &ShowResult{Type: domain.ObjectTypeUnknown, Text: RenderOpenBoards(boards)}, nil
}

// RenderOpenBoards renders the overview shown when no board is given
func RenderOpenBoards(boards []domain.Board) string {
	var b strings.Builder
	b.WriteString(domain.Heading("Open Boards", "="))
	b.WriteString("\n\n")
	for _, bd := range boards {
		b.WriteString("* ")
		b.WriteString(bd.Name)
		b.WriteString("\n")
	}
	return b.String()
}
