package commands

import (
	"context"
	"errors"
	"fmt"

	"tro/internal/application"
	"tro/internal/domain"
	"tro/internal/ports"
)

// Target holds the objects a board/list/card pattern triple resolved to.
// Levels that were not asked for are nil. Board is fetched with its open
// lists and cards.
type Target struct {
	Board *domain.Board
	List  *domain.List
	Card  *domain.Card
}

// Type returns the most specific object type the target points at
func (t *Target) Type() domain.ObjectType {
	switch {
	case t.Card != nil:
		return domain.ObjectTypeCard
	case t.List != nil:
		return domain.ObjectTypeList
	case t.Board != nil:
		return domain.ObjectTypeBoard
	default:
		return domain.ObjectTypeUnknown
	}
}

// ResolveCommand looks up a board, one of its lists and one of that list's
// cards by name pattern
type ResolveCommand struct {
	gateway      ports.TrelloGateway
	picker       ports.Picker
	BoardPattern string
	ListPattern  string
	CardPattern  string
	IgnoreCase   bool
}

// NewResolveCommand creates a new ResolveCommand. picker may be nil, in
// which case ambiguous patterns are reported as errors.
func NewResolveCommand(gateway ports.TrelloGateway, picker ports.Picker, board, list, card string, ignoreCase bool) *ResolveCommand {
	return &ResolveCommand{
		gateway:      gateway,
		picker:       picker,
		BoardPattern: board,
		ListPattern:  list,
		CardPattern:  card,
		IgnoreCase:   ignoreCase,
	}
}

// Validate checks that the patterns form a path
func (c *ResolveCommand) Validate() error {
	return application.ValidatePatterns(c.BoardPattern, c.ListPattern, c.CardPattern)
}

// Execute resolves the patterns level by level
func (c *ResolveCommand) Execute(ctx context.Context) (*Target, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	target := &Target{}
	if c.BoardPattern == "" {
		return target, nil
	}

	boards, err := c.gateway.ListBoards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	match, err := choose(c.picker, boards, "board", c.BoardPattern, c.IgnoreCase)
	if err != nil {
		return nil, err
	}

	board, err := c.gateway.GetBoard(ctx, match.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve board %q: %w", match.Name, err)
	}
	target.Board = board

	if c.ListPattern == "" {
		return target, nil
	}
	list, err := choose(c.picker, board.Lists, "list", c.ListPattern, c.IgnoreCase)
	if err != nil {
		return nil, err
	}
	target.List = &list

	if c.CardPattern == "" {
		return target, nil
	}
	card, err := choose(c.picker, list.Cards, "card", c.CardPattern, c.IgnoreCase)
	if err != nil {
		return nil, err
	}
	target.Card = &card

	return target, nil
}

// choose matches pattern against items and asks the picker when more than
// one item matches
func choose[T domain.Named](picker ports.Picker, items []T, kind, pattern string, ignoreCase bool) (T, error) {
	match, err := domain.MatchOne(items, kind, pattern, ignoreCase)
	if err == nil || picker == nil || !errors.Is(err, application.ErrAmbiguous) {
		return match, err
	}

	candidates := domain.Filter(items, pattern, ignoreCase)
	idx, perr := picker.Pick(fmt.Sprintf("Multiple %ss match %q", kind, pattern), domain.Names(candidates))
	if perr != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", err, perr)
	}
	if idx < 0 || idx >= len(candidates) {
		var zero T
		return zero, err
	}
	return candidates[idx], nil
}
