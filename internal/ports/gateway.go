package ports

import (
	"context"

	"tro/internal/domain"
)

// CardUpdater pushes a card's editable fields to the remote service.
// It is the only remote operation the edit session depends on.
type CardUpdater interface {
	UpdateCard(ctx context.Context, card *domain.Card) (*domain.Card, error)
}

// TrelloGateway defines the remote operations available on boards, lists,
// cards, labels and attachments
type TrelloGateway interface {
	CardUpdater

	// Boards
	ListBoards(ctx context.Context) ([]domain.Board, error)
	GetBoard(ctx context.Context, id string) (*domain.Board, error)
	CreateBoard(ctx context.Context, name string) (*domain.Board, error)
	UpdateBoard(ctx context.Context, board *domain.Board) (*domain.Board, error)
	OpenBoard(ctx context.Context, id string) (*domain.Board, error)

	// Lists
	CreateList(ctx context.Context, boardID, name string) (*domain.List, error)
	UpdateList(ctx context.Context, list *domain.List) (*domain.List, error)
	OpenList(ctx context.Context, id string) (*domain.List, error)

	// Cards
	GetCard(ctx context.Context, id string) (*domain.Card, error)
	CreateCard(ctx context.Context, listID, name string) (*domain.Card, error)
	OpenCard(ctx context.Context, id string) (*domain.Card, error)

	// Labels
	ListLabels(ctx context.Context, boardID string) ([]domain.Label, error)
	ApplyLabel(ctx context.Context, cardID, labelID string) error
	RemoveLabel(ctx context.Context, cardID, labelID string) error

	// Attachments
	ListAttachments(ctx context.Context, cardID string) ([]domain.Attachment, error)
	AttachFile(ctx context.Context, cardID, path string) (*domain.Attachment, error)

	// Search
	Search(ctx context.Context, query string, partial bool) (*domain.SearchResult, error)
}
