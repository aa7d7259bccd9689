package commands

import (
	"context"
	"strings"

	"tro/internal/application"
	"tro/internal/domain"
)

// fakeGateway is an in-memory TrelloGateway recording the calls it receives
type fakeGateway struct {
	boards      []domain.Board
	labels      map[string][]domain.Label
	attachments map[string][]domain.Attachment
	search      *domain.SearchResult
	err         error

	calls []string

	updatedCards  []domain.Card
	updatedLists  []domain.List
	updatedBoards []domain.Board
}

func (g *fakeGateway) record(call string) {
	g.calls = append(g.calls, call)
}

func (g *fakeGateway) ListBoards(ctx context.Context) ([]domain.Board, error) {
	g.record("ListBoards")
	if g.err != nil {
		return nil, g.err
	}
	out := make([]domain.Board, 0, len(g.boards))
	for _, b := range g.boards {
		b.Lists = nil
		out = append(out, b)
	}
	return out, nil
}

func (g *fakeGateway) GetBoard(ctx context.Context, id string) (*domain.Board, error) {
	g.record("GetBoard " + id)
	for _, b := range g.boards {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, application.ErrNotFound
}

func (g *fakeGateway) CreateBoard(ctx context.Context, name string) (*domain.Board, error) {
	g.record("CreateBoard " + name)
	return &domain.Board{ID: "new-board", Name: name}, g.err
}

func (g *fakeGateway) UpdateBoard(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	g.record("UpdateBoard " + board.ID)
	g.updatedBoards = append(g.updatedBoards, *board)
	return board, g.err
}

func (g *fakeGateway) OpenBoard(ctx context.Context, id string) (*domain.Board, error) {
	g.record("OpenBoard " + id)
	return &domain.Board{ID: id, Name: "Reopened board"}, g.err
}

func (g *fakeGateway) CreateList(ctx context.Context, boardID, name string) (*domain.List, error) {
	g.record("CreateList " + boardID + " " + name)
	return &domain.List{ID: "new-list", Name: name, BoardID: boardID}, g.err
}

func (g *fakeGateway) UpdateList(ctx context.Context, list *domain.List) (*domain.List, error) {
	g.record("UpdateList " + list.ID)
	g.updatedLists = append(g.updatedLists, *list)
	return list, g.err
}

func (g *fakeGateway) OpenList(ctx context.Context, id string) (*domain.List, error) {
	g.record("OpenList " + id)
	return &domain.List{ID: id, Name: "Reopened list"}, g.err
}

func (g *fakeGateway) GetCard(ctx context.Context, id string) (*domain.Card, error) {
	g.record("GetCard " + id)
	for _, b := range g.boards {
		for _, l := range b.Lists {
			for _, c := range l.Cards {
				if c.ID == id {
					return &c, nil
				}
			}
		}
	}
	return nil, application.ErrNotFound
}

func (g *fakeGateway) CreateCard(ctx context.Context, listID, name string) (*domain.Card, error) {
	g.record("CreateCard " + listID + " " + name)
	return &domain.Card{ID: "new-card", Name: name, ListID: listID}, g.err
}

func (g *fakeGateway) UpdateCard(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	g.record("UpdateCard " + card.ID)
	g.updatedCards = append(g.updatedCards, *card)
	if g.err != nil {
		return nil, g.err
	}
	return card, nil
}

func (g *fakeGateway) OpenCard(ctx context.Context, id string) (*domain.Card, error) {
	g.record("OpenCard " + id)
	return &domain.Card{ID: id, Name: "Reopened card"}, g.err
}

func (g *fakeGateway) ListLabels(ctx context.Context, boardID string) ([]domain.Label, error) {
	g.record("ListLabels " + boardID)
	return g.labels[boardID], g.err
}

func (g *fakeGateway) ApplyLabel(ctx context.Context, cardID, labelID string) error {
	g.record("ApplyLabel " + cardID + " " + labelID)
	return g.err
}

func (g *fakeGateway) RemoveLabel(ctx context.Context, cardID, labelID string) error {
	g.record("RemoveLabel " + cardID + " " + labelID)
	return g.err
}

func (g *fakeGateway) ListAttachments(ctx context.Context, cardID string) ([]domain.Attachment, error) {
	g.record("ListAttachments " + cardID)
	return g.attachments[cardID], g.err
}

func (g *fakeGateway) AttachFile(ctx context.Context, cardID, path string) (*domain.Attachment, error) {
	g.record("AttachFile " + cardID)
	return &domain.Attachment{ID: "att", Name: path, URL: "https://example.com/att"}, g.err
}

func (g *fakeGateway) Search(ctx context.Context, query string, partial bool) (*domain.SearchResult, error) {
	g.record("Search " + query)
	if g.err != nil {
		return nil, g.err
	}
	return g.search, nil
}

type fakePicker struct {
	choice  int
	err     error
	title   string
	options []string
}

func (p *fakePicker) Pick(title string, options []string) (int, error) {
	p.title = title
	p.options = options
	return p.choice, p.err
}

type fakeCardEditor struct {
	edited *domain.Card
	err    error
	got    *domain.Card
}

func (e *fakeCardEditor) Edit(ctx context.Context, card domain.Card) (*domain.Card, error) {
	e.got = &card
	return e.edited, e.err
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return c.err
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func hasCall(calls []string, prefix string) bool {
	for _, c := range calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

var (
	labelBug     = domain.Label{ID: "lb-bug", Name: "bug", Color: "red", BoardID: "b-work"}
	labelFeature = domain.Label{ID: "lb-feat", Name: "feature", Color: "green", BoardID: "b-work"}
)

// newFixtureGateway returns a gateway with two boards:
//
//	Work: Todo (Fix login [bug], Write docs), Done (Ship v1 [feature])
//	Workshop: Ideas (Bench)
func newFixtureGateway() *fakeGateway {
	return &fakeGateway{
		boards: []domain.Board{
			{
				ID: "b-work", Name: "Work", URL: "https://trello.com/b/work",
				Lists: []domain.List{
					{ID: "l-todo", Name: "Todo", BoardID: "b-work", Cards: []domain.Card{
						{ID: "c-login", Name: "Fix login", ListID: "l-todo", URL: "https://trello.com/c/login", Labels: []domain.Label{labelBug}},
						{ID: "c-docs", Name: "Write docs", ListID: "l-todo", URL: "https://trello.com/c/docs"},
					}},
					{ID: "l-done", Name: "Done", BoardID: "b-work", Cards: []domain.Card{
						{ID: "c-ship", Name: "Ship v1", ListID: "l-done", Labels: []domain.Label{labelFeature}},
					}},
				},
			},
			{
				ID: "b-shop", Name: "Workshop", URL: "https://trello.com/b/shop",
				Lists: []domain.List{
					{ID: "l-ideas", Name: "Ideas", BoardID: "b-shop", Cards: []domain.Card{
						{ID: "c-bench", Name: "Bench", ListID: "l-ideas"},
					}},
				},
			},
		},
		labels: map[string][]domain.Label{
			"b-work": {labelBug, labelFeature},
		},
	}
}

// resolve resolves patterns against the fixture gateway and panics
// on error
func resolve(g *fakeGateway, board, list, card string) *Target {
	target, err := NewResolveCommand(g, nil, board, list, card, false).Execute(context.Background())
	if err != nil {
		panic(err)
	}
	return target
}
