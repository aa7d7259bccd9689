package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tro/internal/domain"
	"tro/internal/ports"
)

type stubGateway struct {
	ports.TrelloGateway
	boards  []domain.Board
	labels  []domain.Label
	updated *domain.Card
	applied []string
	err     error
}

func newStubGateway() *stubGateway {
	board := domain.Board{
		ID:   "b1",
		Name: "Work",
		URL:  "https://trello.com/b/b1",
		Lists: []domain.List{
			{ID: "l1", Name: "Todo", BoardID: "b1", Cards: []domain.Card{
				{ID: "c1", Name: "Fix login", ListID: "l1", URL: "https://trello.com/c/c1",
					Labels: []domain.Label{{ID: "lb1", Name: "bug"}}},
				{ID: "c2", Name: "Write docs", ListID: "l1", URL: "https://trello.com/c/c2"},
			}},
		},
	}
	return &stubGateway{
		boards: []domain.Board{board},
		labels: []domain.Label{{ID: "lb1", Name: "bug"}, {ID: "lb2", Name: "feature"}},
	}
}

func (g *stubGateway) ListBoards(ctx context.Context) ([]domain.Board, error) {
	if g.err != nil {
		return nil, g.err
	}
	out := make([]domain.Board, len(g.boards))
	for i, b := range g.boards {
		b.Lists = nil
		out[i] = b
	}
	return out, nil
}

func (g *stubGateway) GetBoard(ctx context.Context, id string) (*domain.Board, error) {
	for _, b := range g.boards {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, errors.New("no such board")
}

func (g *stubGateway) UpdateCard(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	c := *card
	g.updated = &c
	return &c, nil
}

func (g *stubGateway) ListLabels(ctx context.Context, boardID string) ([]domain.Label, error) {
	return g.labels, nil
}

func (g *stubGateway) ApplyLabel(ctx context.Context, cardID, labelID string) error {
	g.applied = append(g.applied, cardID+":"+labelID)
	return nil
}

func (g *stubGateway) Search(ctx context.Context, query string, partial bool) (*domain.SearchResult, error) {
	return &domain.SearchResult{
		Cards:  []domain.Card{{ID: "c1", Name: "Fix login"}, {ID: "c9", Name: "Old", Closed: true}},
		Boards: []domain.Board{{ID: "b1", Name: "Work"}},
	}, nil
}

func call(t *testing.T, h func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func TestListBoards(t *testing.T) {
	gw := newStubGateway()
	res := call(t, listBoardsHandler(gw), nil)
	assert.False(t, res.IsError)
	assert.Equal(t, "b1  Work  https://trello.com/b/b1\n", text(t, res))
}

func TestListBoardsGatewayError(t *testing.T) {
	gw := newStubGateway()
	gw.err = errors.New("boom")
	res := call(t, listBoardsHandler(gw), nil)
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "boom")
}

func TestShowBoard(t *testing.T) {
	gw := newStubGateway()

	res := call(t, showBoardHandler(gw), map[string]any{"board": "work", "ignore_case": true})
	assert.False(t, res.IsError)
	assert.Equal(t, "Work\n====\n\nTodo\n----\n* Fix login [bug]\n* Write docs\n", text(t, res))

	res = call(t, showBoardHandler(gw), map[string]any{"board": "Work", "list": "Todo", "label": "bug"})
	assert.Equal(t, "Todo\n----\n* Fix login [bug]\n", text(t, res))
}

func TestShowBoardNoMatch(t *testing.T) {
	res := call(t, showBoardHandler(newStubGateway()), map[string]any{"board": "Home"})
	assert.True(t, res.IsError)
}

func TestSearch(t *testing.T) {
	res := call(t, searchHandler(newStubGateway()), map[string]any{"query": "login"})
	assert.Equal(t, "card  c1  Fix login\ncard  c9  Old  [Closed]\nboard  b1  Work\n", text(t, res))
}

func TestSearchRequiresQuery(t *testing.T) {
	res := call(t, searchHandler(newStubGateway()), map[string]any{})
	assert.True(t, res.IsError)
}

func TestURL(t *testing.T) {
	gw := newStubGateway()

	res := call(t, urlHandler(gw), map[string]any{"board": "Work", "list": "Todo", "card": "docs"})
	assert.Equal(t, "https://trello.com/c/c2", text(t, res))

	res = call(t, urlHandler(gw), map[string]any{"board": "Work", "list": "Todo"})
	assert.Equal(t, "https://trello.com/b/b1", text(t, res))
}

func TestLabelCard(t *testing.T) {
	gw := newStubGateway()

	res := call(t, labelCardHandler(gw), map[string]any{
		"board": "Work", "list": "Todo", "card": "docs", "label": "feature",
	})
	assert.False(t, res.IsError)
	assert.Equal(t, "Applied [feature] label to 'Write docs'", text(t, res))
	assert.Equal(t, []string{"c2:lb2"}, gw.applied)

	res = call(t, labelCardHandler(gw), map[string]any{
		"board": "Work", "list": "Todo", "card": "login", "label": "bug",
	})
	assert.Equal(t, "Label [bug] already exists on 'Fix login'", text(t, res))
	assert.Len(t, gw.applied, 1)
}

func TestUpdateCardOnlyChangesGivenFields(t *testing.T) {
	gw := newStubGateway()

	res := call(t, updateCardHandler(gw), map[string]any{
		"board": "Work", "list": "Todo", "card": "login", "description": "steps to reproduce",
	})
	assert.False(t, res.IsError)
	require.NotNil(t, gw.updated)
	assert.Equal(t, "Fix login", gw.updated.Name)
	assert.Equal(t, "steps to reproduce", gw.updated.Desc)
}

func TestUpdateCardRequiresAField(t *testing.T) {
	gw := newStubGateway()
	res := call(t, updateCardHandler(gw), map[string]any{"board": "Work", "list": "Todo", "card": "login"})
	assert.True(t, res.IsError)
	assert.Nil(t, gw.updated)
}
