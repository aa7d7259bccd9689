package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tro/internal/application/commands"
	"tro/internal/domain"
	"tro/internal/ports"
)

// RegisterReadTools adds all read-only Trello tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, gw ports.TrelloGateway) {
	s.AddTool(listBoardsTool(), listBoardsHandler(gw))
	s.AddTool(showBoardTool(), showBoardHandler(gw))
	s.AddTool(searchTool(), searchHandler(gw))
	s.AddTool(urlTool(), urlHandler(gw))
}

// --- list_boards ---

func listBoardsTool() mcp.Tool {
	return mcp.NewTool("list_boards",
		mcp.WithDescription("List the open Trello boards of the authenticated member."),
	)
}

func listBoardsHandler(gw ports.TrelloGateway) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		boards, err := gw.ListBoards(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(boards, formatBoard)
	}
}

// --- show_board ---

func showBoardTool() mcp.Tool {
	return mcp.NewTool("show_board",
		mcp.WithDescription("Show a board with its open lists and cards, or a single list. Names are matched as regular expressions; an exact name wins over partial matches."),
		boardArg(true),
		listArg(false),
		mcp.WithString("label",
			mcp.Description("Only show cards carrying a label whose name matches this pattern"),
		),
		ignoreCaseArg(),
	)
}

func showBoardHandler(gw ports.TrelloGateway) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		target, err := resolve(ctx, gw, req, false)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewShowCommand(gw, nil, target, req.GetString("label", ""), true)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Text), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search Trello cards and boards. Returns names and IDs."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
		mcp.WithBoolean("partial",
			mcp.Description("Match words in the query as prefixes"),
		),
	)
}

func searchHandler(gw ports.TrelloGateway) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSearchCommand(gw, req.GetString("query", ""), req.GetBool("partial", false))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(result.Cards) == 0 && len(result.Boards) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, c := range result.Cards {
			closed := ""
			if c.Closed {
				closed = "  [Closed]"
			}
			fmt.Fprintf(&sb, "card  %s  %s%s\n", c.ID, c.Name, closed)
		}
		for _, b := range result.Boards {
			fmt.Fprintf(&sb, "board  %s  %s\n", b.ID, b.Name)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- url ---

func urlTool() mcp.Tool {
	return mcp.NewTool("url",
		mcp.WithDescription("Get the web URL of a card, or of a board. Lists resolve to their board's URL."),
		boardArg(true),
		listArg(false),
		cardArg(false),
		ignoreCaseArg(),
	)
}

func urlHandler(gw ports.TrelloGateway) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		target, err := resolve(ctx, gw, req, true)
		if err != nil {
			return toolError(err)
		}

		url, err := commands.NewURLCommand(nil, target, false).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(url), nil
	}
}

// --- helpers ---

func boardArg(required bool) mcp.ToolOption {
	opts := []mcp.PropertyOption{mcp.Description("Board name pattern")}
	if required {
		opts = append(opts, mcp.Required())
	}
	return mcp.WithString("board", opts...)
}

func listArg(required bool) mcp.ToolOption {
	opts := []mcp.PropertyOption{mcp.Description("List name pattern within the board")}
	if required {
		opts = append(opts, mcp.Required())
	}
	return mcp.WithString("list", opts...)
}

func cardArg(required bool) mcp.ToolOption {
	opts := []mcp.PropertyOption{mcp.Description("Card name pattern within the list")}
	if required {
		opts = append(opts, mcp.Required())
	}
	return mcp.WithString("card", opts...)
}

func ignoreCaseArg() mcp.ToolOption {
	return mcp.WithBoolean("ignore_case",
		mcp.Description("Match name patterns case-insensitively"),
	)
}

// resolve looks up the board/list/card named by the request arguments.
// The card argument is only read when withCard is set.
func resolve(ctx context.Context, gw ports.TrelloGateway, req mcp.CallToolRequest, withCard bool) (*commands.Target, error) {
	card := ""
	if withCard {
		card = req.GetString("card", "")
	}
	cmd := commands.NewResolveCommand(gw, nil,
		req.GetString("board", ""),
		req.GetString("list", ""),
		card,
		req.GetBool("ignore_case", false),
	)
	return cmd.Execute(ctx)
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatBoard(b domain.Board) string {
	return fmt.Sprintf("%s  %s  %s", b.ID, b.Name, b.URL)
}
