package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tro/internal/application"
	"tro/internal/application/commands"
	"tro/internal/ports"
)

// RegisterWriteTools adds all Trello tools that modify data to the MCP server.
func RegisterWriteTools(s *server.MCPServer, gw ports.TrelloGateway) {
	s.AddTool(createCardTool(), createCardHandler(gw))
	s.AddTool(closeCardTool(), closeCardHandler(gw))
	s.AddTool(labelCardTool(), labelCardHandler(gw))
	s.AddTool(updateCardTool(), updateCardHandler(gw))
}

// --- create_card ---

func createCardTool() mcp.Tool {
	return mcp.NewTool("create_card",
		mcp.WithDescription("Create a card at the bottom of a list."),
		boardArg(true),
		listArg(true),
		mcp.WithString("name",
			mcp.Description("Name of the new card"),
			mcp.Required(),
		),
		ignoreCaseArg(),
	)
}

func createCardHandler(gw ports.TrelloGateway) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		target, err := resolve(ctx, gw, req, false)
		if err != nil {
			return toolError(err)
		}
		if target.List == nil {
			return toolError(application.ErrMissingList)
		}

		result, err := commands.NewCreateCommand(gw, target, req.GetString("name", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s\nid: %s", result.Message(), result.Card.ID)), nil
	}
}

// --- close_card ---

func closeCardTool() mcp.Tool {
	return mcp.NewTool("close_card",
		mcp.WithDescription("Close (archive) a card."),
		boardArg(true),
		listArg(true),
		cardArg(true),
		ignoreCaseArg(),
	)
}

func closeCardHandler(gw ports.TrelloGateway) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		target, err := resolve(ctx, gw, req, true)
		if err != nil {
			return toolError(err)
		}
		if target.Card == nil {
			return toolError(application.ErrMissingCard)
		}

		result, err := commands.NewCloseCommand(gw, target, false).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s\nid: %s", result.Message(), result.ID)), nil
	}
}

// --- label_card ---

func labelCardTool() mcp.Tool {
	return mcp.NewTool("label_card",
		mcp.WithDescription("Apply a board label to a card, or remove it."),
		boardArg(true),
		listArg(true),
		cardArg(true),
		mcp.WithString("label",
			mcp.Description("Label name pattern"),
			mcp.Required(),
		),
		mcp.WithBoolean("remove",
			mcp.Description("Remove the label instead of applying it"),
		),
		ignoreCaseArg(),
	)
}

func labelCardHandler(gw ports.TrelloGateway) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		target, err := resolve(ctx, gw, req, true)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewLabelCommand(gw, target,
			req.GetString("label", ""),
			req.GetBool("remove", false),
			req.GetBool("ignore_case", false),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		name := result.Label.Name
		if name == "" {
			name = result.Label.Color
		}
		return mcp.NewToolResultText(result.Message(name)), nil
	}
}

// --- update_card ---

func updateCardTool() mcp.Tool {
	return mcp.NewTool("update_card",
		mcp.WithDescription("Replace the name and/or description of a card. Omitted fields are left unchanged."),
		boardArg(true),
		listArg(true),
		cardArg(true),
		mcp.WithString("name",
			mcp.Description("New card name"),
		),
		mcp.WithString("description",
			mcp.Description("New card description (markdown)"),
		),
		ignoreCaseArg(),
	)
}

func updateCardHandler(gw ports.TrelloGateway) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		target, err := resolve(ctx, gw, req, true)
		if err != nil {
			return toolError(err)
		}

		args := req.GetArguments()
		var name, desc *string
		if v, ok := args["name"].(string); ok {
			name = &v
		}
		if v, ok := args["description"].(string); ok {
			desc = &v
		}

		updated, err := commands.NewUpdateCardCommand(gw, target.Card, name, desc).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Updated card: '%s'\nid: %s", updated.Name, updated.ID)), nil
	}
}
