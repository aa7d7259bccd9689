package main

import (
	"context"
	"flag"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "tro/internal/adapters/mcp"
	"tro/internal/adapters/trello"
	"tro/internal/config"
	"tro/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "path to config.yaml")
	verbosity := flag.Int("v", 0, "log verbosity (1 info, 2 debug)")
	flag.Parse()

	// stdout carries the protocol, logs go to stderr
	log := logging.New(os.Stderr, *verbosity)
	ctx := context.Background()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Error(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Error(ctx, "invalid config", "error", err)
		os.Exit(1)
	}

	client := trello.NewClient(cfg.Host, cfg.Key, cfg.Token,
		trello.WithTimeout(cfg.Timeout),
		trello.WithRateLimit(cfg.RateLimit),
		trello.WithLogger(log),
	)

	mcpServer := server.NewMCPServer(
		"tro-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, client)
	mcpadapter.RegisterWriteTools(mcpServer, client)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Error(ctx, "tro-mcp stopped", "error", err)
		os.Exit(1)
	}
}
