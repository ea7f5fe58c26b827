// WikiLoop DoubleCheck query backend - a Model Context Protocol server over
// the throttled MediaWiki Action API client that feeds the edit-patrol tool
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tyty999/wikiloop-doublecheck/mwapi"
	"github.com/tyty999/wikiloop-doublecheck/tools"
	"github.com/tyty999/wikiloop-doublecheck/tracing"
)

const (
	ServerName    = "wikiloop-doublecheck"
	ServerVersion = "1.0.0"
)

func main() {
	// Log to stderr; stdout carries the MCP protocol
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	config := mwapi.LoadConfig()
	client := mwapi.NewClient(config, mwapi.DefaultSites(), logger)
	defer client.Close()

	ctx := context.Background()

	shutdown, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() { _ = shutdown(ctx) }()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger: logger,
		Instructions: `WikiLoop DoubleCheck query backend exposes the patrol tool's wiki queries.

Available tools:
- doublecheck_get_recent_changes: One batch of recent article edits with continuation
- doublecheck_get_latest_revisions: Uniform random sample of recent revision ids
- doublecheck_get_flagged_revisions: Sample of likely-vandalism revision ids
- doublecheck_get_page_infos: Batched page metadata lookup (up to 50 titles)
- doublecheck_get_category_children: Full category traversal with cancellation support
- doublecheck_get_revision_history: Best-effort revision-id walk for one page
- doublecheck_get_last_revisions: Batched revision lookup with continuation
- doublecheck_get_diff: Diff of a revision against its predecessor

Configure via environment variables:
- DOUBLECHECK_USER_AGENT: Client identification header
- DOUBLECHECK_TIMEOUT: Per-request timeout (default 30s)
- DOUBLECHECK_THROTTLE_INTERVAL: Minimum spacing between requests (default 500ms)`,
	})

	registry := tools.NewHandlerRegistry(client, logger)
	registry.RegisterAll(server)

	logger.Info("Starting DoubleCheck query backend",
		"name", ServerName,
		"version", ServerVersion,
		"throttle_interval", config.ThrottleInterval,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
