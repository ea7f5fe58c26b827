package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tyty999/wikiloop-doublecheck/metrics"
	"github.com/tyty999/wikiloop-doublecheck/mwapi"
	"github.com/tyty999/wikiloop-doublecheck/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	client *mwapi.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *mwapi.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		client: client,
		logger: logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "GetRecentChanges":
		register(h, server, tool, spec, h.getRecentChanges)
	case "GetLatestRevisions":
		register(h, server, tool, spec, h.getLatestRevisions)
	case "GetFlaggedRevisions":
		register(h, server, tool, spec, h.getFlaggedRevisions)
	case "GetPageInfos":
		register(h, server, tool, spec, h.getPageInfos)
	case "GetCategoryChildren":
		register(h, server, tool, spec, h.getCategoryChildren)
	case "GetRevisionHistory":
		register(h, server, tool, spec, h.getRevisionHistory)
	case "GetLastRevisions":
		register(h, server, tool, spec, h.getLastRevisions)
	case "GetDiff":
		register(h, server, tool, spec, h.getDiff)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the handler with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name}

	switch a := args.(type) {
	case RecentChangesArgs:
		attrs = append(attrs, "wiki", a.Wiki, "bad", a.Bad)
	case SampleArgs:
		attrs = append(attrs, "wiki", a.Wiki, "limit", a.Limit)
	case PageInfosArgs:
		attrs = append(attrs, "wiki", a.Wiki, "titles", len(a.Titles))
	case CategoryChildrenArgs:
		attrs = append(attrs, "wiki", a.Wiki, "category", a.Category)
	case RevisionHistoryArgs:
		attrs = append(attrs, "wiki", a.Wiki, "title", a.Title)
	case LastRevisionsArgs:
		attrs = append(attrs, "wiki", a.Wiki, "titles", len(a.Titles))
	case DiffArgs:
		attrs = append(attrs, "wiki", a.Wiki, "rev_id", a.RevID)
	}

	switch r := result.(type) {
	case RecentChangesResult:
		attrs = append(attrs, "count", r.Count)
	case RevisionIDsResult:
		attrs = append(attrs, "count", r.Count)
	case PageInfosResult:
		attrs = append(attrs, "count", r.Count)
	case CategoryChildrenResult:
		attrs = append(attrs, "count", r.Count, "partial", r.Partial)
	}

	h.logger.Info("Tool executed", attrs...)
}

// ========== Handler implementations ==========

func (h *HandlerRegistry) getRecentChanges(ctx context.Context, args RecentChangesArgs) (RecentChangesResult, error) {
	page, err := h.client.GetRawRecentChanges(ctx, mwapi.RecentChangesOptions{
		Wiki:      args.Wiki,
		Direction: args.Direction,
		Timestamp: args.Timestamp,
		Limit:     args.Limit,
		Bad:       args.Bad,
		IsLast:    args.IsLast,
	})
	if err != nil {
		return RecentChangesResult{}, err
	}

	return RecentChangesResult{
		Wiki:          args.Wiki,
		Changes:       page.Query.RecentChanges,
		Count:         len(page.Query.RecentChanges),
		ContinueToken: page.ContinueToken(),
	}, nil
}

func (h *HandlerRegistry) getLatestRevisions(ctx context.Context, args SampleArgs) (RevisionIDsResult, error) {
	ids, err := h.client.GetLatestRevisionIds(ctx, mwapi.LatestRevisionsOptions{
		Wiki:  args.Wiki,
		Limit: args.Limit,
	})
	if err != nil {
		return RevisionIDsResult{}, err
	}
	return RevisionIDsResult{Wiki: args.Wiki, RevisionIDs: ids, Count: len(ids)}, nil
}

func (h *HandlerRegistry) getFlaggedRevisions(ctx context.Context, args SampleArgs) (RevisionIDsResult, error) {
	ids, err := h.client.GetLatestOresRevisionIds(ctx, mwapi.LatestRevisionsOptions{
		Wiki:  args.Wiki,
		Limit: args.Limit,
	})
	if err != nil {
		return RevisionIDsResult{}, err
	}
	return RevisionIDsResult{Wiki: args.Wiki, RevisionIDs: ids, Count: len(ids)}, nil
}

func (h *HandlerRegistry) getPageInfos(ctx context.Context, args PageInfosArgs) (PageInfosResult, error) {
	pages, err := h.client.GetPageInfosByTitles(ctx, args.Wiki, args.Titles)
	if err != nil {
		return PageInfosResult{}, err
	}
	return PageInfosResult{Wiki: args.Wiki, Pages: pages, Count: len(pages)}, nil
}

func (h *HandlerRegistry) getCategoryChildren(ctx context.Context, args CategoryChildrenArgs) (CategoryChildrenResult, error) {
	pages, err := h.client.GetCategoryChildren(ctx, args.Wiki, args.Category)
	if err != nil && !errors.Is(err, mwapi.ErrCancelled) {
		return CategoryChildrenResult{}, err
	}

	return CategoryChildrenResult{
		Wiki:     args.Wiki,
		Category: args.Category,
		Pages:    pages,
		Count:    len(pages),
		Partial:  errors.Is(err, mwapi.ErrCancelled),
	}, nil
}

func (h *HandlerRegistry) getRevisionHistory(ctx context.Context, args RevisionHistoryArgs) (RevisionIDsResult, error) {
	ids := h.client.GetRevisionIdsByTitle(ctx, args.Wiki, args.Title, args.StartRevID, args.Limit)
	return RevisionIDsResult{Wiki: args.Wiki, RevisionIDs: ids, Count: len(ids)}, nil
}

func (h *HandlerRegistry) getLastRevisions(ctx context.Context, args LastRevisionsArgs) (LastRevisionsResult, error) {
	page, err := h.client.GetLastRevisionsByTitles(ctx, args.Wiki, args.Titles, args.ContinueToken)
	if err != nil {
		return LastRevisionsResult{}, err
	}
	return LastRevisionsResult{
		Wiki:          args.Wiki,
		Pages:         page.Query.Pages,
		ContinueToken: page.ContinueToken(),
	}, nil
}

func (h *HandlerRegistry) getDiff(ctx context.Context, args DiffArgs) (DiffToolResult, error) {
	diff, err := h.client.GetDiffByWikiRevID(ctx, args.Wiki, args.RevID)
	if err != nil {
		return DiffToolResult{}, err
	}
	return DiffToolResult{Wiki: args.Wiki, RevID: args.RevID, Compare: diff}, nil
}
