package tools

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/tyty999/wikiloop-doublecheck/mwapi"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newTestRegistry wires a registry to a fixture wiki reachable as "testwiki".
func newTestRegistry(t *testing.T, handler http.HandlerFunc) (*HandlerRegistry, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)

	u, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("parse server URL: %v", err)
	}
	config := &mwapi.Config{
		UserAgent:        "DoubleCheckTest/1.0",
		Timeout:          5 * time.Second,
		ThrottleInterval: 0,
		Scheme:           "http",
	}
	client := mwapi.NewClient(config, mwapi.SiteMap{"testwiki": u.Host}, testLogger())
	return NewHandlerRegistry(client, testLogger()), server
}

func TestNewHandlerRegistry(t *testing.T) {
	logger := testLogger()
	config := &mwapi.Config{UserAgent: "t", Timeout: time.Second, Scheme: "http"}
	client := mwapi.NewClient(config, mwapi.SiteMap{}, logger)
	defer client.Close()

	registry := NewHandlerRegistry(client, logger)

	if registry == nil {
		t.Fatal("Expected non-nil registry")
	}
	if registry.client != client {
		t.Error("Registry should hold the client reference")
	}
	if registry.logger != logger {
		t.Error("Registry should hold the logger reference")
	}
}

func TestBuildTool(t *testing.T) {
	logger := testLogger()
	config := &mwapi.Config{UserAgent: "t", Timeout: time.Second, Scheme: "http"}
	client := mwapi.NewClient(config, mwapi.SiteMap{}, logger)
	defer client.Close()

	registry := NewHandlerRegistry(client, logger)

	tests := []struct {
		name     string
		spec     ToolSpec
		wantName string
		wantDesc string
		wantRO   bool
		wantIdem bool
		wantOpen bool
	}{
		{
			name: "read-only idempotent tool",
			spec: ToolSpec{
				Name:        "doublecheck_get_page_infos",
				Title:       "Get Page Infos",
				Description: "Look up page metadata",
				Method:      "GetPageInfos",
				Category:    "pages",
				ReadOnly:    true,
				Idempotent:  true,
			},
			wantName: "doublecheck_get_page_infos",
			wantDesc: "Look up page metadata",
			wantRO:   true,
			wantIdem: true,
			wantOpen: false,
		},
		{
			name: "open world tool",
			spec: ToolSpec{
				Name:        "doublecheck_get_latest_revisions",
				Title:       "Sample Latest Revisions",
				Description: "Draw a revision sample",
				Method:      "GetLatestRevisions",
				Category:    "feed",
				OpenWorld:   true,
			},
			wantName: "doublecheck_get_latest_revisions",
			wantDesc: "Draw a revision sample",
			wantOpen: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := registry.buildTool(tt.spec)

			if tool.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", tool.Name, tt.wantName)
			}
			if tool.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", tool.Description, tt.wantDesc)
			}
			if tool.Annotations == nil {
				t.Fatal("Expected annotations")
			}
			if tool.Annotations.ReadOnlyHint != tt.wantRO {
				t.Errorf("ReadOnlyHint = %v, want %v", tool.Annotations.ReadOnlyHint, tt.wantRO)
			}
			if tool.Annotations.IdempotentHint != tt.wantIdem {
				t.Errorf("IdempotentHint = %v, want %v", tool.Annotations.IdempotentHint, tt.wantIdem)
			}
			if tt.wantOpen && (tool.Annotations.OpenWorldHint == nil || !*tool.Annotations.OpenWorldHint) {
				t.Error("Expected OpenWorldHint to be true")
			}
		})
	}
}

func TestRecoverPanic(t *testing.T) {
	logger := testLogger()
	config := &mwapi.Config{UserAgent: "t", Timeout: time.Second, Scheme: "http"}
	client := mwapi.NewClient(config, mwapi.SiteMap{}, logger)
	defer client.Close()

	registry := NewHandlerRegistry(client, logger)

	// Test that recoverPanic doesn't panic itself
	func() {
		defer registry.recoverPanic("test_tool")
		panic("test panic")
	}()

	// If we get here, panic was recovered successfully
}

func TestLogExecution(t *testing.T) {
	logger := testLogger()
	config := &mwapi.Config{UserAgent: "t", Timeout: time.Second, Scheme: "http"}
	client := mwapi.NewClient(config, mwapi.SiteMap{}, logger)
	defer client.Close()

	registry := NewHandlerRegistry(client, logger)
	spec := ToolSpec{Name: "test_tool", Category: "feed"}

	registry.logExecution(spec,
		RecentChangesArgs{Wiki: "enwiki", Bad: true},
		RecentChangesResult{Count: 3})

	registry.logExecution(spec,
		SampleArgs{Wiki: "enwiki", Limit: 10},
		RevisionIDsResult{Count: 10})

	registry.logExecution(spec,
		CategoryChildrenArgs{Wiki: "enwiki", Category: "Stubs"},
		CategoryChildrenResult{Count: 7, Partial: true})

	registry.logExecution(spec,
		DiffArgs{Wiki: "enwiki", RevID: 42},
		DiffToolResult{})
}

func TestGetPageInfosHandler(t *testing.T) {
	registry, server := newTestRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"query":{"pages":{"5":{"pageid":5,"ns":0,"title":"Alpha","touched":"2020-01-01T00:00:00Z"}}}}`))
	})
	defer server.Close()
	defer registry.client.Close()

	result, err := registry.getPageInfos(context.Background(), PageInfosArgs{
		Wiki:   "testwiki",
		Titles: []string{"Alpha"},
	})
	if err != nil {
		t.Fatalf("getPageInfos failed: %v", err)
	}
	if result.Count != 1 || len(result.Pages) != 1 {
		t.Fatalf("expected 1 page, got %+v", result)
	}
	if result.Pages[0].Title != "Alpha" || result.Pages[0].PageID != 5 {
		t.Errorf("unexpected page: %+v", result.Pages[0])
	}
}

func TestGetRecentChangesHandler(t *testing.T) {
	registry, server := newTestRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"continue":{"rccontinue":"tok|1","continue":"-||"},"query":{"recentchanges":[{"type":"edit","ns":0,"title":"A","revid":100,"old_revid":99,"rcid":1,"user":"E","timestamp":"2020-06-01T00:00:00Z"}]}}`))
	})
	defer server.Close()
	defer registry.client.Close()

	result, err := registry.getRecentChanges(context.Background(), RecentChangesArgs{Wiki: "testwiki"})
	if err != nil {
		t.Fatalf("getRecentChanges failed: %v", err)
	}
	if result.Count != 1 {
		t.Errorf("count = %d, want 1", result.Count)
	}
	if result.ContinueToken != "tok|1" {
		t.Errorf("continue token = %q, want tok|1", result.ContinueToken)
	}
}

// stopAfterThrottle lets n dispatches through, then cancels the context so
// the traversal observes cancellation at a deterministic point.
type stopAfterThrottle struct {
	remaining int
	cancel    context.CancelFunc
}

func (s *stopAfterThrottle) Wait(ctx context.Context) error {
	if s.remaining == 0 {
		s.cancel()
		return ctx.Err()
	}
	s.remaining--
	return nil
}

func TestGetCategoryChildrenHandler_PartialOnCancel(t *testing.T) {
	registry, server := newTestRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"continue":{"cmcontinue":"page|next","continue":"-||"},"query":{"categorymembers":[{"pageid":1,"ns":0,"title":"Child"}]}}`))
	})
	defer server.Close()
	defer registry.client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	registry.client.SetThrottle(&stopAfterThrottle{remaining: 1, cancel: cancel})

	result, err := registry.getCategoryChildren(ctx, CategoryChildrenArgs{Wiki: "testwiki", Category: "Endless"})
	if err != nil {
		t.Fatalf("a cancelled walk should not surface as an error: %v", err)
	}
	if !result.Partial {
		t.Error("expected the result to be marked partial")
	}
	if result.Count == 0 {
		t.Error("expected the accumulated members to be kept")
	}
}

func TestGetDiffHandler(t *testing.T) {
	registry, server := newTestRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"compare":{"fromrevid":41,"torevid":42,"*":"<td>x</td>"}}`))
	})
	defer server.Close()
	defer registry.client.Close()

	result, err := registry.getDiff(context.Background(), DiffArgs{Wiki: "testwiki", RevID: 42})
	if err != nil {
		t.Fatalf("getDiff failed: %v", err)
	}
	if result.RevID != 42 {
		t.Errorf("rev id = %d, want 42", result.RevID)
	}
	if len(result.Compare) == 0 {
		t.Error("expected the compare payload to pass through")
	}
}

func TestAllToolsNotEmpty(t *testing.T) {
	if len(AllTools) == 0 {
		t.Error("AllTools should not be empty")
	}

	// Verify each tool has required fields
	for i, spec := range AllTools {
		if spec.Name == "" {
			t.Errorf("Tool %d has empty Name", i)
		}
		if spec.Method == "" {
			t.Errorf("Tool %s has empty Method", spec.Name)
		}
		if spec.Description == "" {
			t.Errorf("Tool %s has empty Description", spec.Name)
		}
		if spec.Category == "" {
			t.Errorf("Tool %s has empty Category", spec.Name)
		}
	}
}

func TestToolSpecMethods(t *testing.T) {
	knownMethods := map[string]bool{
		"GetRecentChanges":    true,
		"GetLatestRevisions":  true,
		"GetFlaggedRevisions": true,
		"GetPageInfos":        true,
		"GetCategoryChildren": true,
		"GetRevisionHistory":  true,
		"GetLastRevisions":    true,
		"GetDiff":             true,
	}

	for _, spec := range AllTools {
		if !knownMethods[spec.Method] {
			t.Errorf("Tool %s has unknown method: %s", spec.Name, spec.Method)
		}
	}
}

func TestToolsByCategory(t *testing.T) {
	feedTools := ToolsByCategory("feed")
	if len(feedTools) == 0 {
		t.Error("Expected feed tools")
	}
	for _, tool := range feedTools {
		if tool.Category != "feed" {
			t.Errorf("Tool %s has category %s, expected feed", tool.Name, tool.Category)
		}
	}

	// Non-existent category should return empty
	unknownTools := ToolsByCategory("unknown")
	if len(unknownTools) != 0 {
		t.Errorf("Expected 0 tools for unknown category, got %d", len(unknownTools))
	}
}
