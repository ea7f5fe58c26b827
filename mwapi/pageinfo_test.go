package mwapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetPageInfosByTitles_EmptyTitles(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := newTestClient(t, server)
	defer client.Close()

	_, err := client.GetPageInfosByTitles(context.Background(), "testwiki", nil)

	var argErr *InvalidArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected InvalidArgumentError, got %v", err)
	}
	if argErr.Code != ArgumentCodeEmpty {
		t.Errorf("code = %s, want %s", argErr.Code, ArgumentCodeEmpty)
	}
	if calls != 0 {
		t.Errorf("expected zero network calls, got %d", calls)
	}
}

func TestGetPageInfosByTitles_OverBatchCap(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := newTestClient(t, server)
	defer client.Close()

	titles := make([]string, MaxTitleBatch+1)
	for i := range titles {
		titles[i] = fmt.Sprintf("Page %d", i)
	}

	_, err := client.GetPageInfosByTitles(context.Background(), "testwiki", titles)

	var argErr *InvalidArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected InvalidArgumentError, got %v", err)
	}
	if argErr.Code != ArgumentCodeBatchSize {
		t.Errorf("code = %s, want %s", argErr.Code, ArgumentCodeBatchSize)
	}
	if calls != 0 {
		t.Errorf("expected zero network calls, got %d", calls)
	}
}

func TestGetPageInfosByTitles_BatchesWithPipes(t *testing.T) {
	var gotTitles string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTitles = r.URL.Query().Get("titles")
		writeJSON(t, w, map[string]interface{}{
			"query": map[string]interface{}{
				"pages": map[string]interface{}{
					"42": map[string]interface{}{
						"pageid":  float64(42),
						"ns":      float64(0),
						"title":   "Alpha",
						"touched": "2020-01-02T03:04:05Z",
					},
					"7": map[string]interface{}{
						"pageid":  float64(7),
						"ns":      float64(0),
						"title":   "Beta",
						"touched": "2020-02-03T04:05:06Z",
					},
					"-1": map[string]interface{}{
						"ns":      float64(0),
						"title":   "No Such Page",
						"missing": "",
					},
				},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	defer client.Close()

	infos, err := client.GetPageInfosByTitles(context.Background(), "testwiki", []string{"Alpha", "Beta", "No Such Page"})
	if err != nil {
		t.Fatalf("GetPageInfosByTitles failed: %v", err)
	}

	if gotTitles != "Alpha|Beta|No Such Page" {
		t.Errorf("titles param = %q, want pipe-joined batch", gotTitles)
	}

	// Absent pages are omitted, never errors
	if len(infos) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(infos))
	}
	if infos[0].Title != "Alpha" || infos[1].Title != "Beta" {
		t.Errorf("unexpected pages: %+v", infos)
	}
	if infos[0].PageID != 42 {
		t.Errorf("pageid = %d, want 42", infos[0].PageID)
	}
	if infos[0].Timestamp != "2020-01-02T03:04:05Z" {
		t.Errorf("timestamp = %q", infos[0].Timestamp)
	}
}

func TestGetPageInfosByTitles_NoPages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]interface{}{
			"query": map[string]interface{}{},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	defer client.Close()

	infos, err := client.GetPageInfosByTitles(context.Background(), "testwiki", []string{"Anything"})
	if err != nil {
		t.Fatalf("GetPageInfosByTitles failed: %v", err)
	}
	if len(infos) != 0 {
		t.Errorf("expected empty result, got %d entries", len(infos))
	}
}
