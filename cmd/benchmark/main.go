package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tyty999/wikiloop-doublecheck/mwapi"
)

// measureThrottlePacing shows the inter-request spacing the shared throttle
// enforces across different query methods of one client instance.
func measureThrottlePacing(ctx context.Context, client *mwapi.Client, wiki string) {
	fmt.Println("=== Throttle Pacing ===")
	fmt.Println()

	page, err := client.GetRawRecentChanges(ctx, mwapi.RecentChangesOptions{Wiki: wiki, Limit: 5})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	if len(page.Query.RecentChanges) == 0 {
		fmt.Println("   No recent changes to work with")
		return
	}
	revID := page.Query.RecentChanges[0].RevID

	fmt.Println("1. Mixed-method dispatch spacing:")
	var stamps []time.Time
	stamps = append(stamps, time.Now())

	if _, err := client.GetDiffByWikiRevID(ctx, wiki, revID); err != nil {
		fmt.Printf("   Diff error: %v\n", err)
	}
	stamps = append(stamps, time.Now())

	if _, err := client.GetPageInfosByTitles(ctx, wiki, []string{page.Query.RecentChanges[0].Title}); err != nil {
		fmt.Printf("   PageInfo error: %v\n", err)
	}
	stamps = append(stamps, time.Now())

	for i := 1; i < len(stamps); i++ {
		fmt.Printf("   Gap %d: %v\n", i, stamps[i].Sub(stamps[i-1]))
	}
	fmt.Println()
}

// measureBatchPerformance compares one batched page-info request against
// sequential single-title requests for the same titles. The sequential path
// pays the throttle interval per title; the batch pays it once.
func measureBatchPerformance(ctx context.Context, client *mwapi.Client, wiki string) {
	fmt.Println("=== Batch vs Sequential Page Lookups ===")
	fmt.Println()

	page, err := client.GetRawRecentChanges(ctx, mwapi.RecentChangesOptions{Wiki: wiki, Limit: 10})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	seen := make(map[string]bool)
	var titles []string
	for _, rec := range page.Query.RecentChanges {
		if !seen[rec.Title] {
			seen[rec.Title] = true
			titles = append(titles, rec.Title)
		}
		if len(titles) == 3 {
			break
		}
	}
	if len(titles) < 3 {
		fmt.Println("   Not enough distinct pages to test")
		return
	}

	fmt.Printf("Testing with %d pages: %v\n\n", len(titles), titles)

	fmt.Println("2. Batched lookup (one request):")
	start := time.Now()
	infos, err := client.GetPageInfosByTitles(ctx, wiki, titles)
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	batchTime := time.Since(start)
	fmt.Printf("   Batch time for %d pages: %v\n", len(titles), batchTime)
	fmt.Printf("   Pages resolved: %d\n", len(infos))
	fmt.Println()

	fmt.Println("3. Sequential lookups (one request each):")
	start = time.Now()
	for _, title := range titles {
		_, _ = client.GetPageInfosByTitles(ctx, wiki, []string{title})
	}
	sequentialTime := time.Since(start)
	fmt.Printf("   Sequential time for %d pages: %v\n", len(titles), sequentialTime)
	fmt.Printf("   Batch speedup: %.1fx faster\n", float64(sequentialTime)/float64(batchTime))
	fmt.Println()
}

// showCallReduction shows the request-count effect of title batching
func showCallReduction() {
	fmt.Println("=== API Call Reduction ===")
	fmt.Println()
	fmt.Println("4. Title batching:")
	fmt.Println("   One request resolves up to 50 titles at once")
	fmt.Println()
	fmt.Println("   Example scenarios at a 500ms throttle interval:")
	fmt.Println("   - 10 titles:  10 calls / 5.0s  → 1 call / 0.5s")
	fmt.Println("   - 50 titles:  50 calls / 25.0s → 1 call / 0.5s")
	fmt.Println("   - 100 titles: 100 calls / 50s  → 2 calls / 1.0s")
	fmt.Println()
}

func main() {
	fmt.Println("WikiLoop DoubleCheck - Performance Measurements")
	fmt.Println("===============================================")
	fmt.Println()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	config := mwapi.LoadConfig()
	client := mwapi.NewClient(config, mwapi.DefaultSites(), logger)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	const wiki = "testwiki"

	measureThrottlePacing(ctx, client, wiki)
	measureBatchPerformance(ctx, client, wiki)
	showCallReduction()

	fmt.Println("=== Summary ===")
	fmt.Println()
	fmt.Println("Key behaviors:")
	fmt.Println("• Throttling: one shared interval paces every method of a client")
	fmt.Println("• Batch API: single request resolves up to 50 page titles at once")
	fmt.Println("• Connection reuse: HTTP/2 + connection pooling reduces latency")
}
