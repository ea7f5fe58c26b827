// feedcheck pulls a sampled batch of patrol candidates for a wiki and prints
// them, one revision per line, with the diff location a reviewer would open.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tyty999/wikiloop-doublecheck/mwapi"
)

func main() {
	wiki := flag.String("wiki", "enwiki", "wiki key to pull from")
	limit := flag.Int("limit", 10, "sample size")
	bad := flag.Bool("bad", false, "only likely-vandalism candidates")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	config := mwapi.LoadConfig()
	sites := mwapi.DefaultSites()
	client := mwapi.NewClient(config, sites, logger)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	opts := mwapi.LatestRevisionsOptions{Wiki: *wiki, Limit: *limit}

	var ids []int64
	var err error
	if *bad {
		ids, err = client.GetLatestOresRevisionIds(ctx, opts)
	} else {
		ids, err = client.GetLatestRevisionIds(ctx, opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "feedcheck: %v\n", err)
		os.Exit(1)
	}

	host, _ := sites.Resolve(*wiki)
	for _, id := range ids {
		fmt.Printf("%d\thttps://%s/wiki/Special:Diff/%d\n", id, host, id)
	}
}
