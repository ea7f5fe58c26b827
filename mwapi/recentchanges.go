package mwapi

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/tyty999/wikiloop-doublecheck/metrics"
)

// oresThreshold is the likely-damaging / likely-bad-faith cutoff applied to
// both model sides when surfacing flagged candidates.
const oresThreshold = 0.5

// GetRawRecentChanges queries the recent-changes feed: article namespace
// only, bot edits excluded, edit-type changes only. Bad additionally
// excludes changes already reviewed through automated scoring; IsLast
// restricts to the most recent revision per page. Direction and Timestamp
// together implement cursor paging. The nested response shape is preserved
// so downstream consumers can carry the continuation token forward.
func (c *Client) GetRawRecentChanges(ctx context.Context, opts RecentChangesOptions) (*RecentChangesPage, error) {
	limit := opts.Limit
	if limit <= 0 || limit > MaxListBatch {
		limit = MaxListBatch
	}

	direction := opts.Direction
	if direction == "" {
		direction = "older"
	}

	show := "!bot"
	if opts.Bad {
		show += "|!oresreview"
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "recentchanges")
	params.Set("rcnamespace", "0")
	params.Set("rctype", "edit")
	params.Set("rcshow", show)
	params.Set("rcprop", "title|ids|sizes|flags|user|userid|timestamp|comment|oresscores|tags")
	params.Set("rclimit", strconv.Itoa(limit))
	params.Set("rcdir", direction)
	if opts.Timestamp != "" {
		params.Set("rcstart", opts.Timestamp)
	}
	if opts.IsLast {
		params.Set("rctoponly", "1")
	}

	body, _, err := c.apiGet(ctx, opts.Wiki, params)
	if err != nil {
		return nil, err
	}

	var page RecentChangesPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, &RemoteQueryError{Wiki: opts.Wiki, Action: "query", Code: RemoteCodeBadBody, Err: err}
	}

	return &page, nil
}

// GetLatestRevisionIds fetches a full recent-changes batch and returns a
// uniformly random sample of its revision ids sized to opts.Limit. The
// randomness decorrelates which edits different reviewers see, spreading
// moderation coverage across the feed.
func (c *Client) GetLatestRevisionIds(ctx context.Context, opts LatestRevisionsOptions) ([]int64, error) {
	page, err := c.GetRawRecentChanges(ctx, RecentChangesOptions{
		Wiki:  opts.Wiki,
		Limit: MaxListBatch,
	})
	if err != nil {
		return nil, err
	}

	ids := revisionIDsOf(page.Query.RecentChanges)
	metrics.ObserveSamplePool(opts.Wiki, "latest", len(ids))
	return c.sampleIDs(ids, opts.Limit), nil
}

// GetLatestOresRevisionIds fetches the same batch but keeps only changes
// scored likely-damaging AND likely-bad-faith before sampling. A record
// lacking either score is excluded, not treated as zero.
func (c *Client) GetLatestOresRevisionIds(ctx context.Context, opts LatestRevisionsOptions) ([]int64, error) {
	page, err := c.GetRawRecentChanges(ctx, RecentChangesOptions{
		Wiki:  opts.Wiki,
		Limit: MaxListBatch,
	})
	if err != nil {
		return nil, err
	}

	flagged := make([]RecentChangeRecord, 0, len(page.Query.RecentChanges))
	for _, rec := range page.Query.RecentChanges {
		if likelyDamaging(rec.OresScores) {
			flagged = append(flagged, rec)
		}
	}

	ids := revisionIDsOf(flagged)
	metrics.ObserveSamplePool(opts.Wiki, "ores", len(ids))
	return c.sampleIDs(ids, opts.Limit), nil
}

// likelyDamaging reports whether both model sides clear the cutoff
func likelyDamaging(scores *OresScores) bool {
	if scores == nil || scores.Damaging == nil || scores.Goodfaith == nil {
		return false
	}
	return scores.Damaging.True >= oresThreshold && scores.Goodfaith.False >= oresThreshold
}

func revisionIDsOf(recs []RecentChangeRecord) []int64 {
	ids := make([]int64, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.RevID)
	}
	return ids
}
