package mwapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// GetRevisionIdsByTitle walks a page's revision ids from the newest, or
// strictly older than startRevID when it is positive. This feeds best-effort
// enrichment paths, so every failure degrades to an empty slice with a
// logged warning instead of an error; callers tolerate partial data.
func (c *Client) GetRevisionIdsByTitle(ctx context.Context, wiki, title string, startRevID int64, limit int) []int64 {
	if limit <= 0 {
		limit = DefaultRevisionLimit
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "revisions")
	params.Set("titles", title)
	params.Set("rvprop", "ids")
	params.Set("rvdir", "older")
	params.Set("rvlimit", strconv.Itoa(limit))
	if startRevID > 0 {
		params.Set("rvstartid", strconv.FormatInt(startRevID, 10))
	}

	_, env, err := c.apiGet(ctx, wiki, params)
	if err != nil {
		c.logger.Warn("revision walk degraded to empty result",
			"wiki", wiki,
			"title", title,
			"error", err)
		return []int64{}
	}

	if env.Query == nil {
		return []int64{}
	}

	ids := make([]int64, 0, limit)
	for _, page := range env.Query.Pages {
		for _, rev := range page.Revisions {
			// rvstartid is inclusive server-side; the walk is strictly older
			if startRevID > 0 && rev.RevID >= startRevID {
				continue
			}
			ids = append(ids, rev.RevID)
		}
	}

	return ids
}

// GetLastRevisionsByTitles performs a batched revision lookup for up to
// MaxTitleBatch titles, returning the nested response with its continuation
// intact. A continueToken from a previous response of this same query shape
// is injected verbatim as the pagination parameter; tokens from other query
// shapes must not be mixed in.
func (c *Client) GetLastRevisionsByTitles(ctx context.Context, wiki string, titles []string, continueToken string) (*RevisionsPage, error) {
	if len(titles) == 0 {
		return nil, &InvalidArgumentError{
			Code:   ArgumentCodeEmpty,
			Param:  "titles",
			Reason: "at least one title is required",
		}
	}
	if len(titles) > MaxTitleBatch {
		return nil, &InvalidArgumentError{
			Code:   ArgumentCodeBatchSize,
			Param:  "titles",
			Reason: fmt.Sprintf("%d titles exceed the batch cap of %d", len(titles), MaxTitleBatch),
		}
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "revisions")
	params.Set("titles", strings.Join(titles, "|"))
	params.Set("rvprop", "ids|timestamp|user")
	if continueToken != "" {
		params.Set("rvcontinue", continueToken)
	}

	body, _, err := c.apiGet(ctx, wiki, params)
	if err != nil {
		return nil, err
	}

	var page RevisionsPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, &RemoteQueryError{Wiki: wiki, Action: "query", Code: RemoteCodeBadBody, Err: err}
	}

	return &page, nil
}
