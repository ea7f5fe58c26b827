package mwapi

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// GetPageInfosByTitles looks up 1..MaxTitleBatch pages in one batched
// request, pipe-joining the titles. Violating the cap is a programming error
// and fails before any network call. Pages absent remotely are simply not in
// the result; an empty slice means none of the titles exist.
func (c *Client) GetPageInfosByTitles(ctx context.Context, wiki string, titles []string) ([]PageInfo, error) {
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
	params.Set("prop", "info")
	params.Set("titles", strings.Join(titles, "|"))

	_, env, err := c.apiGet(ctx, wiki, params)
	if err != nil {
		return nil, err
	}

	if env.Query == nil {
		return []PageInfo{}, nil
	}

	infos := make([]PageInfo, 0, len(env.Query.Pages))
	for _, page := range env.Query.Pages {
		if page.Missing != nil || page.PageID <= 0 {
			continue
		}
		infos = append(infos, PageInfo{
			PageID:    page.PageID,
			Namespace: page.Namespace,
			Title:     page.Title,
			Timestamp: page.Touched,
		})
	}

	// The pages member is a JSON object; order it for deterministic output
	sort.Slice(infos, func(i, j int) bool { return infos[i].Title < infos[j].Title })

	return infos, nil
}
