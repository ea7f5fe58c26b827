package mwapi

import (
	"context"
	"net/url"
	"strconv"
)

// GetDiffByWikiRevID requests the comparison between a revision and its
// immediately preceding revision, returned verbatim from the remote service.
func (c *Client) GetDiffByWikiRevID(ctx context.Context, wiki string, revID int64) (DiffResult, error) {
	params := url.Values{}
	params.Set("action", "compare")
	params.Set("fromrev", strconv.FormatInt(revID, 10))
	params.Set("torelative", "prev")

	_, env, err := c.apiGet(ctx, wiki, params)
	if err != nil {
		return nil, err
	}

	if len(env.Compare) == 0 {
		return nil, &RemoteQueryError{
			Wiki:   wiki,
			Action: "compare",
			Code:   RemoteCodeBadBody,
			Info:   "response carries no compare member",
		}
	}

	return DiffResult(env.Compare), nil
}
