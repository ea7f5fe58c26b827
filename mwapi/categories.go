package mwapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tyty999/wikiloop-doublecheck/metrics"
)

// CategoryPager walks the members of one category page by page, carrying the
// continuation token of each response into the next request. Requests are
// strictly sequential: the token is a required input to the following page.
// The pager is restartable in the sense that a fresh one can be created at
// any time; an exhausted pager stays exhausted.
type CategoryPager struct {
	client   *Client
	wiki     string
	category string

	cont    string
	started bool
	done    bool
	pages   int
}

// CategoryChildren prepares a pager over the members of a category. The
// category prefix is added when absent.
func (c *Client) CategoryChildren(wiki, category string) *CategoryPager {
	return &CategoryPager{
		client:   c,
		wiki:     wiki,
		category: normalizeCategoryTitle(category),
	}
}

// More reports whether another page remains to be fetched
func (p *CategoryPager) More() bool {
	return !p.done
}

// Next fetches one page of members. After the final page (the one carrying
// no continuation token) More reports false and Next returns nil, nil.
func (p *CategoryPager) Next(ctx context.Context) ([]PageInfo, error) {
	if p.done {
		return nil, nil
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "categorymembers")
	params.Set("cmtitle", p.category)
	params.Set("cmprop", "ids|title|timestamp")
	params.Set("cmlimit", strconv.Itoa(MaxListBatch))
	if p.started && p.cont != "" {
		params.Set("cmcontinue", p.cont)
	}

	_, env, err := p.client.apiGet(ctx, p.wiki, params)
	if err != nil {
		return nil, err
	}
	p.started = true
	p.pages++

	p.cont = env.Continue["cmcontinue"]
	if p.cont == "" {
		p.done = true
	}

	if env.Query == nil {
		return []PageInfo{}, nil
	}
	return env.Query.CategoryMembers, nil
}

// Pages returns how many pages the pager has fetched so far
func (p *CategoryPager) Pages() int {
	return p.pages
}

// GetCategoryChildren traverses a whole category into one flat sequence,
// stopping when a response carries no continuation token. The traversal is
// bounded only by the remote data size, so cancellation is cooperative: when
// the context is cancelled the accumulated partial result is returned
// together with ErrCancelled, letting callers keep what arrived while still
// telling the outcome apart from a remote fault.
func (c *Client) GetCategoryChildren(ctx context.Context, wiki, category string) ([]PageInfo, error) {
	pager := c.CategoryChildren(wiki, category)

	var children []PageInfo
	for pager.More() {
		if err := ctx.Err(); err != nil {
			return children, fmt.Errorf("category %s on %s after %d pages: %w", category, wiki, pager.Pages(), ErrCancelled)
		}

		batch, err := pager.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return children, fmt.Errorf("category %s on %s after %d pages: %w", category, wiki, pager.Pages(), ErrCancelled)
			}
			return nil, err
		}
		children = append(children, batch...)
	}

	metrics.ObserveCategoryWalk(wiki, pager.Pages())
	return children, nil
}

// normalizeCategoryTitle ensures the title carries the Category prefix
func normalizeCategoryTitle(title string) string {
	title = strings.TrimSpace(title)
	if !strings.HasPrefix(title, "Category:") {
		title = "Category:" + title
	}
	return title
}
