package tools

// AllTools contains all tool specifications for the DoubleCheck query
// backend. Tools are organized by category. Descriptions follow a structured
// format for LLM tool selection:
// - USE WHEN: Natural language triggers
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// FEED TOOLS
	// ==========================================================================
	{
		Name:     "doublecheck_get_recent_changes",
		Method:   "GetRecentChanges",
		Title:    "Get Recent Changes",
		Category: "feed",
		Description: `Fetch one batch of recent article edits from a wiki, bot edits excluded.

USE WHEN: User asks "what changed recently on enwiki", or a feed consumer needs the next page of the edit stream.

PARAMETERS:
- wiki: Wiki key such as "enwiki" (required)
- direction: "older" (default) or "newer"
- timestamp: Cursor from the prior batch's last timestamp
- limit: Max rows (default 500)
- bad: Only changes not yet reviewed by automated scoring
- is_last: Only the most recent revision per page

RETURNS: The raw recent-changes batch with its continuation token preserved.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "doublecheck_get_latest_revisions",
		Method:   "GetLatestRevisions",
		Title:    "Sample Latest Revisions",
		Category: "feed",
		Description: `Draw a uniform random sample of recent revision ids for review.

USE WHEN: A reviewer asks for "something to check" without a quality filter.

PARAMETERS:
- wiki: Wiki key (required)
- limit: Sample size (required)

RETURNS: Revision ids drawn uniformly from a full recent-changes batch.`,
		ReadOnly:  true,
		OpenWorld: true,
	},
	{
		Name:     "doublecheck_get_flagged_revisions",
		Method:   "GetFlaggedRevisions",
		Title:    "Sample Flagged Revisions",
		Category: "feed",
		Description: `Draw a uniform random sample of likely-vandalism revision ids.

USE WHEN: A reviewer wants candidates scored likely-damaging AND likely-bad-faith.

PARAMETERS:
- wiki: Wiki key (required)
- limit: Sample size (required)

RETURNS: Revision ids sampled only from changes clearing both score thresholds.`,
		ReadOnly:  true,
		OpenWorld: true,
	},

	// ==========================================================================
	// PAGE TOOLS
	// ==========================================================================
	{
		Name:     "doublecheck_get_page_infos",
		Method:   "GetPageInfos",
		Title:    "Get Page Infos",
		Category: "pages",
		Description: `Look up basic metadata for up to 50 pages in one batched request.

USE WHEN: Titles need resolving to page ids and namespaces.

PARAMETERS:
- wiki: Wiki key (required)
- titles: 1..50 page titles (required)

RETURNS: One entry per page that exists remotely; absent titles are omitted.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "doublecheck_get_category_children",
		Method:   "GetCategoryChildren",
		Title:    "Get Category Children",
		Category: "pages",
		Description: `Walk an entire category into one flat page list, following continuation tokens.

USE WHEN: User asks "which pages are in Category:X". Large categories take a while; a cancelled walk returns what accumulated so far.

PARAMETERS:
- wiki: Wiki key (required)
- category: Category title, prefix optional (required)

RETURNS: All member pages in page order, plus whether the walk was cut short.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// HISTORY TOOLS
	// ==========================================================================
	{
		Name:     "doublecheck_get_revision_history",
		Method:   "GetRevisionHistory",
		Title:    "Get Revision History",
		Category: "history",
		Description: `List a page's revision ids, newest first, best effort.

USE WHEN: Enriching an edit with the revisions that preceded it.

PARAMETERS:
- wiki: Wiki key (required)
- title: Page title (required)
- start_rev_id: Walk strictly older than this revision
- limit: Max ids (default 50)

RETURNS: Revision ids; an empty list when the page is unknown or the lookup failed.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "doublecheck_get_last_revisions",
		Method:   "GetLastRevisions",
		Title:    "Get Last Revisions by Titles",
		Category: "history",
		Description: `Batched revision lookup for up to 50 titles with continuation support.

USE WHEN: The latest revisions of a known title set are needed, possibly across several continuation calls.

PARAMETERS:
- wiki: Wiki key (required)
- titles: 1..50 page titles (required)
- continue_token: Token from the prior response of this same query

RETURNS: The raw nested revisions response, continuation token included.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// DIFF TOOLS
	// ==========================================================================
	{
		Name:     "doublecheck_get_diff",
		Method:   "GetDiff",
		Title:    "Get Revision Diff",
		Category: "diff",
		Description: `Compare a revision against its immediately preceding revision.

USE WHEN: A reviewer needs to see what an edit actually changed before judging it.

PARAMETERS:
- wiki: Wiki key (required)
- rev_id: Revision id (required)

RETURNS: The comparison payload exactly as the wiki produced it.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}

// ToolsByCategory returns all tools in a given category.
func ToolsByCategory(category string) []ToolSpec {
	var specs []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			specs = append(specs, spec)
		}
	}
	return specs
}
