package tools

import (
	"encoding/json"

	"github.com/tyty999/wikiloop-doublecheck/mwapi"
)

// ========== Feed Types ==========

type RecentChangesArgs struct {
	Wiki      string `json:"wiki" jsonschema:"required,description=Wiki key such as enwiki"`
	Direction string `json:"direction,omitempty" jsonschema:"description=Walk direction: older (default) or newer"`
	Timestamp string `json:"timestamp,omitempty" jsonschema:"description=Cursor: the prior batch's last timestamp"`
	Limit     int    `json:"limit,omitempty" jsonschema:"description=Maximum rows (default 500)"`
	Bad       bool   `json:"bad,omitempty" jsonschema:"description=Only changes not yet reviewed by automated scoring"`
	IsLast    bool   `json:"is_last,omitempty" jsonschema:"description=Only the most recent revision per page"`
}

type RecentChangesResult struct {
	Wiki          string                     `json:"wiki"`
	Changes       []mwapi.RecentChangeRecord `json:"changes"`
	Count         int                        `json:"count"`
	ContinueToken string                     `json:"continue_token,omitempty"`
}

type SampleArgs struct {
	Wiki  string `json:"wiki" jsonschema:"required,description=Wiki key such as enwiki"`
	Limit int    `json:"limit" jsonschema:"required,description=Requested sample size"`
}

type RevisionIDsResult struct {
	Wiki        string  `json:"wiki"`
	RevisionIDs []int64 `json:"revision_ids"`
	Count       int     `json:"count"`
}

// ========== Page Types ==========

type PageInfosArgs struct {
	Wiki   string   `json:"wiki" jsonschema:"required,description=Wiki key such as enwiki"`
	Titles []string `json:"titles" jsonschema:"required,description=1 to 50 page titles"`
}

type PageInfosResult struct {
	Wiki  string           `json:"wiki"`
	Pages []mwapi.PageInfo `json:"pages"`
	Count int              `json:"count"`
}

type CategoryChildrenArgs struct {
	Wiki     string `json:"wiki" jsonschema:"required,description=Wiki key such as enwiki"`
	Category string `json:"category" jsonschema:"required,description=Category title with or without the Category: prefix"`
}

type CategoryChildrenResult struct {
	Wiki     string           `json:"wiki"`
	Category string           `json:"category"`
	Pages    []mwapi.PageInfo `json:"pages"`
	Count    int              `json:"count"`

	// Partial reports a cancelled walk; Pages holds what accumulated
	Partial bool `json:"partial,omitempty"`
}

// ========== History Types ==========

type RevisionHistoryArgs struct {
	Wiki       string `json:"wiki" jsonschema:"required,description=Wiki key such as enwiki"`
	Title      string `json:"title" jsonschema:"required,description=Page title"`
	StartRevID int64  `json:"start_rev_id,omitempty" jsonschema:"description=Walk strictly older than this revision id"`
	Limit      int    `json:"limit,omitempty" jsonschema:"description=Maximum ids (default 50)"`
}

type LastRevisionsArgs struct {
	Wiki          string   `json:"wiki" jsonschema:"required,description=Wiki key such as enwiki"`
	Titles        []string `json:"titles" jsonschema:"required,description=1 to 50 page titles"`
	ContinueToken string   `json:"continue_token,omitempty" jsonschema:"description=Token from the prior response of this query"`
}

type LastRevisionsResult struct {
	Wiki          string                `json:"wiki"`
	Pages         map[string]mwapi.Page `json:"pages"`
	ContinueToken string                `json:"continue_token,omitempty"`
}

// ========== Diff Types ==========

type DiffArgs struct {
	Wiki  string `json:"wiki" jsonschema:"required,description=Wiki key such as enwiki"`
	RevID int64  `json:"rev_id" jsonschema:"required,description=Revision id to compare against its predecessor"`
}

type DiffToolResult struct {
	Wiki    string          `json:"wiki"`
	RevID   int64           `json:"rev_id"`
	Compare json.RawMessage `json:"compare"`
}
