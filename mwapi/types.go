package mwapi

import "encoding/json"

// Batch limits mirroring the Action API caps for anonymous clients
const (
	// MaxTitleBatch is the hard cap on titles per batched query
	MaxTitleBatch = 50

	// MaxListBatch is the cap on list-query rows per request
	MaxListBatch = 500

	// DefaultRevisionLimit bounds a revision-history walk when the caller
	// does not ask for more
	DefaultRevisionLimit = 50
)

// PageInfo is one page returned by a query. Field tags follow the wire names
// so list rows decode directly; no identity beyond the tuple.
type PageInfo struct {
	PageID    int64  `json:"pageid"`
	Namespace int    `json:"ns"`
	Title     string `json:"title"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Revision is one entry of a page's revision history
type Revision struct {
	RevID     int64  `json:"revid"`
	ParentID  int64  `json:"parentid,omitempty"`
	User      string `json:"user,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Page is the nested per-page shape of a prop=revisions or prop=info query.
// Optional nested fields stay optional here: a page with no revisions decodes
// to an empty slice, a missing page carries the Missing marker.
type Page struct {
	PageID    int64      `json:"pageid,omitempty"`
	Namespace int        `json:"ns"`
	Title     string     `json:"title"`
	Missing   *string    `json:"missing,omitempty"`
	Touched   string     `json:"touched,omitempty"`
	LastRevID int64      `json:"lastrevid,omitempty"`
	Revisions []Revision `json:"revisions,omitempty"`
}

// ScorePair holds the two-sided probability estimate of one ORES model
type ScorePair struct {
	True  float64 `json:"true"`
	False float64 `json:"false"`
}

// OresScores carries the automated scoring attached to a change. Either
// model may be absent when the scoring service has not (yet) seen the edit;
// an absent model is excluded from threshold filters, never treated as zero.
type OresScores struct {
	Damaging  *ScorePair `json:"damaging,omitempty"`
	Goodfaith *ScorePair `json:"goodfaith,omitempty"`
}

// RecentChangeRecord is one row per edit event
type RecentChangeRecord struct {
	Type       string      `json:"type"`
	Namespace  int         `json:"ns"`
	Title      string      `json:"title"`
	PageID     int64       `json:"pageid"`
	RevID      int64       `json:"revid"`
	OldRevID   int64       `json:"old_revid"`
	RcID       int64       `json:"rcid"`
	User       string      `json:"user"`
	UserID     int64       `json:"userid"`
	Timestamp  string      `json:"timestamp"`
	Comment    string      `json:"comment"`
	OresScores *OresScores `json:"oresscores,omitempty"`
	Tags       []string    `json:"tags,omitempty"`
}

// RecentChangesPage preserves the nested response shape of a recent-changes
// query so downstream consumers can carry the continuation token forward.
type RecentChangesPage struct {
	Continue map[string]string  `json:"continue,omitempty"`
	Query    RecentChangesBatch `json:"query"`
}

// RecentChangesBatch is the query member of a recent-changes response
type RecentChangesBatch struct {
	RecentChanges []RecentChangeRecord `json:"recentchanges"`
}

// ContinueToken returns the cursor for the next page of the same query,
// empty when the walk is complete. A token from response N is valid only for
// request N+1 of the same logical query.
func (p *RecentChangesPage) ContinueToken() string {
	return p.Continue["rccontinue"]
}

// RevisionsPage preserves the nested response shape of a batched
// prop=revisions lookup, continuation included.
type RevisionsPage struct {
	Continue map[string]string `json:"continue,omitempty"`
	Query    RevisionsBatch    `json:"query"`
}

// RevisionsBatch is the query member of a revisions response; pages are
// keyed by page id as the wire sends them.
type RevisionsBatch struct {
	Pages map[string]Page `json:"pages"`
}

// ContinueToken returns the rvcontinue cursor, empty when exhausted
func (p *RevisionsPage) ContinueToken() string {
	return p.Continue["rvcontinue"]
}

// DiffResult is the raw comparison payload between two revisions, returned
// verbatim with no normalization attempted.
type DiffResult = json.RawMessage

// RecentChangesOptions shapes a recent-changes query
type RecentChangesOptions struct {
	// Wiki is the target wiki key
	Wiki string

	// Direction is the walk direction, "older" (default) or "newer"
	Direction string

	// Timestamp is the cursor: the prior response's last timestamp with
	// direction "older" continues the walk strictly backward in time
	Timestamp string

	// Limit caps the batch, default and max MaxListBatch
	Limit int

	// Bad restricts to changes not yet reviewed through automated scoring
	Bad bool

	// IsLast restricts to the most recent revision per page
	IsLast bool
}

// LatestRevisionsOptions shapes a sampled candidate-feed request
type LatestRevisionsOptions struct {
	// Wiki is the target wiki key
	Wiki string

	// Limit is the requested sample size
	Limit int
}

// API response envelope. Only the members the client touches are modeled;
// everything else passes through untouched in the raw body.
type apiResponse struct {
	Error    *apiError         `json:"error,omitempty"`
	Continue map[string]string `json:"continue,omitempty"`
	Query    *queryBody        `json:"query,omitempty"`
	Compare  json.RawMessage   `json:"compare,omitempty"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

type queryBody struct {
	Pages           map[string]Page      `json:"pages,omitempty"`
	RecentChanges   []RecentChangeRecord `json:"recentchanges,omitempty"`
	CategoryMembers []PageInfo           `json:"categorymembers,omitempty"`
}
