package mwapi

import (
	"errors"
	"fmt"
)

// Error codes for programmatic error handling
type ErrorCode string

const (
	// Remote query error codes
	RemoteCodeTransport ErrorCode = "REMOTE_TRANSPORT"
	RemoteCodeHTTP      ErrorCode = "REMOTE_HTTP_STATUS"
	RemoteCodeBadBody   ErrorCode = "REMOTE_BAD_BODY"
	RemoteCodeAPIError  ErrorCode = "REMOTE_API_ERROR"

	// Argument error codes
	ArgumentCodeBatchSize   ErrorCode = "ARGUMENT_BATCH_SIZE"
	ArgumentCodeEmpty       ErrorCode = "ARGUMENT_EMPTY"
	ArgumentCodeUnknownWiki ErrorCode = "ARGUMENT_UNKNOWN_WIKI"
)

// InvalidArgumentError reports a violated precondition. It is raised before
// any network call is issued and is never worth retrying.
type InvalidArgumentError struct {
	Code   ErrorCode
	Param  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("[%s] invalid argument %q: %s", e.Code, e.Param, e.Reason)
}

// RemoteQueryError reports that the remote wiki responded with an error
// shape, an unparseable body, or a non-success transport outcome. Network
// failures and timeouts are reported the same way. The client never retries;
// pacing is the throttle's job, resilience is the caller's.
type RemoteQueryError struct {
	Wiki   string
	Action string
	Code   ErrorCode

	// APICode and Info carry the remote error payload when the wiki
	// answered with an error object
	APICode string
	Info    string

	Err error
}

func (e *RemoteQueryError) Error() string {
	msg := fmt.Sprintf("[%s] %s query against %s failed", e.Code, e.Action, e.Wiki)
	if e.APICode != "" {
		msg += fmt.Sprintf(": api error [%s] %s", e.APICode, e.Info)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RemoteQueryError) Unwrap() error {
	return e.Err
}

// ErrCancelled marks a paginated traversal stopped by caller-initiated
// cancellation. It accompanies a partial result and is distinct from
// RemoteQueryError since no fault occurred.
var ErrCancelled = errors.New("traversal cancelled")
