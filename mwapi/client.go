// Package mwapi implements the throttled MediaWiki Action API query client
// behind the DoubleCheck patrol tool. It translates typed query intents into
// GET requests against a wiki's api.php, enforces one shared minimum
// inter-request interval per client instance, and reshapes paginated or
// nested JSON responses into flat collections.
package mwapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"time"

	"github.com/tyty999/wikiloop-doublecheck/metrics"
	"github.com/tyty999/wikiloop-doublecheck/tracing"
	"go.opentelemetry.io/otel/codes"
)

// Client issues throttled, parameterized HTTP GET requests to MediaWiki
// installations and normalizes paginated responses. It holds no persistent
// cache; every entity it returns is built from one HTTP response and
// discarded by the caller.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *slog.Logger
	resolver   SiteResolver

	// throttle paces every outbound request of this instance, across all
	// methods; it does not serialize response handling
	throttle Throttle

	// intN draws sampling randomness; replaceable for deterministic tests
	intN func(n int) int
}

// NewClient creates a query client. The resolver supplies wiki-key to host
// lookups; the throttle defaults to the configured inter-request interval.
func NewClient(config *Config, resolver SiteResolver, logger *slog.Logger) *Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: transport,
		},
		logger:   logger,
		resolver: resolver,
		throttle: NewIntervalThrottle(config.ThrottleInterval),
		intN:     rand.IntN,
	}
}

// SetThrottle replaces the shared throttle, for tests that need zero-delay
// or deterministic dispatch. Call before issuing requests.
func (c *Client) SetThrottle(t Throttle) {
	c.throttle = t
}

// SetRandSource replaces the sampling randomness, for reproducible tests
func (c *Client) SetRandSource(intN func(n int) int) {
	c.intN = intN
}

// Close releases idle connections held by the client
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// endpoint builds the api.php URL for a resolved host
func (c *Client) endpoint(host string) string {
	return fmt.Sprintf("%s://%s/w/api.php", c.config.Scheme, host)
}

// apiGet resolves the wiki, waits on the shared throttle, issues one GET and
// decodes the response envelope. It returns the raw body alongside the
// envelope so raw-preserving methods can re-decode their nested shape.
// Errors are never retried here.
func (c *Client) apiGet(ctx context.Context, wiki string, params url.Values) ([]byte, *apiResponse, error) {
	host, ok := c.resolver.Resolve(wiki)
	if !ok {
		return nil, nil, &InvalidArgumentError{
			Code:   ArgumentCodeUnknownWiki,
			Param:  "wiki",
			Reason: fmt.Sprintf("no host known for wiki key %q", wiki),
		}
	}

	params.Set("format", "json")
	action := params.Get("action")

	waitStart := time.Now()
	if err := c.throttle.Wait(ctx); err != nil {
		return nil, nil, fmt.Errorf("cancelled while queued for dispatch: %w", err)
	}
	metrics.RecordThrottleWait(time.Since(waitStart).Seconds())

	ctx, span := tracing.StartSpan(ctx, "mwapi."+action)
	defer span.End()
	tracing.AddQueryAttributes(span, wiki, action, params.Get("list"))

	start := time.Now()
	fail := func(code ErrorCode, apiCode, info string, cause error) ([]byte, *apiResponse, error) {
		err := &RemoteQueryError{
			Wiki:    wiki,
			Action:  action,
			Code:    code,
			APICode: apiCode,
			Info:    info,
			Err:     cause,
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, string(code))
		metrics.RecordAPICall(wiki, action, time.Since(start).Seconds(), false, string(code))
		return nil, nil, err
	}

	reqURL := c.endpoint(host) + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fail(RemoteCodeTransport, "", "", err)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)

	c.logger.Debug("api request",
		"wiki", wiki,
		"action", action,
		"list", params.Get("list"),
		"host", host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(RemoteCodeTransport, "", "", err)
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return fail(RemoteCodeTransport, "", "", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fail(RemoteCodeHTTP, "", "", fmt.Errorf("status %d", resp.StatusCode))
	}

	var env apiResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return fail(RemoteCodeBadBody, "", "", err)
	}

	if env.Error != nil {
		return fail(RemoteCodeAPIError, env.Error.Code, env.Error.Info, nil)
	}

	span.SetStatus(codes.Ok, "")
	metrics.RecordAPICall(wiki, action, time.Since(start).Seconds(), true, "")
	return body, &env, nil
}
