package mwapi

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Throttle paces outbound request dispatch. One throttle serves every call
// from every method of a client instance; it serializes dispatch timing only,
// never response handling. Tests substitute a zero-delay implementation.
type Throttle interface {
	Wait(ctx context.Context) error
}

// intervalThrottle enforces a minimum spacing between the start of any two
// requests using a token bucket with a bucket size of one, so waiters are
// released strictly one interval apart in submission order.
type intervalThrottle struct {
	limiter *rate.Limiter
}

// NewIntervalThrottle returns a throttle that spaces dispatches at least
// interval apart. A non-positive interval disables the spacing.
func NewIntervalThrottle(interval time.Duration) Throttle {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &intervalThrottle{limiter: rate.NewLimiter(limit, 1)}
}

func (t *intervalThrottle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}
