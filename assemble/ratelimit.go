package assemble

import (
	"context"

	"golang.org/x/time/rate"
)

// NavLimiter paces navigation within the single browser session using a
// token bucket with a burst of 1 (no bursting). Section pages belong to one
// host, so a single limiter suffices.
type NavLimiter struct {
	limiter *rate.Limiter
}

// NewNavLimiter creates a NavLimiter allowing nps navigations per second.
func NewNavLimiter(nps float64) *NavLimiter {
	return &NavLimiter{limiter: rate.NewLimiter(rate.Limit(nps), 1)}
}

// Wait blocks until the rate limit allows the next navigation. Returns an
// error if the context is canceled before the wait completes.
func (l *NavLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
