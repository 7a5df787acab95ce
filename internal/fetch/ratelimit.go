package fetch

import (
	"context"
	"net/url"
	"sync"
	"time"
)

// hostLimiter enforces a minimum interval between requests to the same host.
// Waits honor context cancellation.
type hostLimiter struct {
	mu    sync.Mutex
	last  map[string]time.Time
	delay time.Duration
}

func newHostLimiter(delay time.Duration) *hostLimiter {
	return &hostLimiter{
		last:  make(map[string]time.Time),
		delay: delay,
	}
}

// wait blocks until the host's minimum interval has elapsed, reserving the
// next slot before sleeping so concurrent callers queue rather than burst.
func (h *hostLimiter) wait(ctx context.Context, rawURL string) error {
	if h.delay <= 0 {
		return nil
	}

	host := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = u.Host
	}

	h.mu.Lock()
	now := time.Now()
	next := h.last[host].Add(h.delay)
	if next.Before(now) {
		next = now
	}
	h.last[host] = next
	h.mu.Unlock()

	sleep := time.Until(next)
	if sleep <= 0 {
		return nil
	}

	timer := time.NewTimer(sleep)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
