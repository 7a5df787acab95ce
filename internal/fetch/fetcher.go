package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/obatools/rosterscout/internal/logger"
)

// DefaultUserAgent identifies the tool to the directory's servers.
const DefaultUserAgent = "rosterscout/1.0 (+https://github.com/obatools/rosterscout)"

// maxBodyBytes caps how much of a page is read; roster pages are small and a
// misbehaving endpoint must not exhaust memory.
const maxBodyBytes = 4 << 20

// ErrNotFound is returned for 404 responses. It is permanent: retrying a
// missing team page will not make it exist.
var ErrNotFound = errors.New("page not found")

// Client fetches pages with per-host rate limiting and retry on transient
// failures. Safe for concurrent use.
type Client struct {
	http      *http.Client
	limiter   *hostLimiter
	retries   uint64
	userAgent string
	initial   time.Duration
}

// New builds a client. timeout bounds each attempt, hostDelay spaces requests
// to the same host, retries is the number of re-attempts after the first.
func New(timeout, hostDelay time.Duration, retries int) *Client {
	if retries < 0 {
		retries = 0
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		limiter:   newHostLimiter(hostDelay),
		retries:   uint64(retries),
		userAgent: DefaultUserAgent,
		initial:   500 * time.Millisecond,
	}
}

// Get retrieves a page body as a string. Transient failures (network errors,
// 5xx, 429) are retried with exponential backoff; 404 fails immediately with
// ErrNotFound.
func (c *Client) Get(ctx context.Context, url string) (string, error) {
	var body string

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.initial

	operation := func() error {
		if err := c.limiter.wait(ctx, url); err != nil {
			return backoff.Permanent(err)
		}

		start := time.Now()
		result, err := c.fetch(ctx, url)
		logger.RecordTiming("fetch.page", time.Since(start))
		if err != nil {
			if errors.Is(err, ErrNotFound) || ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			logger.Debug("fetch attempt failed, will retry", logger.Fields{
				"url":   url,
				"error": err.Error(),
			})
			return err
		}
		body = result
		return nil
	}

	err := backoff.Retry(operation,
		backoff.WithContext(backoff.WithMaxRetries(bo, c.retries), ctx))
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	return body, nil
}

func (c *Client) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close() // nolint:errcheck

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", ErrNotFound
	case resp.StatusCode >= 400:
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(raw), nil
}
