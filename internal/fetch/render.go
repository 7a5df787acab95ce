package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/obatools/rosterscout/internal/logger"
)

// DefaultRenderWait is the selector whose appearance signals that the roster
// grid finished rendering.
const DefaultRenderWait = "div[role='row'], table"

// Rendered loads a page in a headless browser and returns the DOM after
// client-side rendering settles. The directory serves roster tables from a
// JavaScript stats widget, so the plain HTTP body is often an empty shell;
// this is the fallback when static extraction finds nothing.
func Rendered(ctx context.Context, url, waitSelector string, timeout time.Duration) (string, error) {
	if waitSelector == "" {
		waitSelector = DefaultRenderWait
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.UserAgent(DefaultUserAgent),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	start := time.Now()
	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(waitSelector, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	logger.RecordTiming("fetch.rendered", time.Since(start))
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", url, err)
	}

	logger.Debug("page rendered", logger.Fields{
		"url":      url,
		"bytes":    len(html),
		"duration": time.Since(start).String(),
	})
	return html, nil
}
