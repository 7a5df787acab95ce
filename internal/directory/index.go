package directory

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/obatools/rosterscout/internal/logger"
)

// Fetcher is the subset of the fetch client the index needs.
type Fetcher interface {
	Get(ctx context.Context, url string) (string, error)
}

// Index lists candidate entries for an affiliate/division. It tries the live
// directory listing first and falls back to the local snapshot when live
// retrieval fails or yields nothing, flagging the result as degraded so
// callers can tell authoritative listings from fallback data.
type Index struct {
	fetcher  Fetcher
	snapshot *Snapshot
	baseURL  string
}

// NewIndex builds a candidate index over the given fetcher and snapshot.
func NewIndex(fetcher Fetcher, snapshot *Snapshot, baseURL string) *Index {
	return &Index{fetcher: fetcher, snapshot: snapshot, baseURL: baseURL}
}

// List returns the entries for an affiliate filtered by division. The boolean
// reports degraded mode: true when results came from the local snapshot.
// A live retrieval failure is absorbed here, not surfaced; an error is
// returned only when the fallback has nothing either.
func (ix *Index) List(ctx context.Context, affiliateID, division string) ([]Entry, bool, error) {
	entries, err := ix.listLive(ctx, affiliateID, division)
	if err == nil && len(entries) > 0 {
		return entries, false, nil
	}
	if err != nil {
		logger.Warn("live candidate listing failed, using snapshot", logger.Fields{
			"affiliate": affiliateID,
			"division":  division,
			"error":     err.Error(),
		})
	}

	fallback := ix.snapshot.Entries(affiliateID, division)
	if len(fallback) == 0 {
		// Broaden to every affiliate before giving up.
		fallback = ix.snapshot.Entries("", division)
	}
	return fallback, true, nil
}

// listLive fetches and parses the affiliate's teams listing page.
func (ix *Index) listLive(ctx context.Context, affiliateID, division string) ([]Entry, error) {
	html, err := ix.fetcher.Get(ctx, ListingURL(ix.baseURL, affiliateID))
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	div := strings.ToUpper(strings.TrimSpace(division))
	entries := make([]Entry, 0)
	seen := make(map[string]bool)

	add := func(name, href string) {
		name = strings.TrimSpace(name)
		id := TeamID(href)
		if name == "" || id == "" || seen[id] {
			return
		}
		if div != "" && !strings.Contains(strings.ToUpper(name), div) {
			return
		}
		seen[id] = true
		entries = append(entries, Entry{
			ID:          id,
			DisplayName: name,
			Division:    ExtractDivision(name),
			AffiliateID: affiliateID,
			SourceURL:   ix.absolute(href),
		})
	}

	// Structured team blocks first.
	doc.Find(".team, .team-item").Each(func(_ int, sel *goquery.Selection) {
		name := sel.Find(".team-name").First().Text()
		href, _ := sel.Find("a[href*='roster']").First().Attr("href")
		add(name, href)
	})

	// Fall back to bare roster links when the listing markup changed.
	if len(entries) == 0 {
		doc.Find("a[href*='/team/']").Each(func(_ int, a *goquery.Selection) {
			href, _ := a.Attr("href")
			add(a.Text(), href)
		})
	}

	return entries, nil
}

func (ix *Index) absolute(href string) string {
	if href == "" || strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return strings.TrimRight(ix.baseURL, "/") + href
}
