package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/obatools/rosterscout/internal/directory"
	"github.com/obatools/rosterscout/internal/extract"
	"github.com/obatools/rosterscout/internal/logger"
	"github.com/obatools/rosterscout/internal/roster"
)

// DefaultScanWorkers bounds scan concurrency when the caller passes zero.
const DefaultScanWorkers = 4

// ScanResult summarizes one range scan.
type ScanResult struct {
	Start      int               `json:"start"`
	End        int               `json:"end"`
	Processed  int               `json:"processed"`
	Found      int               `json:"found"`
	WithRoster int               `json:"with_roster"`
	Teams      []directory.Entry `json:"teams"`
	Duration   string            `json:"duration"`
}

// Scanner probes team ID ranges to discover listings the directory does not
// enumerate anywhere. Discoveries are recorded in the snapshot so later
// resolutions can use them offline.
type Scanner struct {
	fetcher    Fetcher
	snapshot   *directory.Snapshot
	affiliates *directory.Affiliates
	baseURL    string
}

// NewScanner wires a scanner over the shared fetcher and snapshot.
func NewScanner(fetcher Fetcher, snapshot *directory.Snapshot, affiliates *directory.Affiliates, baseURL string) *Scanner {
	return &Scanner{
		fetcher:    fetcher,
		snapshot:   snapshot,
		affiliates: affiliates,
		baseURL:    baseURL,
	}
}

// ScanRange probes every team ID in [start, end] with a bounded worker pool,
// honoring context cancellation between probes. Found teams are added to the
// snapshot, which is saved once at the end.
func (s *Scanner) ScanRange(ctx context.Context, start, end, workers int) (*ScanResult, error) {
	if start <= 0 || end < start {
		return nil, fmt.Errorf("invalid scan range %d-%d", start, end)
	}
	if workers <= 0 {
		workers = DefaultScanWorkers
	}

	began := time.Now()
	logger.Info("scan started", logger.Fields{
		"start":   start,
		"end":     end,
		"workers": workers,
	})

	ids := make(chan int)
	go func() {
		defer close(ids)
		for id := start; id <= end; id++ {
			select {
			case ids <- id:
			case <-ctx.Done():
				return
			}
		}
	}()

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		result    ScanResult
		discovery []directory.Entry
	)
	result.Start, result.End = start, end

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range ids {
				entry, ok := s.probe(ctx, id)
				mu.Lock()
				result.Processed++
				if ok {
					result.Found++
					if entry.PlayerCount > 0 {
						result.WithRoster++
					}
					discovery = append(discovery, entry)
				}
				mu.Unlock()
				logger.IncrCounter("scan.probed")
			}
		}()
	}
	wg.Wait()

	if len(discovery) > 0 {
		s.snapshot.Add(discovery...)
		if err := s.snapshot.Save(); err != nil {
			return nil, fmt.Errorf("saving snapshot: %w", err)
		}
	}

	result.Teams = discovery
	result.Duration = time.Since(began).Round(time.Millisecond).String()
	logger.Info("scan finished", logger.Fields{
		"processed": result.Processed,
		"found":     result.Found,
		"duration":  result.Duration,
	})

	if err := ctx.Err(); err != nil {
		return &result, err
	}
	return &result, nil
}

// probe tries each affiliate and URL shape for one team ID. The first page
// with a valid team name identifies the listing.
func (s *Scanner) probe(ctx context.Context, id int) (directory.Entry, bool) {
	teamID := strconv.Itoa(id)
	for _, aff := range s.affiliates.IDs() {
		for _, url := range directory.TeamURLs(s.baseURL, aff, teamID) {
			if ctx.Err() != nil {
				return directory.Entry{}, false
			}

			html, err := s.fetcher.Get(ctx, url)
			if err != nil {
				continue
			}

			r, err := extract.FromHTML(url, html)
			if err != nil {
				continue
			}
			// A page without players still identifies a team; the name
			// alone is worth recording.
			if !validProbe(r.TeamName) {
				continue
			}

			return directory.Entry{
				ID:          teamID,
				DisplayName: r.TeamName,
				Division:    directory.ExtractDivision(r.TeamName),
				AffiliateID: aff,
				SourceURL:   url,
				PlayerCount: len(r.Players),
			}, true
		}
	}
	return directory.Entry{}, false
}

func validProbe(name string) bool {
	return name != roster.PlaceholderTeamName && roster.ValidTeamName(name)
}
