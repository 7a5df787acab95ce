package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/obatools/rosterscout/internal/cache"
	"github.com/obatools/rosterscout/internal/extract"
	"github.com/obatools/rosterscout/internal/logger"
	"github.com/obatools/rosterscout/internal/match"
	"github.com/obatools/rosterscout/internal/roster"
)

// ErrNoAuthenticData marks a page that was retrieved but yielded no usable
// roster.
var ErrNoAuthenticData = errors.New("no authentic roster data on page")

// Fetcher retrieves a page body over plain HTTP.
type Fetcher interface {
	Get(ctx context.Context, url string) (string, error)
}

// RenderFunc retrieves a page body through a headless browser.
type RenderFunc func(ctx context.Context, url, waitSelector string, timeout time.Duration) (string, error)

// RosterResult is the uniform envelope for roster retrievals. Success is true
// only for an authentic roster; failures and empty pages carry a reason
// instead of an error return so callers can always render a result.
type RosterResult struct {
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Roster  *roster.Roster `json:"roster,omitempty"`
}

// Service exposes the roster operations. Safe for concurrent use; concurrent
// requests for the same team URL share one upstream fetch.
type Service struct {
	fetcher  Fetcher
	render   RenderFunc
	store    *cache.Cache
	resolver *match.Resolver

	renderWait    string
	renderTimeout time.Duration

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// New wires a service. render may be nil to disable the headless fallback.
func New(fetcher Fetcher, render RenderFunc, store *cache.Cache, resolver *match.Resolver,
	renderWait string, renderTimeout time.Duration) *Service {
	return &Service{
		fetcher:       fetcher,
		render:        render,
		store:         store,
		resolver:      resolver,
		renderWait:    renderWait,
		renderTimeout: renderTimeout,
		locks:         make(map[string]*sync.Mutex),
	}
}

// Resolve matches a team name and division against the directory. A non-empty
// affiliateHint pins the search to that affiliate instead of inferring one.
func (s *Service) Resolve(ctx context.Context, teamName, division, affiliateHint string) (*match.Resolution, error) {
	return s.resolver.ResolveWithHint(ctx, teamName, division, affiliateHint)
}

// Confirm acts on a user-approved candidate: it fetches the candidate's
// roster. Resolution results never trigger fetches on their own.
func (s *Service) Confirm(ctx context.Context, c match.Candidate, useCache bool) *RosterResult {
	logger.Info("candidate confirmed", logger.Fields{
		"team_id":      c.ID,
		"display_name": c.DisplayName,
		"score":        c.Score,
	})
	return s.GetRoster(ctx, c.SourceURL, useCache)
}

// GetRoster retrieves the roster behind a team URL, serving from cache when
// fresh. Only authentic rosters are cached, so empty or failed extractions
// get re-attempted on the next call.
func (s *Service) GetRoster(ctx context.Context, teamURL string, useCache bool) *RosterResult {
	key := cache.Key(teamURL)

	if useCache {
		if r, ok := s.store.Get(key); ok {
			r.Source = roster.SourceCache
			return &RosterResult{Success: true, Roster: r}
		}
	}

	// One in-flight fetch per team URL; latecomers wait and then read the
	// cache instead of duplicating the request.
	lock := s.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	if useCache {
		if r, ok := s.store.Get(key); ok {
			r.Source = roster.SourceCache
			return &RosterResult{Success: true, Roster: r}
		}
	}

	r, err := s.fetchAndExtract(ctx, teamURL)
	if err != nil {
		logger.Error("roster retrieval failed", logger.Fields{"team_url": teamURL}, err)
		return &RosterResult{Success: false, Error: err.Error()}
	}
	r.Source = roster.SourceLive

	if !r.Authentic {
		return &RosterResult{
			Success: false,
			Error:   ErrNoAuthenticData.Error(),
			Roster:  r,
		}
	}

	if err := s.store.Put(key, r); err != nil {
		logger.Warn("caching roster failed", logger.Fields{
			"team_url": teamURL,
			"error":    err.Error(),
		})
	}

	logger.Info("roster retrieved", logger.Fields{
		"team_url": teamURL,
		"team":     r.TeamName,
		"players":  len(r.Players),
		"method":   r.Method,
	})
	return &RosterResult{Success: true, Roster: r}
}

// fetchAndExtract runs the static fetch and, when it yields no players, the
// headless-browser fallback.
func (s *Service) fetchAndExtract(ctx context.Context, teamURL string) (*roster.Roster, error) {
	html, err := s.fetcher.Get(ctx, teamURL)
	if err != nil {
		return nil, err
	}

	r, err := extract.FromHTML(teamURL, html)
	if err != nil {
		return nil, err
	}
	if len(r.Players) > 0 || s.render == nil {
		return r, nil
	}

	logger.Debug("static extraction empty, rendering page", logger.Fields{
		"team_url": teamURL,
	})
	rendered, err := s.render(ctx, teamURL, s.renderWait, s.renderTimeout)
	if err != nil {
		logger.Warn("render fallback failed", logger.Fields{
			"team_url": teamURL,
			"error":    err.Error(),
		})
		return r, nil
	}

	r2, err := extract.FromHTML(teamURL, rendered)
	if err != nil || len(r2.Players) == 0 {
		return r, nil
	}
	r2.Method += "_rendered"
	return r2, nil
}

func (s *Service) keyLock(key string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	if s.locks[key] == nil {
		s.locks[key] = &sync.Mutex{}
	}
	return s.locks[key]
}
