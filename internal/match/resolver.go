package match

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/obatools/rosterscout/internal/directory"
	"github.com/obatools/rosterscout/internal/logger"
)

// Resolution outcomes.
const (
	OutcomeMatched      = "matched"
	OutcomeNoMatch      = "no_match"
	OutcomeNoCandidates = "no_candidates"
)

// Defaults applied when the resolver is constructed with zero values.
const (
	DefaultThreshold = 60
	DefaultMargin    = 5
)

// ErrInvalidInput is returned when the team name or division is blank.
var ErrInvalidInput = errors.New("team name and division are required")

// maxRunners caps how many alternates a resolution reports.
const maxRunners = 5

// Candidate is one scored directory listing.
type Candidate struct {
	directory.Entry
	VariantUsed string `json:"variant_used"`
	Score       int    `json:"score"`
}

// Resolution is the outcome of matching a team name against the directory.
// NeedsConfirmation is always true on a match: scores order candidates, they
// do not authorize acting on one.
type Resolution struct {
	Outcome           string      `json:"outcome"`
	Best              *Candidate  `json:"best,omitempty"`
	Runners           []Candidate `json:"runners,omitempty"`
	NeedsConfirmation bool        `json:"needs_confirmation"`
	Ambiguous         bool        `json:"ambiguous,omitempty"`
	AffiliateID       string      `json:"affiliate_id"`
	AffiliateMatched  bool        `json:"affiliate_matched"`
	Degraded          bool        `json:"degraded,omitempty"`
	TriedVariants     []string    `json:"tried_variants,omitempty"`
	AvailableNames    []string    `json:"available_names,omitempty"`
	Reason            string      `json:"reason,omitempty"`
}

// Lister supplies candidate listings for an affiliate and division.
type Lister interface {
	List(ctx context.Context, affiliateID, division string) ([]directory.Entry, bool, error)
}

// Resolver matches colloquial team names to directory listings.
type Resolver struct {
	lister     Lister
	affiliates *directory.Affiliates
	threshold  int
	margin     int
}

// NewResolver builds a resolver. threshold is the minimum score for a match;
// margin is the score gap under which the top two candidates are considered
// ambiguous. Zero values take the package defaults.
func NewResolver(lister Lister, affiliates *directory.Affiliates, threshold, margin int) *Resolver {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if margin <= 0 {
		margin = DefaultMargin
	}
	return &Resolver{lister: lister, affiliates: affiliates, threshold: threshold, margin: margin}
}

// Resolve finds the directory listing for a team name within a division. The
// same inputs against the same listings always produce the same resolution.
func (r *Resolver) Resolve(ctx context.Context, teamName, division string) (*Resolution, error) {
	return r.ResolveWithHint(ctx, teamName, division, "")
}

// ResolveWithHint is Resolve with the affiliate fixed by the caller, skipping
// keyword inference. An empty hint falls back to inference.
func (r *Resolver) ResolveWithHint(ctx context.Context, teamName, division, affiliateHint string) (*Resolution, error) {
	teamName = strings.TrimSpace(teamName)
	division = strings.TrimSpace(division)
	if teamName == "" || division == "" {
		return nil, ErrInvalidInput
	}

	affiliateID, affMatched := strings.TrimSpace(affiliateHint), true
	if affiliateID == "" {
		affiliateID, affMatched = r.affiliates.Resolve(teamName)
	}
	variants := Variants(teamName, division)

	entries, degraded, err := r.lister.List(ctx, affiliateID, division)
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}

	res := &Resolution{
		AffiliateID:      affiliateID,
		AffiliateMatched: affMatched,
		Degraded:         degraded,
		TriedVariants:    variants,
	}

	if len(entries) == 0 {
		res.Outcome = OutcomeNoCandidates
		res.Reason = fmt.Sprintf("no %s listings found for affiliate %s", division, affiliateID)
		return res, nil
	}

	scored := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		score, used := BestScore(variants, e.DisplayName)
		scored = append(scored, Candidate{Entry: e, VariantUsed: used, Score: score})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].DisplayName < scored[j].DisplayName
	})

	best := scored[0]
	if best.Score < r.threshold {
		res.Outcome = OutcomeNoMatch
		res.Reason = fmt.Sprintf("best score %d below threshold %d", best.Score, r.threshold)
		for _, c := range scored {
			res.AvailableNames = append(res.AvailableNames, c.DisplayName)
		}
		return res, nil
	}

	res.Outcome = OutcomeMatched
	res.Best = &best
	res.NeedsConfirmation = true
	for _, c := range scored[1:] {
		if len(res.Runners) == maxRunners || c.Score < r.threshold {
			break
		}
		res.Runners = append(res.Runners, c)
	}
	if len(res.Runners) > 0 && best.Score-res.Runners[0].Score < r.margin {
		res.Ambiguous = true
	}

	logger.Info("team resolved", logger.Fields{
		"team_name": teamName,
		"division":  division,
		"matched":   best.DisplayName,
		"score":     best.Score,
		"ambiguous": res.Ambiguous,
		"degraded":  degraded,
	})
	return res, nil
}
