package directory

import "strings"

// Affiliate is a named directory partition grouping organizations by region.
// Keywords are the city/region names whose presence in a team name places the
// team in this partition.
type Affiliate struct {
	ID       string   `json:"id"`
	Code     string   `json:"code"`
	Keywords []string `json:"keywords"`
}

// Affiliates maps geographic cues in team names to directory partitions.
// Matching is case-insensitive substring containment in declaration order:
// a name mentioning two regions resolves to whichever affiliate is declared
// first. That is a documented limitation, not a correctness guarantee.
type Affiliates struct {
	list     []Affiliate
	fallback string
}

// NewAffiliates builds a resolver over the given partitions. fallback is the
// broad affiliate ID used when no keyword matches.
func NewAffiliates(list []Affiliate, fallback string) *Affiliates {
	return &Affiliates{list: list, fallback: fallback}
}

// Resolve returns the ID of the affiliate most likely to contain the named
// team. The boolean is false when no keyword matched and the fallback was used.
func (a *Affiliates) Resolve(teamName string) (string, bool) {
	lower := strings.ToLower(teamName)
	for _, aff := range a.list {
		for _, kw := range aff.Keywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				return aff.ID, true
			}
		}
	}
	return a.fallback, false
}

// Default returns the broad fallback affiliate ID.
func (a *Affiliates) Default() string {
	return a.fallback
}

// IDs returns every affiliate ID in declaration order, fallback first if it is
// not already declared. Scan probes walk this list.
func (a *Affiliates) IDs() []string {
	ids := make([]string, 0, len(a.list)+1)
	seen := make(map[string]bool, len(a.list)+1)
	for _, aff := range a.list {
		if !seen[aff.ID] {
			seen[aff.ID] = true
			ids = append(ids, aff.ID)
		}
	}
	if a.fallback != "" && !seen[a.fallback] {
		ids = append(ids, a.fallback)
	}
	return ids
}

// Code returns the short code (e.g. "SPBA") for an affiliate ID, or the ID
// itself when unknown.
func (a *Affiliates) Code(id string) string {
	for _, aff := range a.list {
		if aff.ID == id {
			return aff.Code
		}
	}
	return id
}
