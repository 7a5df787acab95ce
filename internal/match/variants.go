package match

import (
	"strings"

	"github.com/obatools/rosterscout/internal/directory"
)

// Tiers are the competitive-level tokens the directory uses in team names,
// ordered roughly by how often they appear in listings.
var Tiers = []string{"AAA", "AA", "A", "B", "C", "D", "DS", "HS", "Rep", "Select"}

// mascotWords are nickname tokens clubs append to their organization name.
// The directory lists teams by organization, so mascots must be stripped
// before variants are generated.
var mascotWords = map[string]bool{
	"falcons":   true,
	"hawks":     true,
	"eagles":    true,
	"cardinals": true,
	"orioles":   true,
	"nationals": true,
	"badgers":   true,
	"talons":    true,
	"scorpions": true,
	"tincaps":   true,
	"steelers":  true,
	"tigers":    true,
	"panthers":  true,
	"turtles":   true,
}

// suffixWords are filler tokens that never appear in directory listings.
var suffixWords = map[string]bool{
	"baseball": true,
	"club":     true,
	"team":     true,
	"select":   true,
}

var tierSet = func() map[string]string {
	m := make(map[string]string, len(Tiers))
	for _, t := range Tiers {
		m[strings.ToUpper(t)] = t
	}
	return m
}()

// Variants generates the directory spellings a team might be listed under.
// The input name is reduced to its organization base (mascot, suffix, tier and
// division tokens stripped), then recombined with the division and each tier
// in the directory's token orders. A tier detected in the input name is tried
// before the generic tier sweep. The result is deduplicated, ordered from most
// to least specific, and never empty for a non-blank name.
func Variants(teamName, division string) []string {
	name := strings.Join(strings.Fields(teamName), " ")
	if name == "" {
		return nil
	}

	if division == "" {
		division = directory.ExtractDivision(name)
	}
	division = strings.ToUpper(strings.TrimSpace(division))

	detectedTier := detectTier(name)
	base := organizationBase(name)
	if base == "" {
		base = name
	}

	tiers := make([]string, 0, len(Tiers)+1)
	if detectedTier != "" {
		tiers = append(tiers, detectedTier)
	}
	for _, t := range Tiers {
		if t != detectedTier {
			tiers = append(tiers, t)
		}
	}

	out := make([]string, 0, 3*len(tiers)+4)
	seen := make(map[string]bool)
	add := func(v string) {
		v = strings.Join(strings.Fields(v), " ")
		key := strings.ToLower(v)
		if v == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, v)
	}

	add(name)
	if division != "" {
		for _, t := range tiers {
			add(division + " " + t + " " + base)
			add(base + " " + division + " " + t)
			add(t + " " + base + " " + division)
		}
		add(division + " " + base)
		add(base + " " + division)
	} else {
		for _, t := range tiers {
			add(t + " " + base)
			add(base + " " + t)
		}
	}
	add(base)

	return out
}

// detectTier returns the tier token present in the name, or "".
func detectTier(name string) string {
	for _, f := range strings.Fields(name) {
		if t, ok := tierSet[strings.ToUpper(strings.Trim(f, ".,()-"))]; ok {
			return t
		}
	}
	return ""
}

// organizationBase strips mascots, suffixes, tiers, divisions and separator
// punctuation from a team name, keeping the tokens that identify the club.
// Only the portion before a spaced dash is considered; what follows a dash is
// qualifier text ("Forest Glade Falcons - 11U HS").
func organizationBase(name string) string {
	if i := strings.Index(name, " - "); i >= 0 {
		name = name[:i]
	}

	out := make([]string, 0, 4)
	for _, f := range strings.Fields(name) {
		token := strings.Trim(f, ".,()-")
		if token == "" {
			continue
		}
		lower := strings.ToLower(token)
		if mascotWords[lower] || suffixWords[lower] {
			continue
		}
		if _, isTier := tierSet[strings.ToUpper(token)]; isTier {
			continue
		}
		if directory.ExtractDivision(token) != "" {
			continue
		}
		out = append(out, token)
	}
	return strings.Join(out, " ")
}
