package match

import "strings"

// Score tiers. Exact and containment matches are trusted outright; everything
// else falls to token overlap, which cannot exceed the containment tier.
const (
	scoreExact       = 100
	scoreContainment = 85
	scoreOverlapMax  = 70
	mascotBonus      = 10
)

// Score rates how well a candidate listing name matches one generated variant,
// from 0 (nothing shared) to 100 (same name). Comparison is case-insensitive
// and whitespace-normalized.
func Score(variant, candidate string) int {
	v := normalize(variant)
	c := normalize(candidate)
	if v == "" || c == "" {
		return 0
	}
	if v == c {
		return scoreExact
	}
	if strings.Contains(c, v) || strings.Contains(v, c) {
		return scoreContainment
	}

	score := int(tokenOverlap(v, c) * scoreOverlapMax)
	score += sharedMascots(v, c) * mascotBonus
	if score >= scoreContainment {
		// Token overlap plus bonuses never outranks literal containment.
		score = scoreContainment - 1
	}
	return score
}

// BestScore rates a candidate against every variant and returns the highest
// score along with the variant that produced it.
func BestScore(variants []string, candidate string) (int, string) {
	best := 0
	used := ""
	for _, v := range variants {
		if s := Score(v, candidate); s > best {
			best = s
			used = v
		}
	}
	return best, used
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// tokenOverlap is the Jaccard coefficient over the word sets of two
// normalized names.
func tokenOverlap(a, b string) float64 {
	as := tokenSet(a)
	bs := tokenSet(b)
	if len(as) == 0 || len(bs) == 0 {
		return 0
	}

	shared := 0
	for t := range as {
		if bs[t] {
			shared++
		}
	}
	union := len(as) + len(bs) - shared
	if union == 0 {
		return 0
	}
	return float64(shared) / float64(union)
}

func tokenSet(s string) map[string]bool {
	out := make(map[string]bool)
	for _, f := range strings.Fields(s) {
		f = strings.Trim(f, ".,()-")
		if f != "" {
			out[f] = true
		}
	}
	return out
}

// sharedMascots counts mascot tokens present in both names. Two names sharing
// a nickname are likelier to be the same club under different spellings.
func sharedMascots(a, b string) int {
	as := tokenSet(a)
	bs := tokenSet(b)
	n := 0
	for m := range mascotWords {
		if as[m] && bs[m] {
			n++
		}
	}
	return n
}
