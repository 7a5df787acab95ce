package roster

import (
	"strings"
	"unicode"
)

// Words that show up in navigation, headers, and footers and keep getting
// mistaken for player names by the looser extraction strategies.
var nameBlacklist = map[string]bool{
	"roster":    true,
	"stats":     true,
	"statistics": true,
	"home":      true,
	"schedule":  true,
	"standings": true,
	"scores":    true,
	"login":     true,
	"register":  true,
	"search":    true,
	"menu":      true,
	"contact":   true,
	"about":     true,
	"news":      true,
	"name":      true,
	"player":    true,
	"players":   true,
	"number":    true,
	"position":  true,
	"team":      true,
	"teams":     true,
	"coach":     true,
	"coaches":   true,
	"staff":     true,
}

// Boilerplate phrases that disqualify a candidate name outright.
var boilerplatePhrases = []string{
	"all rights",
	"copyright",
	"privacy policy",
	"terms of",
	"sign in",
	"sign up",
	"powered by",
	"javascript",
	"cookie",
}

// Generic page titles that must never be reported as a team name.
var genericTeamNames = map[string]bool{
	"":                             true,
	"stats":                        true,
	"roster":                       true,
	"team":                         true,
	"teams":                        true,
	"home":                         true,
	"login":                        true,
	"error":                        true,
	"not found":                    true,
	"ontario baseball association": true,
}

// ValidPlayerName reports whether a string is plausible as a player name:
// at least three characters, not purely numeric, either multi-word or a single
// capitalized token, and not a known navigation/boilerplate word.
func ValidPlayerName(name string) bool {
	name = strings.TrimSpace(name)
	if len(name) < 3 || len(name) > 60 {
		return false
	}
	if isNumeric(name) {
		return false
	}
	lower := strings.ToLower(name)
	if nameBlacklist[lower] {
		return false
	}
	for _, phrase := range boilerplatePhrases {
		if strings.Contains(lower, phrase) {
			return false
		}
	}
	if !strings.Contains(name, " ") {
		// Single tokens are accepted only when they look like a proper noun.
		runes := []rune(name)
		if !unicode.IsUpper(runes[0]) {
			return false
		}
		for _, r := range runes {
			if !unicode.IsLetter(r) && r != '-' && r != '\'' {
				return false
			}
		}
	}
	return true
}

// ValidTeamName reports whether an extracted page title/heading is usable as a
// team name rather than a generic page label.
func ValidTeamName(name string) bool {
	name = strings.TrimSpace(name)
	if len(name) < 5 {
		return false
	}
	lower := strings.ToLower(name)
	if genericTeamNames[lower] {
		return false
	}
	for _, word := range []string{"login", "error", "not found"} {
		if strings.Contains(lower, word) {
			return false
		}
	}
	return true
}

// Sanitize runs the common player validator over a raw extraction result:
// whitespace is normalized, numbers reduced to digits, invalid names dropped,
// duplicates (case-insensitive) removed, and the list capped at MaxPlayers.
// First occurrence wins on duplicates so strategy ordering stays meaningful.
func Sanitize(players []Player) []Player {
	seen := make(map[string]bool, len(players))
	out := make([]Player, 0, len(players))

	for _, p := range players {
		p.Name = strings.Join(strings.Fields(p.Name), " ")
		p.Number = digitsOnly(p.Number)
		p.Position = strings.TrimSpace(p.Position)

		if !ValidPlayerName(p.Name) {
			continue
		}
		key := strings.ToLower(p.Name)
		if seen[key] {
			continue
		}
		seen[key] = true

		out = append(out, p)
		if len(out) == MaxPlayers {
			break
		}
	}

	return out
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
