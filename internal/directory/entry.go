package directory

import (
	"regexp"
	"strings"
)

// Entry is one directory listing record. Entries are immutable once
// discovered; the ID is the directory's own team identifier.
type Entry struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Division    string `json:"division"`
	AffiliateID string `json:"affiliate_id,omitempty"`
	SourceURL   string `json:"source_url"`
	PlayerCount int    `json:"player_count,omitempty"`
}

var (
	divisionRe = regexp.MustCompile(`\b(\d{1,2}U)\b`)
	tierRe     = regexp.MustCompile(`\b(AAA|AA|A|B|C|D|DS|HS|Rep|Select)\b`)
)

// ExtractDivision pulls the age-group tag (e.g. "11U") out of a display name.
// Returns "" when the name carries no division.
func ExtractDivision(name string) string {
	if m := divisionRe.FindStringSubmatch(strings.ToUpper(name)); m != nil {
		return m[1]
	}
	return ""
}

// ExtractTier pulls the competitive-level token (HS, Rep, AAA, ...) out of a
// display name. Returns "" when none is present.
func ExtractTier(name string) string {
	if m := tierRe.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return ""
}

// Organization strips the division and tier tokens from a display name,
// returning the club portion ("11U HS Forest Glade" -> "Forest Glade").
func Organization(name string) string {
	fields := strings.Fields(name)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if divisionRe.MatchString(strings.ToUpper(f)) || tierRe.MatchString(f) {
			continue
		}
		out = append(out, f)
	}
	return strings.Join(out, " ")
}
