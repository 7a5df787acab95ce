package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/obatools/rosterscout/internal/roster"
)

// teamNameSelectors are tried in order of specificity; the page title comes
// last because it usually carries site branding.
var teamNameSelectors = []string{
	"h1.team-name",
	".team-header h1",
	".team-title",
	".page-title",
	"h1",
	"title",
}

// titleSuffixes are branding tails stripped from page titles.
var titleSuffixes = []string{
	" - Stats",
	" - Roster",
	" - Ontario Baseball Association",
	" | Ontario Baseball Association",
	" - OBA",
}

// TeamName extracts the team's display name from a roster page, or "" when
// nothing on the page passes validation.
func TeamName(doc *goquery.Document) string {
	for _, sel := range teamNameSelectors {
		text := strings.TrimSpace(doc.Find(sel).First().Text())
		text = cleanTitle(text)
		if roster.ValidTeamName(text) {
			return text
		}
	}
	return ""
}

func cleanTitle(title string) string {
	title = strings.Join(strings.Fields(title), " ")
	for changed := true; changed; {
		changed = false
		for _, suffix := range titleSuffixes {
			if strings.HasSuffix(title, suffix) {
				title = strings.TrimSpace(strings.TrimSuffix(title, suffix))
				changed = true
			}
		}
	}
	return title
}
