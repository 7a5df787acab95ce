package directory

import (
	"fmt"
	"regexp"
	"strings"
)

var teamIDRe = regexp.MustCompile(`/team/(\d+)`)

// TeamURLs returns the candidate URL shapes for a team's roster page, most
// reliable first. The directory has moved its roster routes more than once,
// so probing works through this bounded ordered list instead of guessing.
func TeamURLs(baseURL, affiliateID, teamID string) []string {
	base := strings.TrimRight(baseURL, "/")
	return []string{
		fmt.Sprintf("%s/stats#/%s/team/%s/roster", base, affiliateID, teamID),
		fmt.Sprintf("%s/stats/%s/team/%s/roster", base, affiliateID, teamID),
		fmt.Sprintf("%s/stats/teams/%s/roster", base, teamID),
	}
}

// TeamURL returns the canonical roster URL for a team.
func TeamURL(baseURL, affiliateID, teamID string) string {
	return TeamURLs(baseURL, affiliateID, teamID)[0]
}

// ListingURL returns the division/teams listing page for an affiliate.
func ListingURL(baseURL, affiliateID string) string {
	return fmt.Sprintf("%s/stats#/%s/teams", strings.TrimRight(baseURL, "/"), affiliateID)
}

// TeamID extracts the numeric team identifier from a roster URL, or "" when
// the URL does not reference a team.
func TeamID(url string) string {
	if m := teamIDRe.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return ""
}
