package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/obatools/rosterscout/internal/logger"
	"github.com/obatools/rosterscout/internal/roster"
)

// Strategy is one way of reading players off a page.
type Strategy interface {
	Name() string
	Players(doc *goquery.Document) []roster.Player
}

// strategies run in order from most to least structured.
var strategies = []Strategy{
	structuredData{},
	tableRows{},
	listItems{},
	textPattern{},
}

// FromHTML parses a page and extracts its roster. The error covers only
// unparseable input; an empty or unrecognizable page still returns a roster
// record with Authentic false.
func FromHTML(teamURL, html string) (*roster.Roster, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing roster page: %w", err)
	}
	return FromDocument(teamURL, doc), nil
}

// FromDocument runs the strategy cascade over a parsed page. The first
// strategy whose sanitized output is non-empty supplies the players and the
// method label. Authenticity requires both extracted players and a team name
// that passes validation.
func FromDocument(teamURL string, doc *goquery.Document) *roster.Roster {
	r := &roster.Roster{
		TeamURL:     teamURL,
		TeamName:    roster.PlaceholderTeamName,
		RetrievedAt: time.Now().UTC(),
	}
	if name := TeamName(doc); name != "" {
		r.TeamName = name
	}

	for _, s := range strategies {
		players := roster.Sanitize(s.Players(doc))
		if len(players) == 0 {
			continue
		}
		r.Players = players
		r.Method = s.Name()
		logger.IncrCounter("extract." + s.Name())
		break
	}

	r.Authentic = len(r.Players) > 0 &&
		r.TeamName != roster.PlaceholderTeamName &&
		roster.ValidTeamName(r.TeamName)
	if !r.Authentic {
		logger.Debug("extraction produced no authentic roster", logger.Fields{
			"team_url":  teamURL,
			"team_name": r.TeamName,
			"players":   len(r.Players),
		})
	}
	return r
}
