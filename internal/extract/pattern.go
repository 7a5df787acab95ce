package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/obatools/rosterscout/internal/roster"
)

// textPattern is the last resort: scan the page text for lines shaped like
// "7 John Smith" or "John Smith". High recall, so it leans on the shared name
// validator to stay out of the navigation chrome.
type textPattern struct{}

// namePairRe matches a capitalized given name followed by one or two more
// capitalized words, with an optional leading jersey number.
var namePairRe = regexp.MustCompile(`^(?:(\d{1,2})\s+)?([A-Z][a-z]+(?:\s+[A-Z][A-Za-z'\-]+){1,2})$`)

func (textPattern) Name() string { return "pattern" }

func (textPattern) Players(doc *goquery.Document) []roster.Player {
	var players []roster.Player
	body := doc.Find("body")
	if body.Length() == 0 {
		return nil
	}

	for _, line := range strings.Split(body.Text(), "\n") {
		line = strings.Join(strings.Fields(line), " ")
		m := namePairRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if !roster.ValidPlayerName(m[2]) {
			continue
		}
		players = append(players, roster.Player{Number: m[1], Name: m[2]})
		if len(players) == roster.MaxPlayers {
			break
		}
	}
	return players
}
