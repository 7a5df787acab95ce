package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/obatools/rosterscout/internal/roster"
)

// listItems reads players from list and ARIA-grid markup, the shapes the
// stats widget renders client-side.
type listItems struct{}

// listSelectors are tried together; grids and styled lists coexist on some
// pages and Sanitize deduplicates the overlap.
const listSelectors = "li, div[role='row'], .player-list .player, .players .player-row"

var (
	numberedLineRe = regexp.MustCompile(`^(\d{1,2})[.)\-]?\s+(.+)$`)
	trailingNumRe  = regexp.MustCompile(`^(.+?)\s*\(#?(\d{1,2})\)$`)
)

func (listItems) Name() string { return "list" }

func (listItems) Players(doc *goquery.Document) []roster.Player {
	var players []roster.Player
	doc.Find(listSelectors).Each(func(_ int, item *goquery.Selection) {
		// Grid rows keep each field in its own cell.
		cells := item.Find("div[role='gridcell'], span.cell")
		if cells.Length() >= 2 {
			texts := make([]string, 0, cells.Length())
			cells.Each(func(_ int, c *goquery.Selection) {
				texts = append(texts, strings.TrimSpace(c.Text()))
			})
			if !isHeaderRow(texts) {
				if p := rowPlayer(texts); roster.ValidPlayerName(p.Name) {
					players = append(players, p)
				}
			}
			return
		}

		if p, ok := lineToPlayer(item.Text()); ok {
			players = append(players, p)
		}
	})
	return players
}

// lineToPlayer parses a flat text line like "7 John Smith" or
// "Jane Doe (#9)". A line that is only a plausible name also counts.
func lineToPlayer(line string) (roster.Player, bool) {
	line = strings.Join(strings.Fields(line), " ")

	if m := numberedLineRe.FindStringSubmatch(line); m != nil {
		if roster.ValidPlayerName(m[2]) {
			return roster.Player{Number: m[1], Name: m[2]}, true
		}
		return roster.Player{}, false
	}
	if m := trailingNumRe.FindStringSubmatch(line); m != nil {
		if roster.ValidPlayerName(m[1]) {
			return roster.Player{Number: m[2], Name: m[1]}, true
		}
		return roster.Player{}, false
	}
	// Bare names are accepted only in strict proper-noun shape; list markup
	// is full of navigation text that would pass the looser validator.
	if m := namePairRe.FindStringSubmatch(line); m != nil && m[1] == "" && roster.ValidPlayerName(m[2]) {
		return roster.Player{Name: m[2]}, true
	}
	return roster.Player{}, false
}
