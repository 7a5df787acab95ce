package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/obatools/rosterscout/internal/roster"
)

// tableRows reads players from HTML tables, the markup the directory serves
// when rendering happens server-side.
type tableRows struct{}

// headerWords are cell texts that mark a row as a header even without th tags.
var headerWords = map[string]bool{
	"#":        true,
	"no":       true,
	"no.":      true,
	"num":      true,
	"name":     true,
	"player":   true,
	"pos":      true,
	"position": true,
}

func (tableRows) Name() string { return "table" }

func (tableRows) Players(doc *goquery.Document) []roster.Player {
	var players []roster.Player
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		players = tablePlayers(table)
		// The first table that produces players is the roster table;
		// later tables hold standings or schedules.
		return len(players) == 0
	})
	return players
}

func tablePlayers(table *goquery.Selection) []roster.Player {
	var players []roster.Player
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if row.Find("th").Length() > 0 {
			return
		}
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}

		texts := make([]string, 0, cells.Length())
		cells.Each(func(_ int, c *goquery.Selection) {
			texts = append(texts, strings.TrimSpace(c.Text()))
		})
		if isHeaderRow(texts) {
			return
		}

		p := rowPlayer(texts)
		if roster.ValidPlayerName(p.Name) {
			players = append(players, p)
		}
	})
	return players
}

func isHeaderRow(texts []string) bool {
	matched := 0
	for _, t := range texts {
		if headerWords[strings.ToLower(t)] {
			matched++
		}
	}
	return matched >= 2
}

// rowPlayer maps table cells onto a player: a numeric first cell is the
// jersey number with the name in the second cell, otherwise the name leads.
func rowPlayer(texts []string) roster.Player {
	var p roster.Player
	rest := texts
	if isDigits(texts[0]) {
		p.Number = texts[0]
		rest = texts[1:]
	}
	if len(rest) > 0 {
		p.Name = rest[0]
	}
	if len(rest) > 1 && !isDigits(rest[1]) {
		p.Position = rest[1]
	}
	return p
}

func isDigits(s string) bool {
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
