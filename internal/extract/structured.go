package extract

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/obatools/rosterscout/internal/roster"
)

// structuredData reads player objects embedded in script tags. The stats
// widget bootstraps its state as inline JSON, which survives even when the
// rendered markup changes.
type structuredData struct{}

var (
	jsonObjectRe   = regexp.MustCompile(`\{[^{}]*\}`)
	jsonNameRe     = regexp.MustCompile(`"(?:name|full_name|fullName|playerName)"\s*:\s*"([^"]+)"`)
	jsonNumberRe   = regexp.MustCompile(`"(?:number|jersey|jerseyNumber|jersey_number|no)"\s*:\s*"?(\d{1,2})"?`)
	jsonPositionRe = regexp.MustCompile(`"(?:position|pos)"\s*:\s*"([^"]+)"`)
)

func (structuredData) Name() string { return "structured_data" }

func (structuredData) Players(doc *goquery.Document) []roster.Player {
	var players []roster.Player
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		for _, obj := range jsonObjectRe.FindAllString(s.Text(), -1) {
			name := jsonNameRe.FindStringSubmatch(obj)
			number := jsonNumberRe.FindStringSubmatch(obj)
			// An object is only a player when it carries both a name
			// and a jersey number; team and league objects carry names too.
			if name == nil || number == nil {
				continue
			}
			p := roster.Player{Name: name[1], Number: number[1]}
			if pos := jsonPositionRe.FindStringSubmatch(obj); pos != nil {
				p.Position = pos[1]
			}
			players = append(players, p)
		}
	})
	return players
}
