package roster

import "time"

const (
	// MaxPlayers caps a roster; anything larger is almost certainly a page
	// structure misread, not a baseball team.
	MaxPlayers = 30

	// PlaceholderTeamName marks a roster whose team name could not be extracted.
	PlaceholderTeamName = "Unknown Team"

	// SourceCache and SourceLive tag where a returned roster came from.
	SourceCache = "cache"
	SourceLive  = "live"
)

// Player is one roster entry extracted from a directory team page.
// Number may be empty; Name never is once the record passed validation.
type Player struct {
	Number   string `json:"number"`
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
}

// Roster is the result of extracting a team page. Authentic is false when the
// record is a placeholder or partial result that must not be presented as real
// directory data.
type Roster struct {
	TeamURL     string    `json:"team_url"`
	TeamName    string    `json:"team_name"`
	Players     []Player  `json:"players"`
	RetrievedAt time.Time `json:"retrieved_at"`
	Authentic   bool      `json:"authentic"`
	Method      string    `json:"extraction_method,omitempty"`
	Source      string    `json:"source,omitempty"`
}
