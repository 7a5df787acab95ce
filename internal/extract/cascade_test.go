package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/obatools/rosterscout/internal/roster"
)

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "fixtures", name))
	if err != nil {
		t.Fatalf("reading fixture %s: %v", name, err)
	}
	return string(data)
}

func extractFixture(t *testing.T, name string) *roster.Roster {
	t.Helper()
	r, err := FromHTML("https://www.playoba.ca/stats#/2111/team/500718/roster", loadFixture(t, name))
	if err != nil {
		t.Fatalf("FromHTML() error = %v", err)
	}
	return r
}

func TestFromHTML_TablePage(t *testing.T) {
	r := extractFixture(t, "roster_table.html")

	if !r.Authentic {
		t.Error("Authentic = false, want true")
	}
	if r.Method != "table" {
		t.Errorf("Method = %q, want table", r.Method)
	}
	if r.TeamName != "11U HS Forest Glade" {
		t.Errorf("TeamName = %q, want 11U HS Forest Glade", r.TeamName)
	}
	if len(r.Players) != 2 {
		t.Fatalf("Players = %d, want exactly 2 (standings rows excluded)", len(r.Players))
	}
	want := []roster.Player{
		{Number: "7", Name: "John Smith", Position: "P"},
		{Number: "9", Name: "Jane Doe", Position: "C"},
	}
	for i, p := range want {
		if r.Players[i] != p {
			t.Errorf("Players[%d] = %+v, want %+v", i, r.Players[i], p)
		}
	}
}

func TestFromHTML_GridPage(t *testing.T) {
	r := extractFixture(t, "roster_grid.html")

	if r.Method != "list" {
		t.Errorf("Method = %q, want list", r.Method)
	}
	if len(r.Players) != 3 {
		t.Fatalf("Players = %d, want 3 (header row excluded)", len(r.Players))
	}
	if r.Players[0].Name != "Alex Tremblay" || r.Players[0].Number != "4" {
		t.Errorf("Players[0] = %+v", r.Players[0])
	}
	if r.TeamName != "13U HS Forest Glade" {
		t.Errorf("TeamName = %q", r.TeamName)
	}
}

func TestFromHTML_StructuredDataPage(t *testing.T) {
	r := extractFixture(t, "roster_structured.html")

	if r.Method != "structured_data" {
		t.Errorf("Method = %q, want structured_data", r.Method)
	}
	if len(r.Players) != 3 {
		t.Fatalf("Players = %d, want 3", len(r.Players))
	}
	if r.Players[0] != (roster.Player{Number: "3", Name: "Liam Carter", Position: "P"}) {
		t.Errorf("Players[0] = %+v", r.Players[0])
	}
	if r.Players[2].Position != "" {
		t.Errorf("Players[2].Position = %q, want empty", r.Players[2].Position)
	}
	if r.TeamName != "18U HS Forest Glade" {
		t.Errorf("TeamName = %q", r.TeamName)
	}
}

func TestFromHTML_PatternPage(t *testing.T) {
	r := extractFixture(t, "roster_pattern.html")

	if r.Method != "pattern" {
		t.Errorf("Method = %q, want pattern", r.Method)
	}
	if len(r.Players) != 4 {
		t.Fatalf("Players = %d, want 4, got %+v", len(r.Players), r.Players)
	}
	if r.Players[3].Name != "Ben Whitfield" || r.Players[3].Number != "" {
		t.Errorf("Players[3] = %+v", r.Players[3])
	}
}

func TestFromHTML_EmptyPage(t *testing.T) {
	r := extractFixture(t, "empty_page.html")

	if r.Authentic {
		t.Error("Authentic = true, want false for an empty shell page")
	}
	if len(r.Players) != 0 {
		t.Errorf("Players = %+v, want none", r.Players)
	}
	if r.TeamName != roster.PlaceholderTeamName {
		t.Errorf("TeamName = %q, want placeholder", r.TeamName)
	}
	if r.Method != "" {
		t.Errorf("Method = %q, want empty", r.Method)
	}
}

func TestFromHTML_PlayersWithoutTeamNameNotAuthentic(t *testing.T) {
	html := `<html><head><title>Stats</title></head><body>
	<table><tr><td>7</td><td>John Smith</td></tr></table>
	</body></html>`

	r, err := FromHTML("https://example.com/roster", html)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Players) != 1 {
		t.Fatalf("Players = %d, want 1", len(r.Players))
	}
	if r.Authentic {
		t.Error("Authentic = true, want false without a valid team name")
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"11U HS Forest Glade - Stats - Ontario Baseball Association", "11U HS Forest Glade"},
		{"11U HS Forest Glade - Stats", "11U HS Forest Glade"},
		{"11U AA Windsor Stars - Roster", "11U AA Windsor Stars"},
		{"11U HS Forest Glade", "11U HS Forest Glade"},
	}
	for _, tt := range tests {
		if got := cleanTitle(tt.in); got != tt.want {
			t.Errorf("cleanTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
