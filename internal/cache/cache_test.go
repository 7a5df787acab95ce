package cache

import (
	"testing"
	"time"

	"github.com/obatools/rosterscout/internal/roster"
)

func testRoster() *roster.Roster {
	return &roster.Roster{
		TeamURL:  "https://www.playoba.ca/stats#/2111/team/500718/roster",
		TeamName: "11U HS Forest Glade",
		Players: []roster.Player{
			{Number: "7", Name: "John Smith", Position: "P"},
			{Number: "9", Name: "Jane Doe", Position: "C"},
		},
		RetrievedAt: time.Now().UTC(),
		Authentic:   true,
		Method:      "table",
	}
}

func TestCache_RoundTrip(t *testing.T) {
	c, err := Open(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	want := testRoster()
	key := Key(want.TeamURL)
	if err := c.Put(key, want); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, ok := c.Get(key)
	if !ok {
		t.Fatal("Get() miss, want hit")
	}
	if got.TeamName != want.TeamName {
		t.Errorf("TeamName = %q, want %q", got.TeamName, want.TeamName)
	}
	if len(got.Players) != len(want.Players) {
		t.Fatalf("Players = %d, want %d", len(got.Players), len(want.Players))
	}
	for i := range want.Players {
		if got.Players[i] != want.Players[i] {
			t.Errorf("Players[%d] = %+v, want %+v", i, got.Players[i], want.Players[i])
		}
	}
	if !got.Authentic {
		t.Error("Authentic flag lost in round trip")
	}
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	c, err := Open(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get(Key("https://www.playoba.ca/stats#/2111/team/999999/roster")); ok {
		t.Error("Get() hit, want miss for never-stored key")
	}
}

func TestCache_ExpiredRecordIsMiss(t *testing.T) {
	c, err := Open(t.TempDir(), 10*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}

	key := Key("https://www.playoba.ca/stats#/2111/team/500718/roster")
	if err := c.Put(key, testRoster()); err != nil {
		t.Fatal(err)
	}

	time.Sleep(25 * time.Millisecond)

	if _, ok := c.Get(key); ok {
		t.Error("Get() hit, want miss after TTL")
	}
}

func TestCache_PutOverwrites(t *testing.T) {
	c, err := Open(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	key := Key("https://www.playoba.ca/stats#/2111/team/500718/roster")
	first := testRoster()
	if err := c.Put(key, first); err != nil {
		t.Fatal(err)
	}

	second := testRoster()
	second.Players = append(second.Players, roster.Player{Number: "12", Name: "Marcus Lee"})
	if err := c.Put(key, second); err != nil {
		t.Fatal(err)
	}

	got, ok := c.Get(key)
	if !ok {
		t.Fatal("Get() miss after overwrite")
	}
	if len(got.Players) != 3 {
		t.Errorf("Players = %d, want 3 from the newer record", len(got.Players))
	}
}

func TestKey_StableAndDistinct(t *testing.T) {
	a := Key("https://www.playoba.ca/stats#/2111/team/500718/roster")
	b := Key("https://www.playoba.ca/stats#/2111/team/500719/roster")

	if a != Key("https://www.playoba.ca/stats#/2111/team/500718/roster") {
		t.Error("Key() is not stable for identical URLs")
	}
	if a == b {
		t.Error("Key() collides for different URLs")
	}
	if a != Key("  https://www.playoba.ca/stats#/2111/team/500718/roster  ") {
		t.Error("Key() should ignore surrounding whitespace")
	}
}
