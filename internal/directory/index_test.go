package directory

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

type fakeFetcher struct {
	html  string
	err   error
	calls int
}

func (f *fakeFetcher) Get(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.html, f.err
}

const listingHTML = `<html><body>
<div class="team">
  <span class="team-name">11U HS Forest Glade</span>
  <a href="/stats#/2111/team/500718/roster">Roster</a>
</div>
<div class="team">
  <span class="team-name">13U HS Forest Glade</span>
  <a href="/stats#/2111/team/500719/roster">Roster</a>
</div>
<div class="team">
  <span class="team-name">11U AA Windsor Stars</span>
  <a href="/stats#/2111/team/500801/roster">Roster</a>
</div>
</body></html>`

const anchorOnlyHTML = `<html><body>
<a href="/stats#/2111/team/500718/roster">11U HS Forest Glade</a>
<a href="/stats#/2111/team/500801/roster">11U AA Windsor Stars</a>
</body></html>`

func TestIndex_ListLive(t *testing.T) {
	snap, err := LoadSnapshot(filepath.Join(t.TempDir(), "snapshot.json"), nil)
	if err != nil {
		t.Fatal(err)
	}
	ix := NewIndex(&fakeFetcher{html: listingHTML}, snap, "https://www.playoba.ca")

	entries, degraded, err := ix.List(context.Background(), "2111", "11U")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if degraded {
		t.Error("List() degraded = true, want false for live results")
	}
	if len(entries) != 2 {
		t.Fatalf("List() len = %d, want 2 (11U teams only)", len(entries))
	}
	if entries[0].ID != "500718" || entries[0].DisplayName != "11U HS Forest Glade" {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[0].Division != "11U" {
		t.Errorf("entries[0].Division = %q, want 11U", entries[0].Division)
	}
	if entries[0].SourceURL != "https://www.playoba.ca/stats#/2111/team/500718/roster" {
		t.Errorf("entries[0].SourceURL = %q", entries[0].SourceURL)
	}
}

func TestIndex_ListAnchorFallback(t *testing.T) {
	snap, err := LoadSnapshot(filepath.Join(t.TempDir(), "snapshot.json"), nil)
	if err != nil {
		t.Fatal(err)
	}
	ix := NewIndex(&fakeFetcher{html: anchorOnlyHTML}, snap, "https://www.playoba.ca")

	entries, degraded, err := ix.List(context.Background(), "2111", "11U")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if degraded || len(entries) != 2 {
		t.Errorf("List() = %d entries, degraded %v; want 2, false", len(entries), degraded)
	}
}

func TestIndex_ListFallsBackToSnapshot(t *testing.T) {
	snap, err := LoadSnapshot(filepath.Join(t.TempDir(), "snapshot.json"), testSeed())
	if err != nil {
		t.Fatal(err)
	}
	ix := NewIndex(&fakeFetcher{err: errors.New("connection refused")}, snap, "https://www.playoba.ca")

	entries, degraded, err := ix.List(context.Background(), "2111", "11U")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if !degraded {
		t.Error("List() degraded = false, want true for snapshot fallback")
	}
	if len(entries) != 1 || entries[0].ID != "500718" {
		t.Errorf("List() = %+v, want the seeded 11U entry", entries)
	}
}

func TestIndex_ListEmptyEverywhere(t *testing.T) {
	snap, err := LoadSnapshot(filepath.Join(t.TempDir(), "snapshot.json"), nil)
	if err != nil {
		t.Fatal(err)
	}
	ix := NewIndex(&fakeFetcher{err: errors.New("timeout")}, snap, "2111")

	entries, degraded, err := ix.List(context.Background(), "2111", "99U")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if !degraded || len(entries) != 0 {
		t.Errorf("List() = %d entries, degraded %v; want 0, true", len(entries), degraded)
	}
}
