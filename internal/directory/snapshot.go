package directory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Snapshot is the local directory listing: the degraded-mode candidate index
// and the place range scans record their discoveries. It persists as a single
// JSON file and is safe for concurrent use.
type Snapshot struct {
	mu   sync.Mutex
	path string
	data snapshotFile
}

type snapshotFile struct {
	Version   int     `json:"version"`
	UpdatedAt string  `json:"updated_at,omitempty"`
	Entries   []Entry `json:"entries"`
}

// LoadSnapshot reads the snapshot at path, seeding it with the given entries
// when the file does not exist yet. The seed is how verified known-team
// records ship with the default configuration.
func LoadSnapshot(path string, seed []Entry) (*Snapshot, error) {
	s := &Snapshot{
		path: path,
		data: snapshotFile{Version: 1},
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.data.Entries = append(s.data.Entries, seed...)
			return s, nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if len(s.data.Entries) == 0 {
		s.data.Entries = append(s.data.Entries, seed...)
	}
	return s, nil
}

// Entries returns the stored entries filtered by affiliate and division.
// Either filter may be empty to mean "any". Division matching is substring
// containment against the display name, so "11U" also matches entries whose
// division field was never parsed out.
func (s *Snapshot) Entries(affiliateID, division string) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	div := strings.ToUpper(strings.TrimSpace(division))
	out := make([]Entry, 0, len(s.data.Entries))
	for _, e := range s.data.Entries {
		if affiliateID != "" && e.AffiliateID != "" && e.AffiliateID != affiliateID {
			continue
		}
		if div != "" && !strings.Contains(strings.ToUpper(e.DisplayName), div) && e.Division != div {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Add inserts or replaces entries by ID.
func (s *Snapshot) Add(entries ...Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[string]int, len(s.data.Entries))
	for i, e := range s.data.Entries {
		byID[e.ID] = i
	}
	for _, e := range entries {
		if e.ID == "" {
			continue
		}
		if i, ok := byID[e.ID]; ok {
			s.data.Entries[i] = e
			continue
		}
		byID[e.ID] = len(s.data.Entries)
		s.data.Entries = append(s.data.Entries, e)
	}
	sort.Slice(s.data.Entries, func(i, j int) bool {
		return s.data.Entries[i].ID < s.data.Entries[j].ID
	})
}

// Len returns the number of stored entries.
func (s *Snapshot) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.Entries)
}

// Save writes the snapshot back to disk.
func (s *Snapshot) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating snapshot directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
