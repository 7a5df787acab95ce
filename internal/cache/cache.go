// Package cache persists retrieved rosters as JSON files with a TTL.
//
// Each roster is stored under a key derived from its canonical team URL, one
// file per key. Expired records are treated as misses and overwritten on the
// next store; there is no background eviction.
package cache

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/obatools/rosterscout/internal/logger"
	"github.com/obatools/rosterscout/internal/roster"
)

// DefaultTTL is how long a stored roster stays fresh.
const DefaultTTL = 24 * time.Hour

// Record is the on-disk envelope around a cached roster.
type Record struct {
	Key      string         `json:"key"`
	StoredAt time.Time      `json:"stored_at"`
	Roster   *roster.Roster `json:"roster"`
}

// Cache is a file-backed roster store. Safe for concurrent use.
type Cache struct {
	mu  sync.Mutex
	dir string
	ttl time.Duration
}

// Open prepares a cache rooted at dir, creating it if needed. A leading "~/"
// expands to the user's home directory. ttl <= 0 takes DefaultTTL.
func Open(dir string, ttl time.Duration) (*Cache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		dir = filepath.Join(home, dir[2:])
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	return &Cache{dir: dir, ttl: ttl}, nil
}

// Key derives the cache key for a team URL. Hashing keeps arbitrary URLs
// filesystem-safe and collision-resistant enough for this store.
func Key(teamURL string) string {
	sum := sha1.Sum([]byte(strings.TrimSpace(teamURL)))
	return fmt.Sprintf("%x", sum)
}

// Get returns the cached roster for a key, or (nil, false) on a miss or an
// expired record.
func (c *Cache) Get(key string) (*roster.Roster, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, false
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		logger.Warn("discarding unreadable cache record", logger.Fields{
			"key":   key,
			"error": err.Error(),
		})
		return nil, false
	}

	if time.Since(rec.StoredAt) > c.ttl {
		logger.IncrCounter("cache.expired")
		return nil, false
	}

	logger.IncrCounter("cache.hit")
	return rec.Roster, true
}

// Put stores a roster under a key, overwriting any previous record.
func (c *Cache) Put(key string, r *roster.Roster) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec := Record{Key: key, StoredAt: time.Now().UTC(), Roster: r}
	raw, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cache record: %w", err)
	}
	if err := os.WriteFile(c.path(key), raw, 0644); err != nil {
		return fmt.Errorf("writing cache record: %w", err)
	}
	logger.IncrCounter("cache.store")
	return nil
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, "roster_"+key+".json")
}
