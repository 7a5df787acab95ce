// Package config loads tool configuration from a JSON file, falling back to
// built-in defaults when no file exists. Every field in the file is optional;
// unset fields keep their default values.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/obatools/rosterscout/internal/directory"
	"github.com/obatools/rosterscout/internal/logger"
)

// Config holds everything the tool needs to run. Version tracks the fallback
// data tables so externally shipped updates can be told apart from the
// built-ins.
type Config struct {
	Version            int                   `json:"version"`
	BaseURL            string                `json:"base_url"`
	DefaultAffiliateID string                `json:"default_affiliate_id"`
	Affiliates         []directory.Affiliate `json:"affiliates"`
	KnownTeams         []directory.Entry     `json:"known_teams"`

	CacheDir      string `json:"cache_dir"`
	CacheTTLHours int    `json:"cache_ttl_hours"`
	SnapshotPath  string `json:"snapshot_path"`

	FetchTimeoutSeconds  int `json:"fetch_timeout_seconds"`
	FetchRetries         int `json:"fetch_retries"`
	HostDelayMillis      int `json:"host_delay_millis"`
	RenderTimeoutSeconds int `json:"render_timeout_seconds"`

	RenderWaitSelector string `json:"render_wait_selector,omitempty"`

	ScanWorkers     int `json:"scan_workers"`
	MinConfidence   int `json:"min_confidence"`
	AmbiguityMargin int `json:"ambiguity_margin"`
}

// Default returns the built-in configuration: the public directory, its four
// southern-Ontario affiliates, and the verified Forest Glade team listings.
func Default() *Config {
	return &Config{
		Version:            1,
		BaseURL:            "https://www.playoba.ca",
		DefaultAffiliateID: "2102",
		Affiliates: []directory.Affiliate{
			{ID: "2111", Code: "SPBA", Keywords: []string{
				"forest glade", "essex", "windsor", "lasalle", "amherstburg",
				"woodslee", "leamington", "kingsville", "lakeshore", "tecumseh",
			}},
			{ID: "2106", Code: "LDBA", Keywords: []string{
				"london", "st thomas", "chatham", "sarnia", "strathroy",
			}},
			{ID: "2102", Code: "COBA", Keywords: []string{
				"toronto", "mississauga", "scarborough", "etobicoke",
				"markham", "vaughan", "brampton",
			}},
			{ID: "2107", Code: "NCOBA", Keywords: []string{
				"ottawa", "nepean", "orleans", "gloucester", "kanata",
			}},
		},
		KnownTeams: []directory.Entry{
			{ID: "500718", DisplayName: "11U HS Forest Glade", Division: "11U", AffiliateID: "2111",
				SourceURL: "https://www.playoba.ca/stats#/2111/team/500718/roster"},
			{ID: "500719", DisplayName: "13U HS Forest Glade", Division: "13U", AffiliateID: "2111",
				SourceURL: "https://www.playoba.ca/stats#/2111/team/500719/roster"},
			{ID: "500726", DisplayName: "18U HS Forest Glade", Division: "18U", AffiliateID: "2111",
				SourceURL: "https://www.playoba.ca/stats#/2111/team/500726/roster"},
		},

		CacheDir:      "~/.rosterscout/cache",
		CacheTTLHours: 24,
		SnapshotPath:  "~/.rosterscout/snapshot.json",

		FetchTimeoutSeconds:  20,
		FetchRetries:         3,
		HostDelayMillis:      750,
		RenderTimeoutSeconds: 45,

		ScanWorkers:     4,
		MinConfidence:   60,
		AmbiguityMargin: 5,
	}
}

// Load reads configuration from path, layered over the defaults. A missing
// file is not an error; an unreadable or malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("config file not found, using defaults", logger.Fields{
				"path": path,
			})
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// CacheTTL returns the cache lifetime as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLHours) * time.Hour
}

// FetchTimeout bounds one fetch attempt.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// HostDelay spaces requests to the same host.
func (c *Config) HostDelay() time.Duration {
	return time.Duration(c.HostDelayMillis) * time.Millisecond
}

// RenderTimeout bounds a headless-browser rendering pass.
func (c *Config) RenderTimeout() time.Duration {
	return time.Duration(c.RenderTimeoutSeconds) * time.Second
}
