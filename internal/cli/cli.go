package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/obatools/rosterscout/internal/cache"
	"github.com/obatools/rosterscout/internal/config"
	"github.com/obatools/rosterscout/internal/directory"
	"github.com/obatools/rosterscout/internal/fetch"
	"github.com/obatools/rosterscout/internal/logger"
	"github.com/obatools/rosterscout/internal/match"
	"github.com/obatools/rosterscout/internal/service"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig  string
	flagFormat  string
	flagNoCache bool
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rosterscout",
		Short: "Find and retrieve Ontario youth baseball rosters",
		Long: `A CLI tool to link colloquial team names to their Ontario Baseball
Association directory listings and retrieve their rosters.

Name matches are never acted on automatically: search reports candidates
with confidence scores, and rosters are fetched only for a confirmed
candidate or an explicit team URL.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Bypass the roster cache")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newRosterCmd())
	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// app holds the wired components shared by the subcommands.
type app struct {
	cfg        *config.Config
	svc        *service.Service
	scanner    *service.Scanner
	affiliates *directory.Affiliates
	snapshot   *directory.Snapshot
}

// buildApp loads configuration and wires the service stack.
func buildApp() (*app, error) {
	if flagVerbose {
		logger.SetLevel(logger.LevelDebug)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	store, err := cache.Open(cfg.CacheDir, cfg.CacheTTL())
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	snapshot, err := directory.LoadSnapshot(expandHome(cfg.SnapshotPath), cfg.KnownTeams)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	affiliates := directory.NewAffiliates(cfg.Affiliates, cfg.DefaultAffiliateID)
	client := fetch.New(cfg.FetchTimeout(), cfg.HostDelay(), cfg.FetchRetries)
	index := directory.NewIndex(client, snapshot, cfg.BaseURL)
	resolver := match.NewResolver(index, affiliates, cfg.MinConfidence, cfg.AmbiguityMargin)
	svc := service.New(client, fetch.Rendered, store, resolver,
		cfg.RenderWaitSelector, cfg.RenderTimeout())
	scanner := service.NewScanner(client, snapshot, affiliates, cfg.BaseURL)

	return &app{
		cfg:        cfg,
		svc:        svc,
		scanner:    scanner,
		affiliates: affiliates,
		snapshot:   snapshot,
	}, nil
}

// outputFormat validates the --format flag.
func outputFormat() (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}
	return format, nil
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
