package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	flagScanStart   int
	flagScanEnd     int
	flagScanWorkers int
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Probe a team ID range for unlisted teams",
		Long: `Probe every team ID in a range against each affiliate's roster URL
shapes. Teams that answer with a valid name are recorded in the local
snapshot, where degraded-mode searches can find them later.

Probing is rate limited per host; large ranges take a while by design.`,
		RunE: runScan,
	}

	cmd.Flags().IntVar(&flagScanStart, "start", 0, "First team ID (required)")
	cmd.Flags().IntVar(&flagScanEnd, "end", 0, "Last team ID, inclusive (required)")
	cmd.Flags().IntVar(&flagScanWorkers, "workers", 0, "Concurrent probes (default from config)")
	cmd.MarkFlagRequired("start") // nolint:errcheck
	cmd.MarkFlagRequired("end")   // nolint:errcheck

	return cmd
}

func runScan(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	a, err := buildApp()
	if err != nil {
		return err
	}

	workers := flagScanWorkers
	if workers <= 0 {
		workers = a.cfg.ScanWorkers
	}

	result, err := a.scanner.ScanRange(cmd.Context(), flagScanStart, flagScanEnd, workers)
	if err != nil {
		if result == nil {
			return err
		}
		// Cancelled scans still report what they found.
	}
	return WriteOutput(os.Stdout, result, format)
}
