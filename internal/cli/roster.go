package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/obatools/rosterscout/internal/directory"
)

var (
	flagRosterURL   string
	flagTeamID      string
	flagAffiliateID string
)

func newRosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Retrieve the roster behind a team URL or team ID",
		Long: `Retrieve a roster directly, without name resolution. Pass either the
full roster URL (--url) or a numeric team ID (--team-id), optionally with
the affiliate it belongs to.`,
		RunE: runRoster,
	}

	cmd.Flags().StringVar(&flagRosterURL, "url", "", "Full roster page URL")
	cmd.Flags().StringVar(&flagTeamID, "team-id", "", "Numeric directory team ID")
	cmd.Flags().StringVar(&flagAffiliateID, "affiliate", "", "Affiliate ID for --team-id (defaults to the broad affiliate)")

	return cmd
}

func runRoster(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	if (flagRosterURL == "") == (flagTeamID == "") {
		return fmt.Errorf("exactly one of --url or --team-id is required")
	}

	a, err := buildApp()
	if err != nil {
		return err
	}

	url := flagRosterURL
	if url == "" {
		affiliate := flagAffiliateID
		if affiliate == "" {
			affiliate = a.affiliates.Default()
		}
		url = directory.TeamURL(a.cfg.BaseURL, affiliate, flagTeamID)
	}

	res := a.svc.GetRoster(cmd.Context(), url, !flagNoCache)
	return WriteOutput(os.Stdout, res, format)
}
