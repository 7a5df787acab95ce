package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/obatools/rosterscout/internal/match"
	"github.com/obatools/rosterscout/internal/service"
)

var (
	flagDivision      string
	flagConfirm       bool
	flagAffiliateHint string
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <team name>",
		Short: "Resolve a team name to its directory listing",
		Long: `Resolve a colloquial team name (e.g. "Forest Glade Falcons - 11U HS")
to its directory listing. Reports the best candidate with a confidence
score plus any close alternates.

With --confirm, the best candidate's roster is fetched after resolution.
An ambiguous result is never auto-confirmed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().StringVar(&flagDivision, "division", "", "Age division, e.g. 11U (required)")
	cmd.Flags().BoolVar(&flagConfirm, "confirm", false, "Fetch the best candidate's roster")
	cmd.Flags().StringVar(&flagAffiliateHint, "affiliate", "", "Search this affiliate ID instead of inferring one")
	cmd.MarkFlagRequired("division") // nolint:errcheck

	return cmd
}

// SearchOutput is what the search command prints.
type SearchOutput struct {
	TeamName   string                `json:"team_name"`
	Division   string                `json:"division"`
	Resolution *match.Resolution     `json:"resolution"`
	Roster     *service.RosterResult `json:"roster,omitempty"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	teamName := strings.TrimSpace(strings.Join(args, " "))
	a, err := buildApp()
	if err != nil {
		return err
	}

	res, err := a.svc.Resolve(cmd.Context(), teamName, flagDivision, flagAffiliateHint)
	if err != nil {
		return err
	}

	out := &SearchOutput{
		TeamName:   teamName,
		Division:   strings.ToUpper(strings.TrimSpace(flagDivision)),
		Resolution: res,
	}

	if flagConfirm && res.Outcome == match.OutcomeMatched && !res.Ambiguous {
		out.Roster = a.svc.Confirm(cmd.Context(), *res.Best, !flagNoCache)
	}

	return WriteOutput(os.Stdout, out, format)
}

func writeSearchText(w io.Writer, out *SearchOutput) {
	res := out.Resolution
	switch res.Outcome {
	case match.OutcomeNoCandidates:
		fmt.Fprintf(w, "No %s listings found (affiliate %s).\n", out.Division, res.AffiliateID)
		if res.Reason != "" {
			fmt.Fprintf(w, "  %s\n", res.Reason)
		}
	case match.OutcomeNoMatch:
		fmt.Fprintf(w, "No listing matched %q.\n", out.TeamName)
		if len(res.AvailableNames) > 0 {
			fmt.Fprintf(w, "Available %s listings:\n", out.Division)
			for _, name := range res.AvailableNames {
				fmt.Fprintf(w, "  %s\n", name)
			}
		}
	case match.OutcomeMatched:
		b := res.Best
		fmt.Fprintf(w, "Matched: %s (team %s, score %d", b.DisplayName, b.ID, b.Score)
		if res.Ambiguous {
			fmt.Fprint(w, ", AMBIGUOUS")
		}
		fmt.Fprintln(w, ")")
		fmt.Fprintf(w, "  via variant: %s\n", b.VariantUsed)
		fmt.Fprintf(w, "  roster URL:  %s\n", b.SourceURL)
		for _, r := range res.Runners {
			fmt.Fprintf(w, "  alternate: %s (score %d)\n", r.DisplayName, r.Score)
		}
		if out.Roster == nil {
			fmt.Fprintln(w, "Run with --confirm to fetch this roster.")
		}
	}
	if res.Degraded {
		fmt.Fprintln(w, "Note: listings came from the local snapshot, not the live directory.")
	}
	if out.Roster != nil {
		writeRosterText(w, out.Roster)
	}
}
