package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/obatools/rosterscout/internal/service"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteOutput writes a command result in the specified format.
func WriteOutput(w io.Writer, result interface{}, format OutputFormat) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeText renders a result as human-readable text.
func writeText(w io.Writer, result interface{}) error {
	switch out := result.(type) {
	case *SearchOutput:
		writeSearchText(w, out)
	case *service.RosterResult:
		writeRosterText(w, out)
	case *service.ScanResult:
		writeScanText(w, out)
	default:
		// No text renderer registered; JSON is always readable.
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}
	return nil
}

func writeRosterText(w io.Writer, res *service.RosterResult) {
	if !res.Success {
		fmt.Fprintf(w, "No roster retrieved: %s\n", res.Error)
		if res.Roster != nil && res.Roster.TeamName != "" {
			fmt.Fprintf(w, "  page identified as: %s\n", res.Roster.TeamName)
		}
		return
	}

	r := res.Roster
	fmt.Fprintf(w, "%s (%d players, via %s, %s)\n", r.TeamName, len(r.Players), r.Method, r.Source)
	for _, p := range r.Players {
		if p.Number != "" {
			fmt.Fprintf(w, "  #%-3s %s", p.Number, p.Name)
		} else {
			fmt.Fprintf(w, "  %-5s%s", "", p.Name)
		}
		if p.Position != "" {
			fmt.Fprintf(w, "  (%s)", p.Position)
		}
		fmt.Fprintln(w)
	}
}

func writeScanText(w io.Writer, res *service.ScanResult) {
	fmt.Fprintf(w, "Scanned %d IDs (%d-%d) in %s: %d teams found, %d with rosters\n",
		res.Processed, res.Start, res.End, res.Duration, res.Found, res.WithRoster)
	for _, team := range res.Teams {
		fmt.Fprintf(w, "  %s  %s", team.ID, team.DisplayName)
		if team.PlayerCount > 0 {
			fmt.Fprintf(w, " (%d players)", team.PlayerCount)
		}
		fmt.Fprintln(w)
	}
}
