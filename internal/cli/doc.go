// Package cli implements the command-line interface for rosterscout.
//
// The cli package provides the Cobra-based CLI with subcommands for resolving
// team names (search), retrieving rosters (roster), probing team ID ranges
// (scan), and serving the HTTP API (serve). Logical outcomes such as "no
// match" are reported in the output and exit 0; only usage and setup errors
// exit non-zero.
package cli
