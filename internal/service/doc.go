// Package service wires fetching, extraction, matching, and caching into the
// operations the CLI and HTTP API expose: resolve a team, confirm a
// candidate, get a roster, and scan ID ranges for unknown teams.
package service
