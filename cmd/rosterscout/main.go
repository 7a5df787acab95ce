// Command rosterscout links colloquial Ontario youth baseball team names to
// their directory listings and retrieves their rosters.
package main

import "github.com/obatools/rosterscout/internal/cli"

func main() {
	cli.Execute()
}
