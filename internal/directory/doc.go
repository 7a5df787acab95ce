// Package directory models the external roster directory being queried.
//
// The directory package provides the immutable Entry record, the affiliate
// resolver that maps geographic cues in team names to directory partitions,
// the bounded ordered list of URL shapes a team page may live behind, the
// candidate index (live listing with a snapshot fallback), and the JSON
// snapshot store that doubles as scan output and degraded-mode listing data.
package directory
