// Package roster provides the types and validation rules for extracted team rosters.
//
// The roster package defines the RosterRecord/Player model shared by the
// extraction cascade, the cache, and the roster service, together with the
// common player validator: name length bounds, a boilerplate blacklist,
// case-insensitive de-duplication, and a roster size cap that suppresses
// pathological extractions from navigation-heavy pages.
package roster
