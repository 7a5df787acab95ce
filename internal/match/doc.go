// Package match links colloquial team names to directory listings.
//
// Directory entries carry names like "11U HS Forest Glade" while users say
// "Forest Glade Falcons - 11U". The package bridges the gap in three steps:
// generate the plausible directory spellings of the input name (variants),
// score each candidate listing against those variants, and resolve the scored
// field into a single outcome with explicit confidence and ambiguity signals.
//
// A resolution is never auto-trusted. Even a perfect score asks the caller to
// confirm before any roster is fetched on its behalf.
package match
