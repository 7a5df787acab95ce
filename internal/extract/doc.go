// Package extract pulls roster data out of directory pages.
//
// No single parser survives the directory's markup drift, so extraction runs
// a cascade of strategies from most to least structured: embedded JSON in
// script tags, HTML tables, list and grid markup, and finally bare-text
// pattern matching. The first strategy that yields validated players wins and
// names the extraction method on the result.
//
// A page that yields no players still produces a roster record, marked as not
// authentic, so callers can cache-skip and report it uniformly.
package extract
