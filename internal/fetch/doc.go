// Package fetch retrieves directory pages politely.
//
// The client spaces requests per host, retries transient failures with
// exponential backoff, and identifies itself with a stable user agent. Pages
// whose rosters only exist after client-side rendering go through the
// headless-browser path in render.go.
package fetch
