// Package routepath normalizes and validates the paths that flow through a
// router: routing keys read from the location bar, paths reported by a
// remote browser, and asset names requested from the dev server.
//
// Canonical form:
//   - starts with "/"
//   - no repeated slashes, no "." segments, ".." resolved
//   - no trailing slash except for the root "/"
//
// Backslashes, NUL bytes, malformed percent-escapes and ".." segments that
// climb above the root are rejected rather than repaired.
package routepath
