// Package errors provides structured, coded errors for vroute.
//
// Every failure the router surfaces carries a stable code from the registry
// (R001, R002, ...), a category, a short message and an optional detail and
// suggestion. Errors compare by code, so a sentinel built with New matches
// any error carrying the same code:
//
//	err := errors.New("R001").WithDetail("route 2 has no component")
//	stderrors.Is(err, errors.New("R001")) // true
//
// Format renders an error for terminal output with ANSI colors; the CLI
// uses it to print configuration failures.
package errors
