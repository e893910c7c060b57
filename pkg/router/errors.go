package router

import "github.com/vango-dev/vroute/internal/errors"

// Sentinel errors. Match with errors.Is.
var (
	// ErrConfiguration reports a malformed route list or route config.
	ErrConfiguration error = errors.New("R001")

	// ErrNotInitialized is returned by navigation before Init.
	ErrNotInitialized error = errors.New("R002")

	// ErrUnknownRoute is returned by NavigateNamed for an unknown name.
	ErrUnknownRoute error = errors.New("R004")
)
