package browser

import (
	"net/url"
	"strings"
)

// Event names a native location notification.
type Event string

const (
	// PopState fires on history traversal (back/forward/go).
	PopState Event = "popstate"

	// HashChange fires whenever the fragment changes.
	HashChange Event = "hashchange"
)

// Location is a snapshot of the window location.
type Location struct {
	// Path is the path component, always starting with "/".
	Path string

	// Query is the raw query string without "?".
	Query string

	// Hash is the fragment without the leading "#".
	Hash string
}

// String returns the location as a path-relative URL.
func (l Location) String() string {
	var b strings.Builder
	b.WriteString(l.Path)
	if l.Query != "" {
		b.WriteByte('?')
		b.WriteString(l.Query)
	}
	if l.Hash != "" {
		b.WriteByte('#')
		b.WriteString(l.Hash)
	}
	return b.String()
}

// Window is the browser location API used by location strategies.
type Window interface {
	// Location returns the current location.
	Location() Location

	// PushState adds a history entry for url without reloading and without
	// firing any event.
	PushState(url string)

	// ReplaceState replaces the current entry's url silently.
	ReplaceState(url string)

	// SetHash sets the fragment, adding a history entry. Fires HashChange
	// when the fragment changed.
	SetHash(fragment string)

	// ReplaceHash sets the fragment without adding an entry. Fires
	// HashChange when the fragment changed.
	ReplaceHash(fragment string)

	// Go traverses history by delta entries. Fires PopState.
	Go(delta int)

	// AddEventListener registers fn for ev and returns a function that
	// removes it.
	AddEventListener(ev Event, fn func()) (remove func())
}

// ParseLocation resolves a URL reference against base the way a browser
// resolves an href: "#x" keeps base's path and query, "?q" keeps the path,
// relative paths resolve against base's directory.
func ParseLocation(raw string, base Location) Location {
	ref, err := url.Parse(raw)
	if err != nil {
		return Location{Path: raw}
	}

	resolved := (&url.URL{Path: base.Path, RawQuery: base.Query}).ResolveReference(ref)
	loc := Location{
		Path:  resolved.EscapedPath(),
		Query: resolved.RawQuery,
		Hash:  resolved.Fragment,
	}
	if loc.Path == "" {
		loc.Path = "/"
	}
	return loc
}

// TrimQuery strips a single leading "?".
func TrimQuery(query string) string {
	return strings.TrimPrefix(query, "?")
}

// DecodeFragment percent-decodes a fragment as browsers report it in
// location.hash. A fragment that does not decode is returned unchanged.
func DecodeFragment(fragment string) string {
	decoded, err := url.PathUnescape(fragment)
	if err != nil {
		return fragment
	}
	return decoded
}

// TrimHash strips a single leading "#".
func TrimHash(fragment string) string {
	return strings.TrimPrefix(fragment, "#")
}
