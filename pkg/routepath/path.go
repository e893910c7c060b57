package routepath

import (
	"errors"
	"strings"
)

// Path validation errors.
var (
	ErrInvalidPath          = errors.New("invalid path")
	ErrBackslashInPath      = errors.New("path contains backslash")
	ErrNullByteInPath       = errors.New("path contains null byte")
	ErrInvalidPercentEscape = errors.New("invalid percent escape sequence")
	ErrPathEscapesRoot      = errors.New("path escapes root via ..")
)

// Canonicalize returns the canonical form of path. Changed reports whether
// the result differs from the input.
func Canonicalize(path string) (canonical string, changed bool, err error) {
	if path == "" {
		return "/", true, nil
	}
	if strings.Contains(path, "\\") {
		return "", false, ErrBackslashInPath
	}
	if strings.Contains(path, "\x00") || strings.Contains(strings.ToUpper(path), "%00") {
		return "", false, ErrNullByteInPath
	}
	if strings.Contains(path, "%") {
		if err := validatePercentEscapes(path); err != nil {
			return "", false, err
		}
	}

	var segments []string
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(segments) == 0 {
				return "", false, ErrPathEscapesRoot
			}
			segments = segments[:len(segments)-1]
		default:
			segments = append(segments, seg)
		}
	}

	canonical = "/" + strings.Join(segments, "/")
	return canonical, canonical != path, nil
}

// MustCanonicalize is Canonicalize for inputs known to be well formed.
// Invalid input is returned unchanged.
func MustCanonicalize(path string) string {
	canonical, _, err := Canonicalize(path)
	if err != nil {
		return path
	}
	return canonical
}

// LocalPath validates a same-origin path reported by a client, possibly
// carrying a query string, and returns it canonicalized. Absolute and
// protocol-relative URLs are rejected.
func LocalPath(raw string) (string, error) {
	if strings.HasPrefix(raw, "//") || !strings.HasPrefix(raw, "/") {
		return "", ErrInvalidPath
	}
	path, query, hasQuery := strings.Cut(raw, "?")
	canonical, _, err := Canonicalize(path)
	if err != nil {
		return "", err
	}
	if hasQuery && query != "" {
		return canonical + "?" + query, nil
	}
	return canonical, nil
}

// AssetName turns a requested asset path into a slash-separated name
// relative to an asset root ("/css/site.css" -> "css/site.css").
func AssetName(raw string) (string, error) {
	canonical, _, err := Canonicalize("/" + strings.TrimPrefix(raw, "/"))
	if err != nil {
		return "", err
	}
	if canonical == "/" {
		return "", ErrInvalidPath
	}
	return canonical[1:], nil
}

// CleanBase normalizes a mount prefix: "" and "/" mean no prefix, anything
// else is canonicalized ("app/" -> "/app").
func CleanBase(base string) string {
	if base == "" || base == "/" {
		return ""
	}
	canonical := MustCanonicalize("/" + strings.TrimPrefix(base, "/"))
	if canonical == "/" {
		return ""
	}
	return canonical
}

// StripBase removes base from path. A path outside base is returned as is.
func StripBase(base, path string) string {
	if base == "" {
		return path
	}
	if path == base {
		return "/"
	}
	if rest, ok := strings.CutPrefix(path, base); ok && strings.HasPrefix(rest, "/") {
		return rest
	}
	return path
}

// JoinBase prefixes key with base. JoinBase("/app", "/") is "/app/".
func JoinBase(base, key string) string {
	if !strings.HasPrefix(key, "/") {
		key = "/" + key
	}
	return base + key
}

// validatePercentEscapes checks that every '%' starts a %XX escape.
func validatePercentEscapes(path string) error {
	for i := 0; i < len(path); i++ {
		if path[i] != '%' {
			continue
		}
		if i+2 >= len(path) || !isHexDigit(path[i+1]) || !isHexDigit(path[i+2]) {
			return ErrInvalidPercentEscape
		}
		i += 2
	}
	return nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
