package routepath

import (
	"errors"
	"testing"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        string
		wantChanged bool
		wantErr     error
	}{
		{name: "root", input: "/", want: "/"},
		{name: "empty", input: "", want: "/", wantChanged: true},
		{name: "plain", input: "/about", want: "/about"},
		{name: "no leading slash", input: "about", want: "/about", wantChanged: true},
		{name: "trailing slash", input: "/about/", want: "/about", wantChanged: true},
		{name: "collapse slashes", input: "/blog//post", want: "/blog/post", wantChanged: true},
		{name: "single dot", input: "/blog/./post", want: "/blog/post", wantChanged: true},
		{name: "double dot", input: "/blog/posts/../other", want: "/blog/other", wantChanged: true},
		{name: "double dot to root", input: "/blog/../", want: "/", wantChanged: true},
		{name: "valid escape", input: "/hello%20world", want: "/hello%20world"},
		{name: "backslash", input: "/a\\b", wantErr: ErrBackslashInPath},
		{name: "nul literal", input: "/a\x00b", wantErr: ErrNullByteInPath},
		{name: "nul encoded", input: "/a%00b", wantErr: ErrNullByteInPath},
		{name: "bad escape", input: "/a%GG", wantErr: ErrInvalidPercentEscape},
		{name: "truncated escape", input: "/a%2", wantErr: ErrInvalidPercentEscape},
		{name: "escapes root", input: "/../secret", wantErr: ErrPathEscapesRoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed, err := Canonicalize(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Canonicalize(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Canonicalize(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Canonicalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if changed != tt.wantChanged {
				t.Errorf("Canonicalize(%q) changed = %v, want %v", tt.input, changed, tt.wantChanged)
			}
		})
	}
}

func TestMustCanonicalize(t *testing.T) {
	if got := MustCanonicalize("/a//b/"); got != "/a/b" {
		t.Errorf("MustCanonicalize = %q, want /a/b", got)
	}
	if got := MustCanonicalize("/../x"); got != "/../x" {
		t.Errorf("MustCanonicalize of invalid input = %q, want it unchanged", got)
	}
}

func TestLocalPath(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "/about", want: "/about"},
		{input: "/docs//intro/?v=2", want: "/docs/intro?v=2"},
		{input: "/a?", want: "/a"},
		{input: "https://evil.example/", wantErr: true},
		{input: "//evil.example/", wantErr: true},
		{input: "about", wantErr: true},
		{input: "/../etc", wantErr: true},
	}
	for _, tt := range tests {
		got, err := LocalPath(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("LocalPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("LocalPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestAssetName(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "/css/site.css", want: "css/site.css"},
		{input: "img//logo.png", want: "img/logo.png"},
		{input: "/", wantErr: true},
		{input: "", wantErr: true},
		{input: "../secret", wantErr: true},
		{input: "a\\b", wantErr: true},
	}
	for _, tt := range tests {
		got, err := AssetName(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("AssetName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("AssetName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBase(t *testing.T) {
	for _, tt := range []struct{ in, want string }{
		{"", ""},
		{"/", ""},
		{"app", "/app"},
		{"/app/", "/app"},
		{"//a//b", "/a/b"},
	} {
		if got := CleanBase(tt.in); got != tt.want {
			t.Errorf("CleanBase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	for _, tt := range []struct{ base, path, want string }{
		{"", "/about", "/about"},
		{"/app", "/app", "/"},
		{"/app", "/app/", "/"},
		{"/app", "/app/about", "/about"},
		{"/app", "/application", "/application"},
		{"/app", "/other", "/other"},
	} {
		if got := StripBase(tt.base, tt.path); got != tt.want {
			t.Errorf("StripBase(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
		}
	}

	if got := JoinBase("/app", "/"); got != "/app/" {
		t.Errorf("JoinBase = %q, want /app/", got)
	}
	if got := JoinBase("", "about"); got != "/about" {
		t.Errorf("JoinBase = %q, want /about", got)
	}
}
