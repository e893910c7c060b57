package location

import (
	"errors"
	"testing"

	vrerrors "github.com/vango-dev/vroute/internal/errors"
	"github.com/vango-dev/vroute/pkg/browser"
)

func TestPathStrategy(t *testing.T) {
	win := browser.NewMemory("/about")
	s := Path(win)

	if got := s.Read(); got != "/about" {
		t.Fatalf("Read() = %q, want /about", got)
	}

	fired := 0
	s.OnChange(func() { fired++ })

	s.Write("/contact")
	if got := s.Read(); got != "/contact" {
		t.Errorf("Read() after Write = %q, want /contact", got)
	}
	if fired != 0 {
		t.Errorf("Write fired OnChange %d times, want 0", fired)
	}

	win.Back()
	if fired != 1 {
		t.Errorf("Back fired OnChange %d times, want 1", fired)
	}
	if got := s.Read(); got != "/about" {
		t.Errorf("Read() after Back = %q, want /about", got)
	}

	// Fragment edits are not path changes.
	win.SetHash("top")
	if fired != 1 {
		t.Errorf("hashchange reached the path strategy")
	}
}

func TestPathStrategyReplace(t *testing.T) {
	win := browser.NewMemory("/")
	s := Path(win)

	s.Replace("/login")
	if win.Len() != 1 {
		t.Errorf("Replace added a history entry")
	}
	if got := s.Read(); got != "/login" {
		t.Errorf("Read() = %q, want /login", got)
	}
}

func TestPathStrategyBase(t *testing.T) {
	win := browser.NewMemory("/app/about")
	s := Path(win, WithBase("/app/"))

	if got := s.Read(); got != "/about" {
		t.Errorf("Read() = %q, want /about", got)
	}
	if got := s.Href("/"); got != "/app/" {
		t.Errorf("Href(/) = %q, want /app/", got)
	}

	s.Write("/docs")
	if got := win.Location().Path; got != "/app/docs" {
		t.Errorf("window path = %q, want /app/docs", got)
	}
	if got := s.Read(); got != "/docs" {
		t.Errorf("Read() = %q, want /docs", got)
	}
}

func TestPathStrategyCanonicalize(t *testing.T) {
	win := browser.NewMemory("/docs//intro/")

	if got := Path(win).Read(); got != "/docs//intro/" {
		t.Errorf("raw Read() = %q", got)
	}
	if got := Path(win, WithCanonicalize(true)).Read(); got != "/docs/intro" {
		t.Errorf("canonical Read() = %q, want /docs/intro", got)
	}
}

func TestFragmentStrategy(t *testing.T) {
	win := browser.NewMemory("/")
	s := Fragment(win)

	if got := s.Read(); got != "/" {
		t.Fatalf("Read() with empty fragment = %q, want /", got)
	}

	fired := 0
	s.OnChange(func() { fired++ })

	s.Write("/x")
	if fired != 1 {
		t.Errorf("Write fired OnChange %d times, want 1", fired)
	}
	if got := s.Read(); got != "/x" {
		t.Errorf("Read() = %q, want /x", got)
	}
	if got := win.Location().String(); got != "/#/x" {
		t.Errorf("location = %q, want /#/x", got)
	}

	// Manual edit of the fragment.
	win.Visit("#/y")
	if fired != 2 {
		t.Errorf("manual edit fired OnChange %d times total, want 2", fired)
	}

	s.Go(-1)
	if got := s.Read(); got != "/x" {
		t.Errorf("Read() after Go(-1) = %q, want /x", got)
	}
	if fired != 3 {
		t.Errorf("back fired OnChange %d times total, want 3", fired)
	}

	if got := s.Href("/about"); got != "#/about" {
		t.Errorf("Href = %q, want #/about", got)
	}
}

func TestCapabilities(t *testing.T) {
	win := browser.NewMemory("/")
	if WriteNotifies(Path(win)) {
		t.Error("Path should not notify on write")
	}
	if !WriteNotifies(Fragment(win)) {
		t.Error("Fragment should notify on write")
	}
	if WriteNotifies(bare{}) {
		t.Error("strategy without Notifier should be assumed silent")
	}
	if got := Href(bare{}, "/a"); got != "/a" {
		t.Errorf("Href fallback = %q, want /a", got)
	}
}

type bare struct{}

func (bare) Read() string                   { return "/" }
func (bare) Write(string)                   {}
func (bare) OnChange(func()) (unsub func()) { return func() {} }

func TestForMode(t *testing.T) {
	win := browser.NewMemory("/")

	s, err := ForMode(ModeHash, win)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*FragmentStrategy); !ok {
		t.Errorf("ForMode(hash) = %T, want *FragmentStrategy", s)
	}

	s, err = ForMode(ModeHistory, win)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*PathStrategy); !ok {
		t.Errorf("ForMode(history) = %T, want *PathStrategy", s)
	}

	_, err = ForMode("abstract", win)
	if err == nil {
		t.Fatal("ForMode(abstract) succeeded")
	}
	if !errors.Is(err, vrerrors.New("R003")) {
		t.Errorf("error = %v, want R003", err)
	}
	if !errors.Is(err, vrerrors.New("R001")) {
		t.Errorf("error = %v, want it to match the configuration error R001", err)
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModeHistory, "history": ModeHistory, " HASH ": ModeHash} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseMode("memory"); vrerrors.CodeOf(err) != "R003" {
		t.Errorf("ParseMode(memory) code = %q, want R003", vrerrors.CodeOf(err))
	}
}
