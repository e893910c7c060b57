// Package vtest provides testing helpers for routed apps.
//
// A Harness mounts an app on an in-memory window and drives it the way a
// user would: clicking links, pressing back and forward, typing a URL.
//
// # Quick Start
//
//	func TestAbout(t *testing.T) {
//	    h := vtest.Mount(t, "/", vroute.Options{})
//	    h.Click("/about")
//	    h.ExpectCurrent("/about")
//	    h.ExpectContains("<h1>About</h1>")
//
//	    h.Back()
//	    h.ExpectCurrent("/")
//	}
//
// # Render Assertions
//
// Assert on a component's rendered HTML without mounting an app:
//
//	vtest.ExpectContains(t, comp.Render(), "Welcome")
//	vtest.ExpectAttribute(t, link, "aria-current", "page")
package vtest
