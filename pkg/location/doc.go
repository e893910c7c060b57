// Package location maps routing keys to and from the browser location.
//
// A Strategy reads the current key, writes a new one without reloading the
// page, and reports external changes. Two strategies share one contract:
//
//   - Path keys on the location path. Write pushes a history entry, which
//     browsers do silently, so only back/forward (popstate) is reported.
//   - Fragment keys on the text after "#". Write sets the fragment and the
//     browser reports it (hashchange) like any other fragment edit.
//
// Whether Write closes the loop on its own is strategy specific and exposed
// through the Notifier capability. Callers must not assume either way.
package location
