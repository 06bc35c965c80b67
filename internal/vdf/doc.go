// Package vdf extracts the handful of fields compatscan needs from Valve's
// KeyValues text format (libraryfolders.vdf): the installed-app ID set and
// the declared additional library paths. It is a deliberate line scanner,
// not a general VDF parser; the manifest shape it relies on is flat
// one-level nesting with no escaped quotes.
package vdf
