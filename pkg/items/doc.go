// Package items lists installable package names (formulae or casks).
//
// Names come from two sources: the cached remote name index written by the
// core (<cache>/api/formula_names.txt, cask_names.txt) and a scan of the
// taps cloned under <library>/Taps. When the cache is present and installs
// from the API are allowed, the cache is taken to cover the core tap in
// full and only the other taps are scanned. Newer definitions in a local
// core checkout are therefore not listed until the cache catches up.
//
// Core tap definitions are listed by short name (foo); definitions from
// other taps are qualified with the tap name (acme/extra/baz).
package items
