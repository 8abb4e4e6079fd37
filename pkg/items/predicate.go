package items

import (
	"github.com/bmatcuk/doublestar/v4"
)

// Predicate tests a slash-separated, tap-relative path
type Predicate func(relPath string) bool

// Glob matches relPath against a doublestar pattern. An invalid pattern
// matches nothing.
func Glob(pattern string) Predicate {
	return func(relPath string) bool {
		ok, err := doublestar.Match(pattern, relPath)
		return err == nil && ok
	}
}

// Not negates p
func Not(p Predicate) Predicate {
	return func(relPath string) bool { return !p(relPath) }
}

// And matches when every predicate matches
func And(ps ...Predicate) Predicate {
	return func(relPath string) bool {
		for _, p := range ps {
			if !p(relPath) {
				return false
			}
		}
		return true
	}
}
