package items

// Kind describes one family of package definitions
type Kind struct {
	Name string
	// Include selects definition files by tap-relative path
	Include string
	// Exclude drops files matched by Include; empty means no exclusion
	Exclude string
	// CoreTap is the tap fully covered by the cached name index
	CoreTap string
	// CacheFile is the name index file under <cache>/api
	CacheFile string
}

// Formula lists command-line packages: every .rb file outside Casks/
var Formula = Kind{
	Name:      "formula",
	Include:   "**/*.rb",
	Exclude:   "**/Casks/**",
	CoreTap:   "homebrew/core",
	CacheFile: "formula_names.txt",
}

// Cask lists application packages: .rb files under Casks/
var Cask = Kind{
	Name:      "cask",
	Include:   "**/Casks/**/*.rb",
	CoreTap:   "homebrew/cask",
	CacheFile: "cask_names.txt",
}

// Matcher returns the composed include/exclude predicate for k
func (k Kind) Matcher() Predicate {
	match := Glob(k.Include)
	if k.Exclude != "" {
		match = And(match, Not(Glob(k.Exclude)))
	}
	return match
}
