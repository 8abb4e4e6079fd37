package environ

import (
	"sort"
	"strings"
)

// Env is an immutable snapshot of environment variables.
type Env struct {
	vars map[string]string
}

// FromPairs builds an Env from KEY=value entries as returned by os.Environ.
// Entries without '=' are ignored and later duplicates win.
func FromPairs(pairs []string) Env {
	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = value
	}
	return Env{vars: vars}
}

// FromMap builds an Env from a map. The map is copied.
func FromMap(m map[string]string) Env {
	vars := make(map[string]string, len(m))
	for k, v := range m {
		vars[k] = v
	}
	return Env{vars: vars}
}

// Get returns the value of name, or "" when unset.
func (e Env) Get(name string) string {
	return e.vars[name]
}

// Lookup returns the value of name and whether it is set.
func (e Env) Lookup(name string) (string, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// IsSet reports whether name is set to a non-empty value. This is the
// shell's [[ -n "${VAR}" ]] test.
func (e Env) IsSet(name string) bool {
	return e.vars[name] != ""
}

// With returns a copy of e with name set to value.
func (e Env) With(name, value string) Env {
	next := e.Map()
	next[name] = value
	return Env{vars: next}
}

// Merge returns a copy of e overlaid with values.
func (e Env) Merge(values map[string]string) Env {
	next := e.Map()
	for k, v := range values {
		next[k] = v
	}
	return Env{vars: next}
}

// Len returns the number of variables.
func (e Env) Len() int {
	return len(e.vars)
}

// Map returns a copy of the variables.
func (e Env) Map() map[string]string {
	out := make(map[string]string, len(e.vars))
	for k, v := range e.vars {
		out[k] = v
	}
	return out
}

// Names returns the variable names in byte order.
func (e Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for k := range e.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Pairs returns KEY=value entries sorted by name, suitable for exec.
func (e Env) Pairs() []string {
	names := e.Names()
	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, name+"="+e.vars[name])
	}
	return pairs
}
