package environ

import "strings"

// FilterSpec describes which variables survive into the core's environment.
type FilterSpec struct {
	// AllowList holds general purpose names kept verbatim.
	AllowList []string
	// Prefix is the tool namespace; every name carrying it is kept.
	Prefix string
	// CIIndicators are names whose non-empty presence enables CIPrefix.
	CIIndicators []string
	// CIPrefix is the CI platform namespace kept while running in CI.
	CIPrefix string
	// SecretFragments exclude CIPrefix names containing any of them.
	SecretFragments []string
}

// InCI reports whether any CI indicator is set in env.
func (s FilterSpec) InCI(env Env) bool {
	for _, name := range s.CIIndicators {
		if env.IsSet(name) {
			return true
		}
	}
	return false
}

// Allows reports whether name may be passed on.
func (s FilterSpec) Allows(name string, inCI bool) bool {
	if s.Prefix != "" && strings.HasPrefix(name, s.Prefix) {
		return true
	}
	for _, allowed := range s.AllowList {
		if name == allowed {
			return true
		}
	}
	if inCI && s.CIPrefix != "" && strings.HasPrefix(name, s.CIPrefix) {
		return !s.looksSecret(name)
	}
	return false
}

func (s FilterSpec) looksSecret(name string) bool {
	for _, fragment := range s.SecretFragments {
		if fragment != "" && strings.Contains(name, fragment) {
			return true
		}
	}
	return false
}

// Filter returns a fresh Env holding only the variables spec allows.
// Variables with empty values are dropped.
func Filter(env Env, spec FilterSpec) Env {
	inCI := spec.InCI(env)
	kept := make(map[string]string)
	for name, value := range env.vars {
		if value == "" {
			continue
		}
		if spec.Allows(name, inCI) {
			kept[name] = value
		}
	}
	return Env{vars: kept}
}
