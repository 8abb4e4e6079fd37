package environ

// PromotionSpec describes how bare variables are copied into the namespace
// before filtering.
type PromotionSpec struct {
	Prefix string
	// PassThrough names are copied only when the namespaced form is unset,
	// so a user's explicit HOMEBREW_EDITOR beats EDITOR.
	PassThrough []string
	// ToolOwned names always overwrite the namespaced form. The tool needs
	// the real PATH, TMUX, etc., not a value from a config file.
	ToolOwned []string
}

// Promote returns a copy of env with the promotion rules applied.
// Bare variables with empty values are never copied.
func Promote(env Env, spec PromotionSpec) Env {
	next := env.Map()

	for _, name := range spec.PassThrough {
		value := env.Get(name)
		if value == "" {
			continue
		}
		namespaced := spec.Prefix + name
		if next[namespaced] != "" {
			continue
		}
		next[namespaced] = value
	}

	for _, name := range spec.ToolOwned {
		value := env.Get(name)
		if value == "" {
			continue
		}
		next[spec.Prefix+name] = value
	}

	return Env{vars: next}
}
