package bootstrap

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/brewboot/pkg/config"
	"github.com/arthur-debert/brewboot/pkg/environ"
	"github.com/arthur-debert/brewboot/pkg/logging"
	"github.com/arthur-debert/brewboot/pkg/paths"
	"github.com/spf13/afero"
)

// Options are the inputs to Resolve
type Options struct {
	// Entrypoint is the path the entrypoint was invoked through
	Entrypoint string
	// Args are the original command-line arguments, without argv[0]
	Args []string
	// Env is the inherited environment snapshot
	Env   environ.Env
	Rules *config.Rules
	// FS reads the brew.env layers
	FS   afero.Fs
	GOOS string
	// Getwd defaults to os.Getwd
	Getwd func() (string, error)
	// Interpreter overrides Rules.Interpreter.Shell
	Interpreter string
	// AltEntrypoint and AltPrefix override the rules' alternate location
	AltEntrypoint string
	AltPrefix     string
}

// Environment is the resolved, immutable state handed to the core
type Environment struct {
	Layout paths.Layout
	// Exported is the full environment after config loading and promotion
	Exported environ.Env
	// Filtered is the environment the core receives
	Filtered environ.Env
	// Argv is the interpreter invocation, interpreter first
	Argv []string
	// CoreScript is the interpreted core's entry file
	CoreScript string
	// ConfigErr aggregates malformed brew.env lines, nil when all loaded
	ConfigErr error
}

// Resolve checks the preconditions and builds the Environment
func Resolve(opts Options) (*Environment, error) {
	logger := logging.GetLogger("bootstrap.resolve")
	rules := opts.Rules
	if rules == nil {
		rules = config.Default()
	}
	getwd := opts.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	interpreter := opts.Interpreter
	if interpreter == "" {
		interpreter = rules.Interpreter.Shell
	}
	fs := opts.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}

	if err := CheckPreconditions(opts.GOOS, interpreter, opts.Env, getwd); err != nil {
		return nil, err
	}

	layoutOpts := paths.LayoutOptions{
		AltEntrypoint: rules.Interpreter.AltEntrypoint,
		AltPrefix:     rules.Interpreter.AltPrefix,
	}
	if opts.AltEntrypoint != "" {
		layoutOpts.AltEntrypoint = opts.AltEntrypoint
		layoutOpts.AltPrefix = opts.AltPrefix
	}
	layout, err := paths.ResolveLayout(opts.Entrypoint, layoutOpts)
	if err != nil {
		return nil, err
	}

	values, configErr := rules.LoadEnvLayers(fs, opts.Env, layout.Prefix)

	exported := opts.Env.Merge(values).Merge(layout.Exports())
	// the cache default reads XDG_CACHE_HOME, which the filter drops
	exported = exported.With(paths.EnvCache, paths.CacheDir(exported, opts.GOOS))
	exported = environ.Promote(exported, rules.PromotionSpec())
	filtered := environ.Filter(exported, rules.FilterSpec())

	coreScript := filepath.Join(layout.Library, rules.Interpreter.CoreScript)
	argv := make([]string, 0, 2+len(rules.Interpreter.Flags)+len(opts.Args))
	argv = append(argv, interpreter)
	argv = append(argv, rules.Interpreter.Flags...)
	argv = append(argv, coreScript)
	argv = append(argv, opts.Args...)

	logger.Debug().
		Int("inherited", opts.Env.Len()).
		Int("filtered", filtered.Len()).
		Str("coreScript", coreScript).
		Msg("Environment resolved")

	return &Environment{
		Layout:     layout,
		Exported:   exported,
		Filtered:   filtered,
		Argv:       argv,
		CoreScript: coreScript,
		ConfigErr:  configErr,
	}, nil
}
