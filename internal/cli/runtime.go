package cli

import (
	"io"
	"os"
	"runtime"

	"github.com/arthur-debert/brewboot/pkg/bootstrap"
	"github.com/arthur-debert/brewboot/pkg/config"
	"github.com/arthur-debert/brewboot/pkg/environ"
	"github.com/arthur-debert/brewboot/pkg/errors"
	"github.com/arthur-debert/brewboot/pkg/filesystem"
	"github.com/arthur-debert/brewboot/pkg/paths"
	"github.com/spf13/afero"
)

// Runtime holds the process inputs the commands work from
type Runtime struct {
	// Argv0 is the name the process was invoked as
	Argv0 string
	// Environ is the inherited environment as KEY=value pairs
	Environ []string
	GOOS    string
	Getwd   func() (string, error)
	// FS is used for brew.env files and tap scanning
	FS    afero.Fs
	Rules *config.Rules
	Exec  bootstrap.ExecFunc
	// Interpreter overrides the configured shell when set
	Interpreter string
	// AltEntrypoint and AltPrefix override the configured alternate location
	AltEntrypoint string
	AltPrefix     string

	Stdout io.Writer
	Stderr io.Writer
}

// DefaultRuntime describes the running process
func DefaultRuntime() Runtime {
	return Runtime{
		Argv0:   os.Args[0],
		Environ: os.Environ(),
		GOOS:    runtime.GOOS,
		Getwd:   os.Getwd,
		FS:      filesystem.NewOS(),
		Rules:   config.Default(),
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// resolve runs the bootstrap resolver for args
func (rt Runtime) resolve(args []string) (*bootstrap.Environment, error) {
	env := environ.FromPairs(rt.Environ)
	entrypoint, ok := paths.LocateEntrypoint(rt.Argv0, env.Get("PATH"))
	if !ok {
		return nil, errors.Newf(errors.ErrFileAccess, "Error: cannot locate %s on PATH.", rt.Argv0)
	}

	return bootstrap.Resolve(bootstrap.Options{
		Entrypoint:    entrypoint,
		Args:          args,
		Env:           env,
		Rules:         rt.Rules,
		FS:            rt.FS,
		GOOS:          rt.GOOS,
		Getwd:         rt.Getwd,
		Interpreter:   rt.Interpreter,
		AltEntrypoint: rt.AltEntrypoint,
		AltPrefix:     rt.AltPrefix,
	})
}

// handoff resolves and replaces the process with the interpreted core
func (rt Runtime) handoff(args []string) error {
	resolved, err := rt.resolve(args)
	if err != nil {
		return err
	}
	warnConfig(rt.Stderr, resolved)
	return bootstrap.Handoff(resolved, rt.Exec)
}
