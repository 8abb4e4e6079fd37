package bootstrap

import (
	"github.com/arthur-debert/brewboot/pkg/errors"
	"github.com/arthur-debert/brewboot/pkg/filesystem"
	"github.com/arthur-debert/brewboot/pkg/logging"
)

// ExecFunc replaces the current process image. It only returns on failure.
type ExecFunc func(argv0 string, argv []string, envv []string) error

// Handoff starts the interpreted core with the filtered environment. With
// the default exec it does not return on success.
func Handoff(env *Environment, exec ExecFunc) error {
	if exec == nil {
		exec = execProcess
	}
	if !filesystem.IsFile(filesystem.NewOS(), env.CoreScript) {
		return errors.Newf(errors.ErrInterpreterNotFound, "Error: brew core not found at %s.", env.CoreScript).
			WithDetail("path", env.CoreScript)
	}

	logger := logging.GetLogger("bootstrap.handoff")
	logger.Debug().
		Strs("argv", env.Argv).
		Int("env", env.Filtered.Len()).
		Msg("Handing off to interpreter")

	if err := exec(env.Argv[0], env.Argv, env.Filtered.Pairs()); err != nil {
		return errors.Wrapf(err, errors.ErrExec, "Error: failed to start %s.", env.Argv[0])
	}
	return nil
}
