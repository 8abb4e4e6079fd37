package bootstrap

import (
	"os"

	"github.com/arthur-debert/brewboot/pkg/environ"
	"github.com/arthur-debert/brewboot/pkg/errors"
)

// User-facing precondition messages
const (
	MsgUnsupportedPlatform = "Error: brew is only supported on macOS and Linux."
	MsgShellRequired       = "Error: Bash is required to run brew."
	MsgWorkdirMissing      = "Error: The current working directory must exist to run brew."
	MsgHomeUnset           = "Error: $HOME must be set to run brew."
)

var supportedPlatforms = map[string]bool{"darwin": true, "linux": true}

// CheckPreconditions verifies, in order, that the interpreter can run, that
// the working directory exists and that HOME is set. It stops at the first
// failure.
func CheckPreconditions(goos, interpreter string, env environ.Env, getwd func() (string, error)) error {
	if !supportedPlatforms[goos] {
		return errors.New(errors.ErrShellUnsupported, MsgUnsupportedPlatform).WithDetail("goos", goos)
	}
	if !isExecutable(interpreter) {
		return errors.New(errors.ErrShellUnsupported, MsgShellRequired).WithDetail("interpreter", interpreter)
	}

	cwd, err := getwd()
	if err != nil {
		return errors.Wrap(err, errors.ErrWorkdirMissing, MsgWorkdirMissing)
	}
	if info, err := os.Stat(cwd); err != nil {
		return errors.Wrap(err, errors.ErrWorkdirMissing, MsgWorkdirMissing).WithDetail("cwd", cwd)
	} else if !info.IsDir() {
		return errors.New(errors.ErrWorkdirMissing, MsgWorkdirMissing).WithDetail("cwd", cwd)
	}

	if !env.IsSet("HOME") {
		return errors.New(errors.ErrHomeUnset, MsgHomeUnset)
	}
	return nil
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode()&0111 != 0
}
