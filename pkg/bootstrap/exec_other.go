//go:build !unix

package bootstrap

import (
	"github.com/arthur-debert/brewboot/pkg/errors"
)

func execProcess(argv0 string, argv []string, envv []string) error {
	return errors.New(errors.ErrExec, "process replacement is not supported on this platform")
}
