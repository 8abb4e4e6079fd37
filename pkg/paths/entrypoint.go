package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// LocateEntrypoint returns the path the entrypoint was invoked through.
// argv0 containing a separator is used as is; a bare name is searched for
// on pathList the way a shell would. The result keeps any symlink so the
// layout can be resolved through it.
func LocateEntrypoint(argv0, pathList string) (string, bool) {
	if argv0 == "" {
		return "", false
	}
	if strings.ContainsRune(argv0, filepath.Separator) {
		return argv0, true
	}

	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, argv0)
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() || info.Mode()&0111 == 0 {
			continue
		}
		return candidate, true
	}
	return "", false
}
