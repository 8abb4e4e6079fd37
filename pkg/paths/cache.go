package paths

import (
	"path/filepath"

	"github.com/arthur-debert/brewboot/pkg/environ"
)

const cacheDirName = "Homebrew"

// CacheDir returns HOMEBREW_CACHE from env, or the platform default:
// ~/Library/Caches/Homebrew on darwin and ${XDG_CACHE_HOME:-~/.cache}/Homebrew
// elsewhere.
func CacheDir(env environ.Env, goos string) string {
	if dir := env.Get(EnvCache); dir != "" {
		return dir
	}
	home := env.Get("HOME")
	if goos == "darwin" {
		return filepath.Join(home, "Library", "Caches", cacheDirName)
	}
	if xdgCache := env.Get("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, cacheDirName)
	}
	return filepath.Join(home, ".cache", cacheDirName)
}
