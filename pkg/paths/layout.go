package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/brewboot/pkg/errors"
	"github.com/arthur-debert/brewboot/pkg/logging"
)

// Exported variable names
const (
	EnvBrewFile   = "HOMEBREW_BREW_FILE"
	EnvPrefix     = "HOMEBREW_PREFIX"
	EnvRepository = "HOMEBREW_REPOSITORY"
	EnvLibrary    = "HOMEBREW_LIBRARY"
	EnvCache      = "HOMEBREW_CACHE"

	libraryDirName = "Library"
	cellarDirName  = "Cellar"
)

// Layout is the resolved installation layout
type Layout struct {
	BrewFile   string
	Prefix     string
	Repository string
	Library    string
}

// LayoutOptions configure ResolveLayout
type LayoutOptions struct {
	// AltEntrypoint is the well-known alternate entrypoint location
	AltEntrypoint string
	// AltPrefix is the prefix used when AltEntrypoint links into our repository
	AltPrefix string
}

// Exports returns the layout as namespaced environment variables
func (l Layout) Exports() map[string]string {
	return map[string]string{
		EnvBrewFile:   l.BrewFile,
		EnvPrefix:     l.Prefix,
		EnvRepository: l.Repository,
		EnvLibrary:    l.Library,
	}
}

// ResolveLayout derives the installation layout from the entrypoint path.
// Relative entrypoints are resolved against the working directory.
func ResolveLayout(entrypoint string, opts LayoutOptions) (Layout, error) {
	logger := logging.GetLogger("paths.layout")

	absEntry, err := filepath.Abs(entrypoint)
	if err != nil {
		return Layout{}, errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve entrypoint %s", entrypoint)
	}

	entryDir, err := filepath.EvalSymlinks(filepath.Dir(absEntry))
	if err != nil {
		return Layout{}, errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve entrypoint directory %s", filepath.Dir(absEntry))
	}

	layout := Layout{BrewFile: filepath.Join(entryDir, filepath.Base(absEntry))}
	layout.Prefix = parentDir(entryDir)
	layout.Repository = layout.Prefix

	if repo, ok := repositoryFromLink(layout.BrewFile); ok {
		layout.Repository = repo
	}

	if opts.AltEntrypoint != "" && opts.AltPrefix != "" && layout.Prefix != opts.AltPrefix {
		if useAltPrefix(layout, opts) {
			logger.Debug().Str("prefix", opts.AltPrefix).Msg("Using alternate prefix")
			layout.Prefix = opts.AltPrefix
		}
	}

	layout.Library = filepath.Join(layout.Repository, libraryDirName)

	logger.Debug().
		Str("brewFile", layout.BrewFile).
		Str("prefix", layout.Prefix).
		Str("repository", layout.Repository).
		Msg("Resolved installation layout")

	return layout, nil
}

// repositoryFromLink returns the repository a symlinked entrypoint points
// into. ok is false when link is not a symlink or its target directory no
// longer exists.
func repositoryFromLink(link string) (string, bool) {
	info, err := os.Lstat(link)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return "", false
	}

	target, err := os.Readlink(link)
	if err != nil {
		return "", false
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(link), target)
	}

	targetDir, err := filepath.EvalSymlinks(filepath.Dir(target))
	if err != nil {
		logger := logging.GetLogger("paths.layout")
		logger.Warn().
			Str("link", link).
			Str("target", target).
			Err(err).
			Msg("Entrypoint symlink target directory is missing, using prefix as repository")
		return "", false
	}
	return parentDir(targetDir), true
}

func useAltPrefix(layout Layout, opts LayoutOptions) bool {
	cellar := filepath.Join(layout.Prefix, cellarDirName)
	if info, err := os.Lstat(cellar); err == nil && info.Mode()&os.ModeSymlink != 0 {
		return false
	}

	altRepo, ok := repositoryFromLink(opts.AltEntrypoint)
	if !ok {
		return false
	}
	return altRepo == layout.Repository
}

// parentDir mirrors ${dir%/*} with an empty result meaning "/".
func parentDir(dir string) string {
	parent := filepath.Dir(strings.TrimSuffix(dir, string(filepath.Separator)))
	if parent == "." || parent == "" {
		return string(filepath.Separator)
	}
	return parent
}
