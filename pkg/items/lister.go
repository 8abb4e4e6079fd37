package items

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/brewboot/pkg/config"
	"github.com/arthur-debert/brewboot/pkg/filesystem"
	"github.com/arthur-debert/brewboot/pkg/logging"
	"github.com/spf13/afero"
)

const apiCacheDir = "api"

// Tap is a package registry cloned under <library>/Taps
type Tap struct {
	// Name is owner/repo
	Name string
	Path string
}

// IsCore reports whether t is coreTap. Tap names are case-insensitive.
func (t *Tap) IsCore(coreTap string) bool {
	return strings.EqualFold(t.Name, coreTap)
}

// Definition is one package definition file found in a tap
type Definition struct {
	Tap *Tap
	// RelPath is slash-separated and relative to the tap directory
	RelPath string
}

// ShortName is the file name without directory or extension
func (d Definition) ShortName() string {
	return strings.TrimSuffix(filepath.Base(d.RelPath), filepath.Ext(d.RelPath))
}

// Name is the listed name: bare for coreTap, tap-qualified otherwise
func (d Definition) Name(coreTap string) string {
	if d.Tap.IsCore(coreTap) {
		return d.ShortName()
	}
	return d.Tap.Name + "/" + d.ShortName()
}

// Lister enumerates package names
type Lister struct {
	fs       afero.Fs
	settings Settings
	taps     config.TapRules
}

// NewLister creates a lister reading from fs
func NewLister(fs afero.Fs, settings Settings, taps config.TapRules) *Lister {
	return &Lister{fs: fs, settings: settings, taps: taps}
}

// List returns the merged, sorted names for kind. It never fails: missing
// taps, caches and unreadable directories contribute nothing.
func (l *Lister) List(kind Kind) []string {
	logger := logging.GetLogger("items.list").With().Str("kind", kind.Name).Logger()
	done := logging.LogOperationStart(logger, "list")
	defer done()

	if l.settings.UseAPI() {
		if cached, ok := l.readCache(kind); ok {
			logger.Debug().Int("cached", len(cached)).Msg("Using cached name index")
			return Merge(cached, l.names(kind, func(t *Tap) bool { return !t.IsCore(kind.CoreTap) }))
		}
	}
	return Merge(l.names(kind, func(*Tap) bool { return true }))
}

func (l *Lister) names(kind Kind, keep func(*Tap) bool) []string {
	var names []string
	for def := range l.Definitions(kind) {
		if keep(def.Tap) {
			names = append(names, def.Name(kind.CoreTap))
		}
	}
	return names
}

// CachePath returns the name index file for kind
func (l *Lister) CachePath(kind Kind) string {
	return filepath.Join(l.settings.Cache, apiCacheDir, kind.CacheFile)
}

func (l *Lister) readCache(kind Kind) ([]string, bool) {
	lines, err := filesystem.ReadLines(l.fs, l.CachePath(kind))
	if err != nil {
		return nil, false
	}
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names, true
}

// Taps returns the taps found under <library>/Taps in directory order.
// Directories that are not named <prefix><repo> for a known prefix are
// ignored.
func (l *Lister) Taps() []*Tap {
	logger := logging.GetLogger("items.taps")
	root := filepath.Join(l.settings.Library, l.taps.Dir)

	owners, err := afero.ReadDir(l.fs, root)
	if err != nil {
		logger.Debug().Str("path", root).Err(err).Msg("No taps directory")
		return nil
	}

	var taps []*Tap
	for _, owner := range owners {
		if !owner.IsDir() {
			continue
		}
		ownerPath := filepath.Join(root, owner.Name())
		repos, err := afero.ReadDir(l.fs, ownerPath)
		if err != nil {
			logger.Debug().Str("path", ownerPath).Err(err).Msg("Skipping unreadable tap owner")
			continue
		}
		for _, repo := range repos {
			if !repo.IsDir() {
				continue
			}
			name, ok := l.repoName(repo.Name())
			if !ok {
				continue
			}
			taps = append(taps, &Tap{
				Name: owner.Name() + "/" + name,
				Path: filepath.Join(ownerPath, repo.Name()),
			})
		}
	}
	return taps
}

func (l *Lister) repoName(dir string) (string, bool) {
	for _, prefix := range l.taps.RepoPrefixes {
		if name, ok := strings.CutPrefix(dir, prefix); ok && name != "" {
			return name, true
		}
	}
	return "", false
}

// Definitions yields the definition files of kind across all taps. The
// sequence is lazy and can be ranged over again to re-walk the taps.
func (l *Lister) Definitions(kind Kind) iter.Seq[Definition] {
	match := kind.Matcher()
	return func(yield func(Definition) bool) {
		for _, tap := range l.Taps() {
			if !l.walkTap(tap, match, yield) {
				return
			}
		}
	}
}

// walkTap reports false when yield asked to stop.
func (l *Lister) walkTap(tap *Tap, match Predicate, yield func(Definition) bool) bool {
	logger := logging.GetLogger("items.scan")
	stopped := false

	_ = afero.Walk(l.fs, tap.Path, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			logger.Debug().Str("path", path).Err(err).Msg("Skipping unreadable path")
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			if path != tap.Path && l.pruned(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(tap.Path, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if !match(rel) {
			return nil
		}
		if !yield(Definition{Tap: tap, RelPath: rel}) {
			stopped = true
			return filepath.SkipAll
		}
		return nil
	})

	return !stopped
}

func (l *Lister) pruned(dir string) bool {
	for _, name := range l.taps.PrunedDirs {
		if dir == name {
			return true
		}
	}
	return false
}
