package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/brewboot/pkg/environ"
	"github.com/arthur-debert/brewboot/pkg/errors"
	"github.com/arthur-debert/brewboot/pkg/filesystem"
	"github.com/arthur-debert/brewboot/pkg/logging"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
)

// Layer names
const (
	LayerSystem = "system"
	LayerPrefix = "prefix"
	LayerUser   = "user"
)

// Layer is one brew.env file in load order
type Layer struct {
	Name string
	Path string
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// EnvFileLayers returns the brew.env layers in load order: system, prefix,
// user. When the priority toggle is set in env the system layer moves to
// the end so it overrides the others.
func (r *Rules) EnvFileLayers(env environ.Env, prefix string) []Layer {
	system := Layer{Name: LayerSystem, Path: r.Files.System}
	prefixLayer := Layer{Name: LayerPrefix, Path: filepath.Join(prefix, r.Files.PrefixDir, r.Files.Name)}
	user := Layer{Name: LayerUser, Path: r.userEnvFile(env)}

	if r.Files.PriorityToggle != "" && env.IsSet(r.Files.PriorityToggle) {
		return []Layer{prefixLayer, user, system}
	}
	return []Layer{system, prefixLayer, user}
}

// LoadEnvLayers loads the brew.env layers for env and prefix. The priority
// toggle may also come from one of the files; in that case the system
// layer is loaded again on top. Errors are those of LoadEnvFiles.
func (r *Rules) LoadEnvLayers(fs afero.Fs, env environ.Env, prefix string) (map[string]string, error) {
	values, err := LoadEnvFiles(fs, r.EnvFileLayers(env, prefix), r.Namespace)
	if values == nil || r.Files.PriorityToggle == "" || env.IsSet(r.Files.PriorityToggle) {
		return values, err
	}
	if values[r.Files.PriorityToggle] == "" {
		return values, err
	}

	logger := logging.GetLogger("config.envfile")
	logger.Debug().Str("path", r.Files.System).Msg("Reloading system env file on top")
	// line errors of the system file were already reported above
	system, _ := LoadEnvFiles(fs, []Layer{{Name: LayerSystem, Path: r.Files.System}}, r.Namespace)
	for name, value := range system {
		values[name] = value
	}
	return values, err
}

// userEnvFile honours XDG_CONFIG_HOME only when it is explicitly set;
// otherwise the dot directory in $HOME is used.
func (r *Rules) userEnvFile(env environ.Env) string {
	if xdgConfig := env.Get("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, r.Files.XDGDir, r.Files.Name)
	}
	return filepath.Join(env.Get("HOME"), r.Files.HomeDir, r.Files.Name)
}

// LoadEnvFiles reads layers in order and returns the merged namespaced
// values, later layers overriding earlier ones. Missing or unreadable
// files are skipped. Malformed lines are skipped too and reported through
// the returned error, which aggregates one CONFIG_LINE error per line; the
// values map is valid even when the error is non-nil.
func LoadEnvFiles(fs afero.Fs, layers []Layer, namespace string) (map[string]string, error) {
	logger := logging.GetLogger("config.envfile")
	k := koanf.New(".")
	var result *multierror.Error

	for _, layer := range layers {
		lines, err := filesystem.ReadLines(fs, layer.Path)
		if err != nil {
			logger.Debug().Str("layer", layer.Name).Str("path", layer.Path).Err(err).Msg("Skipping env file")
			continue
		}

		values := make(map[string]interface{})
		for i, line := range lines {
			name, value, ok, err := parseEnvLine(line, namespace)
			if err != nil {
				lineErr := errors.Wrapf(err, errors.ErrConfigLine, "%s:%d", layer.Path, i+1).
					WithDetail("layer", layer.Name)
				logger.Debug().Err(lineErr).Msg("Failed to export env file line")
				result = multierror.Append(result, lineErr)
				continue
			}
			if ok {
				values[name] = value
			}
		}

		if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load %s layer", layer.Name)
		}
		logger.Debug().Str("layer", layer.Name).Str("path", layer.Path).Int("vars", len(values)).Msg("Loaded env file")
	}

	merged := make(map[string]string, len(k.Keys()))
	for _, key := range k.Keys() {
		merged[key] = k.String(key)
	}
	return merged, result.ErrorOrNil()
}

// parseEnvLine parses one brew.env line. ok is false for lines that are
// outside the namespace (comments, blank lines, other variables).
func parseEnvLine(line, namespace string) (name, value string, ok bool, err error) {
	line = strings.TrimSpace(line)
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	if !strings.HasPrefix(line, namespace) {
		return "", "", false, nil
	}

	rawName, rawValue, hasEquals := strings.Cut(line, "=")
	if !hasEquals {
		return "", "", false, fmt.Errorf("%s: missing '='", line)
	}
	rawName = strings.TrimSpace(rawName)
	if !identifier.MatchString(rawName) {
		return "", "", false, fmt.Errorf("%q: not a valid identifier", rawName)
	}

	// godotenv expands $VAR; such values are kept as written
	if strings.Contains(rawValue, "$") {
		return rawName, unquote(strings.TrimSpace(rawValue)), true, nil
	}

	parsed, err := godotenv.Unmarshal(line)
	if err != nil {
		return "", "", false, fmt.Errorf("%s: %w", rawName, err)
	}
	value, found := parsed[rawName]
	if !found {
		return "", "", false, fmt.Errorf("%s: could not parse value", rawName)
	}
	return rawName, value, true, nil
}

// unquote strips one pair of matching outer quotes
func unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}

// LineErrors unpacks the per-line errors aggregated by LoadEnvFiles
func LineErrors(err error) []*errors.Error {
	if err == nil {
		return nil
	}
	var lineErrs []*errors.Error
	merr, ok := err.(*multierror.Error)
	if !ok {
		merr = &multierror.Error{Errors: []error{err}}
	}
	for _, e := range merr.Errors {
		if lineErr, ok := e.(*errors.Error); ok {
			lineErrs = append(lineErrs, lineErr)
		}
	}
	return lineErrs
}
