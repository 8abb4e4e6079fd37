package items

import (
	"strings"

	"github.com/arthur-debert/brewboot/pkg/environ"
	"github.com/arthur-debert/brewboot/pkg/errors"
	"github.com/arthur-debert/brewboot/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

// Settings are the lister inputs taken from the resolved environment
type Settings struct {
	Library          string `koanf:"HOMEBREW_LIBRARY"`
	Cache            string `koanf:"HOMEBREW_CACHE"`
	NoInstallFromAPI string `koanf:"HOMEBREW_NO_INSTALL_FROM_API"`
}

// UseAPI reports whether the cached name index may be consulted
func (s Settings) UseAPI() bool {
	return s.NoInstallFromAPI == ""
}

// SettingsFromEnv decodes the lister settings from env. The cache
// directory falls back to the platform default for goos.
func SettingsFromEnv(env environ.Env, namespace, goos string) (Settings, error) {
	namespaced := make(map[string]interface{})
	for name, value := range env.Map() {
		if strings.HasPrefix(name, namespace) {
			namespaced[name] = value
		}
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(namespaced, ""), nil); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load lister settings")
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to decode lister settings")
	}

	if s.Library == "" {
		return Settings{}, errors.Newf(errors.ErrInvalidInput, "%s is not set", paths.EnvLibrary)
	}
	if s.Cache == "" {
		s.Cache = paths.CacheDir(env, goos)
	}
	return s, nil
}
