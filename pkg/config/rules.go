package config

import (
	"fmt"
	"sync"

	"github.com/arthur-debert/brewboot/pkg/environ"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/v2"
)

// Rules holds the bootstrap's rule tables
type Rules struct {
	Namespace   string           `koanf:"namespace"`
	Filter      FilterRules      `koanf:"filter"`
	Promote     PromoteRules     `koanf:"promote"`
	Files       FileRules        `koanf:"files"`
	Interpreter InterpreterRules `koanf:"interpreter"`
	Taps        TapRules         `koanf:"taps"`
}

// FilterRules decide which variables reach the core
type FilterRules struct {
	AllowList       []string `koanf:"allow_list"`
	CIIndicators    []string `koanf:"ci_indicators"`
	CIPrefix        string   `koanf:"ci_prefix"`
	SecretFragments []string `koanf:"secret_fragments"`
}

// PromoteRules list the bare variables copied into the namespace
type PromoteRules struct {
	PassThrough []string `koanf:"pass_through"`
	ToolOwned   []string `koanf:"tool_owned"`
}

// FileRules locate the brew.env layers
type FileRules struct {
	Name           string `koanf:"name"`
	System         string `koanf:"system"`
	PrefixDir      string `koanf:"prefix_dir"`
	XDGDir         string `koanf:"xdg_dir"`
	HomeDir        string `koanf:"home_dir"`
	PriorityToggle string `koanf:"priority_toggle"`
}

// InterpreterRules describe how the core is started
type InterpreterRules struct {
	Shell         string   `koanf:"shell"`
	Flags         []string `koanf:"flags"`
	CoreScript    string   `koanf:"core_script"`
	AltEntrypoint string   `koanf:"alt_entrypoint"`
	AltPrefix     string   `koanf:"alt_prefix"`
}

// TapRules describe the on-disk tap layout
type TapRules struct {
	Dir          string   `koanf:"dir"`
	RepoPrefixes []string `koanf:"repo_prefixes"`
	PrunedDirs   []string `koanf:"pruned_dirs"`
}

var (
	defaultOnce sync.Once
	defaultVal  *Rules
	defaultErr  error
)

// LoadRules parses the embedded defaults
func LoadRules() (*Rules, error) {
	return parseRules(defaultRules)
}

// Default returns the embedded rules, parsed once. The defaults are
// compiled into the binary, so a parse failure is a programming error.
func Default() *Rules {
	defaultOnce.Do(func() {
		defaultVal, defaultErr = LoadRules()
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("embedded defaults are invalid: %v", defaultErr))
	}
	return defaultVal
}

func parseRules(data []byte) (*Rules, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: data}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}

	var rules Rules
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &rules,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &rules, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rules: %w", err)
	}

	if rules.Namespace == "" {
		return nil, fmt.Errorf("rules: namespace must not be empty")
	}
	return &rules, nil
}

// FilterSpec returns the environment filter described by r
func (r *Rules) FilterSpec() environ.FilterSpec {
	return environ.FilterSpec{
		AllowList:       r.Filter.AllowList,
		Prefix:          r.Namespace,
		CIIndicators:    r.Filter.CIIndicators,
		CIPrefix:        r.Filter.CIPrefix,
		SecretFragments: r.Filter.SecretFragments,
	}
}

// PromotionSpec returns the promotion rules described by r
func (r *Rules) PromotionSpec() environ.PromotionSpec {
	return environ.PromotionSpec{
		Prefix:      r.Namespace,
		PassThrough: r.Promote.PassThrough,
		ToolOwned:   r.Promote.ToolOwned,
	}
}
