package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/deploygen/deploygen/pkg/errors"
)

// Config file names probed in the working directory, in order.
var configFileNames = []string{".deploygen.toml", "deploygen.toml"}

// Load builds the effective configuration for a run rooted at dir
// (normally the current working directory).
//
// Layering, lowest to highest precedence:
//  1. built-in defaults, then the embedded defaults file
//  2. .deploygen.toml / deploygen.toml in dir
//  3. DEPLOYGEN_* environment variables (DEPLOYGEN_MARKER_SUFFIX=".tpl",
//     DEPLOYGEN_COMPONENTS="lambda,api")
func Load(dir string) (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults, overlaid by the embedded defaults file
	defaults := Default()
	err := k.Load(confmap.Provider(map[string]interface{}{
		"components":    defaults.Components,
		"marker_suffix": defaults.MarkerSuffix,
	}, "."), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load built-in defaults")
	}
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	// 2. Config file, if present
	for _, filename := range configFileNames {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
			}
			break
		}
	}

	// 3. Environment overrides
	err = k.Load(env.Provider("DEPLOYGEN_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "DEPLOYGEN_")), "__", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if cfg.MarkerSuffix != "" && !strings.HasPrefix(cfg.MarkerSuffix, ".") {
		cfg.MarkerSuffix = "." + cfg.MarkerSuffix
	}

	return &cfg, nil
}
