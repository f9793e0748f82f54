package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/clio/pkg/errors"
	"github.com/arthur-debert/clio/pkg/logging"
)

// EnvPrefix starts the environment variables read as configuration, as in
// CLIO_MODE or CLIO_TEXT_COLOR.
const EnvPrefix = "CLIO_"

// fileNames are tried in order in the user config directory.
var fileNames = []string{"config.toml", "config.yaml", "config.yml"}

// LoadOptions select the user file and carry flag values.
type LoadOptions struct {
	// Path is an explicit config file. It must exist. When empty the
	// first of DefaultPaths that exists is used, if any.
	Path string
	// Flags override every other layer. Keys are config keys such as
	// "mode" or "text_color".
	Flags map[string]interface{}
}

// DefaultPaths are the candidate user files under $XDG_CONFIG_HOME/clio.
func DefaultPaths() []string {
	paths := make([]string, len(fileNames))
	for i, name := range fileNames {
		paths[i] = filepath.Join(xdg.ConfigHome, "clio", name)
	}
	return paths
}

// Path returns the user file Load would read and whether it exists. When
// none exists it is the TOML candidate, where Init writes.
func Path(explicit string) (string, bool) {
	if explicit != "" {
		_, err := os.Stat(explicit)
		return explicit, err == nil
	}
	candidates := DefaultPaths()
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return candidates[0], false
}

// Load merges the layers and returns the validated configuration.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User file
	path, exists := Path(opts.Path)
	if opts.Path != "" && !exists {
		return nil, errors.Newf(errors.ErrNotFound, "config file %s does not exist", opts.Path).
			WithDetail("path", opts.Path)
	}
	if exists {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("loaded config file")
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Flags
	if len(opts.Flags) > 0 {
		if err := k.Load(confmap.Provider(opts.Flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flags")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("mode", cfg.Mode).
		Int("width", cfg.Width).
		Int("markup", len(cfg.Markup)).
		Msg("configuration loaded")
	return &cfg, nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
