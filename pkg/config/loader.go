package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/redate/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "REDATE_"

	// RootConfigName is looked up in the directory being processed
	RootConfigName = ".redate.toml"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadOptions selects the configuration sources
type LoadOptions struct {
	// Root is the directory being processed, searched for .redate.toml
	Root string
	// ConfigFile is an explicit file given by the user; it must exist
	ConfigFile string
	// ConfigDir overrides $XDG_CONFIG_HOME/redate
	ConfigDir string
	// EnvFile is a dotenv file read before the environment, ".env" when empty
	EnvFile string
	// Overrides are flat koanf keys set from command-line flags
	Overrides map[string]interface{}
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/redate
func DefaultConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "redate")
}

// Default returns the embedded defaults
func Default() *Config {
	cfg, err := Load(LoadOptions{ConfigDir: "-", EnvFile: "-"})
	if err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	return cfg
}

// Load merges every configuration layer and validates the result
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config
	configDir := opts.ConfigDir
	if configDir == "" {
		configDir = DefaultConfigDir()
	}
	if configDir != "-" {
		for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
			path := filepath.Join(configDir, name)
			if _, err := os.Stat(path); err == nil {
				if err := loadFile(k, path); err != nil {
					return nil, err
				}
				break
			}
		}
	}

	// 3. Root config
	if opts.Root != "" {
		path := filepath.Join(opts.Root, RootConfigName)
		if _, err := os.Stat(path); err == nil {
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
		}
	}

	// 4. Explicit config file
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %q not found", opts.ConfigFile)
		}
		if err := loadFile(k, opts.ConfigFile); err != nil {
			return nil, err
		}
	}

	// 5. Dotenv file, then the environment
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if envFile != "-" {
		if _, err := os.Stat(envFile); err == nil {
			vars, err := godotenv.Read(envFile)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", envFile)
			}
			if err := k.Load(confmap.Provider(envMap(vars), "."), nil); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load %s", envFile)
			}
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 6. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply flags")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser = toml.Parser()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
	}
	return nil
}

// envKey maps REDATE_SCAN_SHORTCUT_EXTENSION to scan.shortcut_extension.
// Only the first underscore separates section from key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func envMap(vars map[string]string) map[string]interface{} {
	out := make(map[string]interface{})
	for name, value := range vars {
		if !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		out[envKey(name)] = value
	}
	return out
}
