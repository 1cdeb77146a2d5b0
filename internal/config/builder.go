package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Load resolves the configuration. path is the --config flag value and may
// be empty; overrides carries CLI flag values and may be nil.
func Load(path string, overrides *Config) (*Config, error) {
	return newConfigBuilder(env.ToMap(os.Environ())).
		withOverrides(overrides).
		withEnv().
		withFile(path).
		withDefaults().
		build()
}

// configBuilder collects partial configs in priority order.
// build merges them without override, so earlier entries win.
type configBuilder struct {
	environ map[string]string
	configs []*Config
	err     error
}

func newConfigBuilder(environ map[string]string) *configBuilder {
	return &configBuilder{
		environ: environ,
		configs: make([]*Config, 0, 4),
	}
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	cfg := new(Config)
	for _, c := range b.configs {
		if err := mergo.Merge(cfg, c); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	cfg.DataDir = expandHome(cfg.DataDir)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (b *configBuilder) withOverrides(o *Config) *configBuilder {
	if o != nil {
		b.configs = append(b.configs, o)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	err := env.ParseWithOptions(envCfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: b.environ,
	})
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error getting env configs: %w", err))
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withFile reads the TOML file. An explicitly named file must exist; the
// implicit <data_dir>/config.toml is optional.
func (b *configBuilder) withFile(path string) *configBuilder {
	explicit := true
	if path == "" {
		path = b.current().File
	}
	if path == "" {
		explicit = false
		dataDir := b.current().DataDir
		if dataDir == "" {
			def, err := DefaultDataDir()
			if err != nil {
				b.err = errors.Join(b.err, err)
				return b
			}
			dataDir = def
		}
		path = filepath.Join(expandHome(dataDir), ConfigFileName)
	}

	fileCfg, err := ReadFile(expandHome(path))
	switch {
	case err == nil:
		fileCfg.File = path
		b.configs = append(b.configs, fileCfg)
	case !explicit && errors.Is(err, os.ErrNotExist):
	default:
		b.err = errors.Join(b.err, err)
	}
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	def, err := Default()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, def)
	return b
}

// current merges what has been collected so far without validating it
func (b *configBuilder) current() *Config {
	cfg := new(Config)
	for _, c := range b.configs {
		_ = mergo.Merge(cfg, c)
	}
	return cfg
}

// ReadFile decodes a TOML config file
func ReadFile(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return &cfg, nil
}
