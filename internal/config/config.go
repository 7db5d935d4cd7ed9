package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/ado/internal/errors"
)

// CurrentVersion is the only supported config schema version.
const CurrentVersion = 1

// Config represents the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version" json:"version" yaml:"version"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Version: CurrentVersion}
}

// newViper returns a Viper instance with ado's defaults and ADO_ env binding.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("ADO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("version", CurrentVersion)
	return v
}

// Load reads the configuration at path. An empty path yields the defaults
// (plus any ADO_ overrides). A missing explicit file is an error.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if cfg.Version != CurrentVersion {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "unsupported config version: %d (expected: %d)", cfg.Version, CurrentVersion)
	}

	return &cfg, nil
}
