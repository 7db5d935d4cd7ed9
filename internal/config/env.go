package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/thoreinstein/ado/internal/errors"
)

// Environment variable names read at the CLI boundary.
const (
	EnvConfigPath    = "ADO_CONFIG"
	EnvLogLevel      = "ADO_LOG_LEVEL"
	EnvXDGConfigHome = "XDG_CONFIG_HOME"
	EnvEditor        = "EDITOR"
	EnvVisual        = "VISUAL"
	EnvNoColor       = "NO_COLOR"
	EnvTerm          = "TERM"
)

// Env holds every environment value ado consumes.
type Env struct {
	ConfigPath    string `env:"ADO_CONFIG"`
	LogLevel      string `env:"ADO_LOG_LEVEL"`
	XDGConfigHome string `env:"XDG_CONFIG_HOME"`
	Editor        string `env:"EDITOR"`
	Visual        string `env:"VISUAL"`
	NoColor       string `env:"NO_COLOR"`
	Term          string `env:"TERM"`
}

// ParseEnv reads Env from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, errors.Wrap(err, "parsing environment")
	}
	return e, nil
}

// ParseEnvFrom reads Env from the given variables instead of the process environment.
func ParseEnvFrom(vars map[string]string) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return Env{}, errors.Wrap(err, "parsing environment")
	}
	return e, nil
}

// AppVars returns the ado-specific variables that are set, keyed by name.
func (e Env) AppVars() map[string]string {
	vars := map[string]string{}
	if e.ConfigPath != "" {
		vars[EnvConfigPath] = e.ConfigPath
	}
	if e.LogLevel != "" {
		vars[EnvLogLevel] = e.LogLevel
	}
	return vars
}
