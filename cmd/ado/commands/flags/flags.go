// Package flags shares root-level flag values and the parsed environment
// with noun subpackages (meta, ...) without importing the root command.
package flags

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/ado/internal/config"
	"github.com/thoreinstein/ado/internal/errors"
	"github.com/thoreinstein/ado/internal/ui"
)

var (
	configFlag string
	env        config.Env
)

// GetConfigFlag returns the value of the root --config flag.
func GetConfigFlag() string {
	return configFlag
}

// SetConfigFlag records the --config value after flag parsing.
func SetConfigFlag(path string) {
	configFlag = path
}

// GetEnv returns the environment parsed by the root command.
func GetEnv() config.Env {
	return env
}

// SetEnv records the parsed environment.
func SetEnv(e config.Env) {
	env = e
}

// AddOutputFlag registers -o/--output on cmd, bound to p.
func AddOutputFlag(cmd *cobra.Command, p *string) {
	cmd.Flags().StringVarP(p, "output", "o", "text", "output format: text, json, yaml")
}

// ParseOutput validates an --output value, reporting bad input as a user error.
func ParseOutput(raw string) (ui.Format, error) {
	format, err := ui.ParseFormat(raw)
	if err != nil {
		return "", errors.NewUserError(err, "Use --output text, json, or yaml")
	}
	return format, nil
}
