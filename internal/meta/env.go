package meta

import (
	"fmt"
	"slices"
	"strings"

	"github.com/thoreinstein/ado/internal/config"
	"github.com/thoreinstein/ado/internal/redact"
)

// EnvInput carries everything CollectEnvInfo needs. The CLI fills it from
// flags and the parsed environment.
type EnvInput struct {
	// ExplicitConfig is the --config flag value.
	ExplicitConfig string
	// Env is the environment parsed at the CLI boundary.
	Env config.Env
	// HomeDir is the user's home directory.
	HomeDir string
	// CacheDir is ado's cache directory.
	CacheDir string
}

// EnvInfo describes where ado looks for configuration.
type EnvInfo struct {
	ConfigPath    string            `json:"config_path" yaml:"config_path"`
	ConfigSources []string          `json:"config_sources" yaml:"config_sources"`
	HomeDir       string            `json:"home_dir" yaml:"home_dir"`
	CacheDir      string            `json:"cache_dir" yaml:"cache_dir"`
	Env           map[string]string `json:"env" yaml:"env"`
}

// CollectEnvInfo resolves the config path and reports the ado variables
// that are set, with secret-looking values masked.
func CollectEnvInfo(in EnvInput) EnvInfo {
	res := config.Resolve(in.ExplicitConfig, in.Env.ConfigPath, in.Env.XDGConfigHome, in.HomeDir)
	return EnvInfo{
		ConfigPath:    res.Path,
		ConfigSources: res.SearchOrder,
		HomeDir:       in.HomeDir,
		CacheDir:      in.CacheDir,
		Env:           redact.Env(in.Env.AppVars()),
	}
}

// RenderText implements ui.TextRenderer.
func (e EnvInfo) RenderText() (string, error) {
	var sb strings.Builder

	configPath := e.ConfigPath
	if configPath == "" {
		configPath = "(none resolved)"
	}
	fmt.Fprintf(&sb, "ConfigPath: %s\n", configPath)

	sb.WriteString("ConfigSources:\n")
	if len(e.ConfigSources) == 0 {
		sb.WriteString("  (none)\n")
	}
	for _, src := range e.ConfigSources {
		fmt.Fprintf(&sb, "  - %s\n", src)
	}

	fmt.Fprintf(&sb, "HomeDir: %s\n", e.HomeDir)
	fmt.Fprintf(&sb, "CacheDir: %s\n", e.CacheDir)

	sb.WriteString("EnvVariables:\n")
	if len(e.Env) == 0 {
		sb.WriteString("  (none set)\n")
	}
	keys := make([]string, 0, len(e.Env))
	for k := range e.Env {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, "  %s=%s\n", k, e.Env[k])
	}

	return sb.String(), nil
}
