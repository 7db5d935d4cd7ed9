package meta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/ado/internal/config"
)

func TestCollectEnvInfo_EnvPath(t *testing.T) {
	info := CollectEnvInfo(EnvInput{
		Env:      config.Env{ConfigPath: "/tmp/env-config.yaml"},
		HomeDir:  "/home/u",
		CacheDir: "/home/u/.cache/ado",
	})

	assert.Equal(t, "/tmp/env-config.yaml", info.ConfigPath)
	assert.Equal(t, []string{
		"/tmp/env-config.yaml",
		filepath.Join("/home/u", ".config", "ado", "config.yaml"),
		filepath.Join("/home/u", ".ado", "config.yaml"),
	}, info.ConfigSources)
	assert.Equal(t, "/home/u", info.HomeDir)
	assert.Equal(t, "/home/u/.cache/ado", info.CacheDir)
	assert.Equal(t, map[string]string{"ADO_CONFIG": "/tmp/env-config.yaml"}, info.Env)
}

func TestCollectEnvInfo_ExplicitBeatsEnv(t *testing.T) {
	info := CollectEnvInfo(EnvInput{
		ExplicitConfig: "/flag.yaml",
		Env:            config.Env{ConfigPath: "/env.yaml"},
		HomeDir:        "/home/u",
	})

	assert.Equal(t, "/flag.yaml", info.ConfigPath)
	assert.Equal(t, "/flag.yaml", info.ConfigSources[0])
}

func TestCollectEnvInfo_DefaultsOnDisk(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, ".ado", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0o600))

	info := CollectEnvInfo(EnvInput{HomeDir: home, Env: config.Env{XDGConfigHome: t.TempDir()}})

	assert.Equal(t, path, info.ConfigPath)
	assert.Len(t, info.ConfigSources, 2)
	assert.Empty(t, info.Env)
}

func TestCollectEnvInfo_MasksSecrets(t *testing.T) {
	info := CollectEnvInfo(EnvInput{
		Env:     config.Env{ConfigPath: "ghp_abcdefghijklmnop", LogLevel: "debug"},
		HomeDir: "/home/u",
	})

	assert.Equal(t, "****mnop", info.Env["ADO_CONFIG"])
	assert.Equal(t, "debug", info.Env["ADO_LOG_LEVEL"])
}

func TestEnvInfo_RenderText(t *testing.T) {
	text, err := EnvInfo{
		ConfigSources: []string{"/a", "/b"},
		HomeDir:       "/home/u",
		CacheDir:      "/cache",
		Env:           map[string]string{"ADO_LOG_LEVEL": "debug", "ADO_CONFIG": "/a"},
	}.RenderText()
	require.NoError(t, err)

	assert.Equal(t, `ConfigPath: (none resolved)
ConfigSources:
  - /a
  - /b
HomeDir: /home/u
CacheDir: /cache
EnvVariables:
  ADO_CONFIG=/a
  ADO_LOG_LEVEL=debug
`, text)
}

func TestEnvInfo_RenderText_Empty(t *testing.T) {
	text, err := EnvInfo{ConfigPath: "/c.yaml"}.RenderText()
	require.NoError(t, err)

	assert.Contains(t, text, "ConfigPath: /c.yaml\n")
	assert.Contains(t, text, "ConfigSources:\n  (none)\n")
	assert.Contains(t, text, "EnvVariables:\n  (none set)\n")
}
