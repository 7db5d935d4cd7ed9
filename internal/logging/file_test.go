package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ado.log")

	h, err := OpenFile(path, slog.LevelInfo)
	require.NoError(t, err)

	logger := slog.New(h)
	logger.Debug("filtered")
	logger.Info("saved", "password", "hunter22")
	require.NoError(t, h.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"saved"`)
	assert.Contains(t, string(data), `"password":"****er22"`)
	assert.NotContains(t, string(data), "filtered")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestOpenFile_WriteAfterClose(t *testing.T) {
	h, err := OpenFile(filepath.Join(t.TempDir(), "ado.log"), slog.LevelInfo)
	require.NoError(t, err)
	require.NoError(t, h.Close())

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "late", 0)
	assert.Error(t, h.Handle(context.Background(), r))
}

func TestOpenFile_BadPath(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "missing", "ado.log"), slog.LevelInfo)
	assert.ErrorContains(t, err, "opening log file")
}
