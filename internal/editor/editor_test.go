package editor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookPathFor(available ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestChoose(t *testing.T) {
	tests := []struct {
		name      string
		editor    string
		visual    string
		available []string
		want      string
	}{
		{name: "editor wins", editor: "nvim", visual: "code", want: "nvim"},
		{name: "visual when editor unset", visual: "code --wait", want: "code --wait"},
		{name: "blank editor treated as unset", editor: "  ", visual: "emacs", want: "emacs"},
		{name: "nano fallback", available: []string{"nano", "vi"}, want: "nano"},
		{name: "vi fallback", available: []string{"vi"}, want: "vi"},
		{name: "vi when nothing found", want: "vi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Choose(tt.editor, tt.visual, lookPathFor(tt.available...)))
		})
	}
}

func TestOpen(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the editor")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "fake-editor.sh")
	record := filepath.Join(dir, "args.txt")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho \"$@\" > "+record+"\n"), 0o755))

	target := filepath.Join(dir, "config.yaml")
	var out bytes.Buffer
	require.NoError(t, Open(context.Background(), script+" --wait", target, Stdio{Out: &out, Err: &out}))

	got, err := os.ReadFile(record)
	require.NoError(t, err)
	assert.Equal(t, "--wait "+target+"\n", string(got))
}

func TestOpen_Errors(t *testing.T) {
	err := Open(context.Background(), "   ", "x", Stdio{})
	assert.EqualError(t, err, "no editor configured")

	err = Open(context.Background(), "non-existent-editor-12345", "x", Stdio{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-existent-editor-12345")
}
