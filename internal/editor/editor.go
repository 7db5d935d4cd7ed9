// Package editor launches the user's text editor on a file.
package editor

import (
	"context"
	"io"
	"os/exec"
	"strings"

	"github.com/thoreinstein/ado/internal/errors"
)

// fallbacks are tried in order when neither EDITOR nor VISUAL is set.
var fallbacks = []string{"nano", "vi"}

// Choose returns the editor command line: editor, else visual, else the first
// fallback found by lookPath. Blank values count as unset.
func Choose(editor, visual string, lookPath func(string) (string, error)) string {
	for _, c := range []string{editor, visual} {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	for _, f := range fallbacks {
		if _, err := lookPath(f); err == nil {
			return f
		}
	}
	return fallbacks[len(fallbacks)-1]
}

// Stdio is the terminal the editor runs on.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Open runs command with path appended and waits for it to exit. command may
// carry its own arguments, e.g. "code --wait".
func Open(ctx context.Context, command, path string, stdio Stdio) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return errors.New("no editor configured")
	}

	args := append(fields[1:], path)
	cmd := exec.CommandContext(ctx, fields[0], args...)
	cmd.Stdin = stdio.In
	cmd.Stdout = stdio.Out
	cmd.Stderr = stdio.Err

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %q", fields[0])
	}
	return nil
}
