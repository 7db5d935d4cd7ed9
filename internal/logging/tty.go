package logging

import (
	"io"

	"golang.org/x/term"
)

// Terminal carries the colour-related environment, parsed once at the CLI
// boundary so handlers never read the process environment.
type Terminal struct {
	// NoColor disables colour when non-empty (https://no-color.org).
	NoColor string
	// Term is the TERM value. "dumb" disables colour.
	Term string
}

// Color reports whether output written to w should be colourised.
func (t Terminal) Color(w io.Writer) bool {
	return t.allowsColor() && IsTTY(w)
}

func (t Terminal) allowsColor() bool {
	return t.NoColor == "" && t.Term != "dumb"
}

// IsTTY reports whether w is a terminal. Any writer exposing Fd is checked,
// which covers *os.File.
func IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
