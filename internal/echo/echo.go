// Package echo builds the output lines for `ado echo`.
package echo

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/thoreinstein/ado/internal/errors"
)

var (
	// ErrConflictingCase is returned when both Upper and Lower are set.
	ErrConflictingCase = errors.New("cannot use --upper and --lower together")

	// ErrInvalidRepeat is returned when Repeat is below 1.
	ErrInvalidRepeat = errors.New("--repeat must be >= 1")
)

// Options controls how the message is transformed.
type Options struct {
	Upper  bool
	Lower  bool
	Repeat int
}

// Build joins args with single spaces, applies the case transform and
// returns the message Repeat times.
func Build(args []string, opts Options) ([]string, error) {
	if opts.Upper && opts.Lower {
		return nil, ErrConflictingCase
	}
	if opts.Repeat < 1 {
		return nil, errors.Wrapf(ErrInvalidRepeat, "got %d", opts.Repeat)
	}

	message := strings.Join(args, " ")
	switch {
	case opts.Upper:
		message = cases.Upper(language.Und).String(message)
	case opts.Lower:
		message = cases.Lower(language.Und).String(message)
	}

	values := make([]string, opts.Repeat)
	for i := range values {
		values[i] = message
	}
	return values, nil
}
