package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/ado/internal/errors"
)

// Format selects how a payload is rendered.
type Format string

const (
	// FormatText renders through the caller's TextRenderer.
	FormatText Format = "text"
	// FormatJSON renders indented JSON.
	FormatJSON Format = "json"
	// FormatYAML renders block-style YAML.
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned by ParseFormat for unknown format names.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formats lists the recognised formats in help-text order.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}

// ParseFormat validates a user-supplied format name. Empty means text.
func ParseFormat(raw string) (Format, error) {
	if raw == "" {
		return FormatText, nil
	}
	switch f := Format(strings.ToLower(raw)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "%q (valid: text, json, yaml)", raw)
	}
}

// TextRenderer produces the human-readable form of a payload.
type TextRenderer interface {
	RenderText() (string, error)
}

// TextFunc adapts a plain function to TextRenderer.
type TextFunc func() (string, error)

// RenderText calls f.
func (f TextFunc) RenderText() (string, error) {
	return f()
}

// Text returns a TextRenderer for a fixed string.
func Text(s string) TextRenderer {
	return TextFunc(func() (string, error) { return s, nil })
}

// SerializationError reports a payload the chosen format cannot represent.
type SerializationError struct {
	Format Format
	Err    error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialize %s: %v", e.Format, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// Render serializes payload for json and yaml. Every other format returns
// text's output verbatim. Render performs no I/O.
func Render(format Format, payload any, text TextRenderer) (string, error) {
	switch format {
	case FormatJSON:
		return renderJSON(payload)
	case FormatYAML:
		return renderYAML(payload)
	default:
		if text == nil {
			return "", nil
		}
		return text.RenderText()
	}
}

func renderJSON(payload any) (string, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", &SerializationError{Format: FormatJSON, Err: err}
	}
	return string(data), nil
}

func renderYAML(payload any) (out string, err error) {
	// yaml.v3 panics on funcs and channels instead of returning an error.
	defer func() {
		if r := recover(); r != nil {
			out = ""
			err = &SerializationError{Format: FormatYAML, Err: errors.Newf("%v", r)}
		}
	}()

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(payload); err != nil {
		return "", &SerializationError{Format: FormatYAML, Err: err}
	}
	if err := enc.Close(); err != nil {
		return "", &SerializationError{Format: FormatYAML, Err: err}
	}
	return buf.String(), nil
}

// Print renders payload and writes it to w, appending a newline when the
// output lacks one. Empty output writes nothing.
func Print(w io.Writer, format Format, payload any, text TextRenderer) error {
	out, err := Render(format, payload, text)
	if err != nil {
		return err
	}
	if out == "" {
		return nil
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if _, err := io.WriteString(w, out); err != nil {
		return errors.Wrap(err, "writing output")
	}
	return nil
}
