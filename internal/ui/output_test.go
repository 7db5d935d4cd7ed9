package ui

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/ado/internal/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		raw     string
		want    Format
		wantErr bool
	}{
		{raw: "", want: FormatText},
		{raw: "text", want: FormatText},
		{raw: "json", want: FormatJSON},
		{raw: "YAML", want: FormatYAML},
		{raw: "toml", wantErr: true},
		{raw: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseFormat(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnsupportedFormat))
				assert.Contains(t, err.Error(), tt.raw)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_JSONPreservesInsertionOrder(t *testing.T) {
	payload := NewOrderedMap("b", 2, "a", 1)

	got, err := Render(FormatJSON, payload, Text("unused"))
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"b\": 2,\n  \"a\": 1\n}", got)

	var back map[string]int
	require.NoError(t, json.Unmarshal([]byte(got), &back))
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, back)
}

func TestRender_JSONStructFieldOrder(t *testing.T) {
	payload := struct {
		Zeta  string `json:"zeta"`
		Alpha string `json:"alpha"`
	}{Zeta: "z", Alpha: "a"}

	got, err := Render(FormatJSON, payload, nil)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"zeta\": \"z\",\n  \"alpha\": \"a\"\n}", got)
}

func TestRender_YAMLSequence(t *testing.T) {
	got, err := Render(FormatYAML, []string{"alpha", "beta"}, Text("unused"))
	require.NoError(t, err)

	assert.Equal(t, "- alpha\n- beta\n", got)

	var back []string
	require.NoError(t, yaml.Unmarshal([]byte(got), &back))
	assert.Equal(t, []string{"alpha", "beta"}, back)
}

func TestRender_YAMLQuotesAmbiguousScalars(t *testing.T) {
	got, err := Render(FormatYAML, []string{"x", "y"}, nil)
	require.NoError(t, err)

	var back []string
	require.NoError(t, yaml.Unmarshal([]byte(got), &back))
	assert.Equal(t, []string{"x", "y"}, back)
}

func TestRender_YAMLPreservesInsertionOrder(t *testing.T) {
	payload := NewOrderedMap("b", 2, "a", NewOrderedMap("y", "1", "x", "2"))

	got, err := Render(FormatYAML, payload, nil)
	require.NoError(t, err)
	assert.Equal(t, "b: 2\na:\n  y: \"1\"\n  x: \"2\"\n", got)
}

func TestRender_TextIsVerbatim(t *testing.T) {
	for _, format := range []Format{FormatText, "", "anything-else"} {
		t.Run(string(format), func(t *testing.T) {
			got, err := Render(format, map[string]int{"a": 1}, Text("  exact output\n\n"))
			require.NoError(t, err)
			assert.Equal(t, "  exact output\n\n", got)
		})
	}
}

func TestRender_TextRendererError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Render(FormatText, nil, TextFunc(func() (string, error) { return "", boom }))
	assert.ErrorIs(t, err, boom)
}

func TestRender_SerializationError(t *testing.T) {
	payload := map[string]any{"fn": func() {}}

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			_, err := Render(format, payload, nil)
			require.Error(t, err)

			var serr *SerializationError
			require.True(t, errors.As(err, &serr))
			assert.Equal(t, format, serr.Format)
		})
	}
}

func TestRender_SerializationErrorInsideOrderedMap(t *testing.T) {
	payload := NewOrderedMap("ch", make(chan int))

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			_, err := Render(format, payload, nil)
			var serr *SerializationError
			assert.True(t, errors.As(err, &serr))
		})
	}
}

func TestPrint(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		payload any
		text    string
		want    string
	}{
		{name: "text gets newline", format: FormatText, text: "hello", want: "hello\n"},
		{name: "text keeps single newline", format: FormatText, text: "hello\n", want: "hello\n"},
		{name: "text keeps blank trailing lines", format: FormatText, text: "hello\n\n", want: "hello\n\n"},
		{name: "empty text writes nothing", format: FormatText, text: "", want: ""},
		{name: "json gets newline", format: FormatJSON, payload: []int{1}, want: "[\n  1\n]\n"},
		{name: "yaml ends with one newline", format: FormatYAML, payload: []string{"x"}, want: "- x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Print(&buf, tt.format, tt.payload, Text(tt.text)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
