package echo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/ado/internal/errors"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		args []string
		opts Options
		want []string
	}{
		{name: "joins args", args: []string{"hello", "world"}, opts: Options{Repeat: 1}, want: []string{"hello world"}},
		{name: "upper", args: []string{"Hello"}, opts: Options{Upper: true, Repeat: 1}, want: []string{"HELLO"}},
		{name: "lower", args: []string{"HeLLo"}, opts: Options{Lower: true, Repeat: 1}, want: []string{"hello"}},
		{name: "unicode upper", args: []string{"café", "ñandú"}, opts: Options{Upper: true, Repeat: 1}, want: []string{"CAFÉ ÑANDÚ"}},
		{name: "repeat", args: []string{"hi"}, opts: Options{Repeat: 3}, want: []string{"hi", "hi", "hi"}},
		{name: "empty arg", args: []string{""}, opts: Options{Repeat: 1}, want: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.args, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	_, err := Build([]string{"x"}, Options{Upper: true, Lower: true, Repeat: 1})
	assert.True(t, errors.Is(err, ErrConflictingCase))

	for _, repeat := range []int{0, -2} {
		_, err := Build([]string{"x"}, Options{Repeat: repeat})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidRepeat))
	}

	_, err = Build([]string{"x"}, Options{Repeat: 0})
	assert.Contains(t, err.Error(), "got 0")
}
