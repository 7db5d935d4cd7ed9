package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"dario.cat/mergo"

	"github.com/thoreinstein/ado/internal/errors"
	"github.com/thoreinstein/ado/internal/redact"
)

// Format specifies the output format for log messages.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// LevelTrace is one step below debug, enabled by -vv.
const LevelTrace = slog.LevelDebug - 4

// ErrInvalidLevel indicates an unrecognised log level name.
var ErrInvalidLevel = errors.New("invalid log level")

// Config holds the configuration for creating a new logger.
type Config struct {
	// Level sets the minimum log level. Messages below this level are discarded.
	Level slog.Level
	// Format specifies the output format (text or JSON).
	Format Format
	// Output is where log messages are written. Defaults to os.Stderr if nil.
	Output io.Writer
	// Terminal decides whether text output is colourised.
	Terminal Terminal
}

// New creates a logger with the given configuration.
// If cfg.Output is nil, it defaults to os.Stderr.
// If cfg.Format is not recognized, it defaults to FormatText.
func New(cfg Config) *slog.Logger {
	return slog.New(NewFormatHandler(cfg))
}

// NewFormatHandler returns the handler New would wrap.
func NewFormatHandler(cfg Config) slog.Handler {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	if cfg.Format == FormatJSON {
		return slog.NewJSONHandler(output, &slog.HandlerOptions{
			Level:       cfg.Level,
			ReplaceAttr: RedactAttr,
		})
	}
	return NewHandler(output, &slog.HandlerOptions{Level: cfg.Level}, cfg.Terminal)
}

// RedactAttr is a slog ReplaceAttr hook that masks secret-looking
// attributes. The built-in time, level, message and source keys pass
// through untouched.
func RedactAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 {
		switch a.Key {
		case slog.TimeKey, slog.LevelKey, slog.MessageKey, slog.SourceKey:
			return a
		}
	}
	if a.Value.Kind() == slog.KindGroup {
		return a
	}
	raw := a.Value.String()
	if masked := redact.Field(a.Key, raw); masked != raw {
		return slog.String(a.Key, masked)
	}
	return a
}

// ParseLevel converts a level name (debug, info, warn, error) to an slog level.
// Matching is case-insensitive.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Wrapf(ErrInvalidLevel, "%q: must be debug, info, warn, or error", name)
	}
}

// IsValidLevel reports whether name is a level ParseLevel accepts.
func IsValidLevel(name string) bool {
	_, err := ParseLevel(name)
	return err == nil
}

// LevelFromVerbosity maps the -v count onto a level: 0 is info, 1 debug, 2+ trace.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelInfo
	case v == 1:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// Settings is one layer of logging configuration: built-in defaults, the
// environment, or command-line flags. Empty fields do not override.
type Settings struct {
	Level     string
	Format    Format
	File      string
	Verbosity int
	Quiet     bool
}

// DefaultSettings returns the built-in bottom layer.
func DefaultSettings() Settings {
	return Settings{
		Level:  "info",
		Format: FormatText,
	}
}

// ResolveSettings merges layers in order, later non-empty fields winning.
func ResolveSettings(layers ...Settings) (Settings, error) {
	var out Settings
	for _, l := range layers {
		if err := mergo.Merge(&out, l, mergo.WithOverride); err != nil {
			return Settings{}, errors.Wrap(err, "merging log settings")
		}
	}
	return out, nil
}

// SlogLevel returns the effective level: quiet beats verbosity, verbosity beats Level.
func (s Settings) SlogLevel() (slog.Level, error) {
	if s.Quiet && s.Verbosity > 0 {
		return slog.LevelInfo, errors.Wrap(errors.ErrInvalidArgument, "cannot use --quiet and --verbose together")
	}
	if s.Quiet {
		return slog.LevelError, nil
	}
	if s.Verbosity > 0 {
		return LevelFromVerbosity(s.Verbosity), nil
	}
	if s.Level == "" {
		return slog.LevelInfo, nil
	}
	return ParseLevel(s.Level)
}

type loggerKey struct{}

// NewContext returns a copy of ctx carrying logger.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}
	return slog.Default()
}

// testWriter adapts testing.T to io.Writer for use with slog handlers.
type testWriter struct {
	t *testing.T
}

func (w *testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// ForTest creates a logger that writes to the test's log output at debug level.
func ForTest(t *testing.T) *slog.Logger {
	t.Helper()
	return New(Config{
		Level:  slog.LevelDebug,
		Format: FormatText,
		Output: &testWriter{t: t},
	})
}
