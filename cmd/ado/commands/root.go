// Package commands implements the CLI commands for ado.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/ado/cmd"
	"github.com/thoreinstein/ado/cmd/ado/commands/flags"
	"github.com/thoreinstein/ado/internal/config"
	"github.com/thoreinstein/ado/internal/errors"
	"github.com/thoreinstein/ado/internal/logging"
	"github.com/thoreinstein/ado/internal/paths"
)

var (
	// configPath holds the value of the --config flag.
	configPath string

	// logLevel holds the value of the --log-level flag.
	logLevel string

	// verbosity holds the count of -v flags.
	verbosity int

	// quiet holds the value of the -q/--quiet flag.
	quiet bool

	// logFormat holds the value of the --log-format flag.
	logFormat string

	// logFile holds the path to the log file.
	logFile string

	// logSink owns the --log-file handle until Execute returns.
	logSink io.Closer
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default: first existing of the search paths)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level: debug, info, warn, error")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"only log errors")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"also write logs to file in JSON format")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("ado version {{.Version}}\n")

	// Errors are printed by Execute.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "ado",
	Short: "Composable automation and diagnostics CLI",
	Long: `ado is a small automation and diagnostics CLI.

It echoes text, reports its own build metadata, environment and host
system, and resolves and validates its YAML configuration file.

Configuration is read from the first existing of:
  $XDG_CONFIG_HOME/ado/config.yaml (or ~/.config/ado/config.yaml)
  ~/.ado/config.yaml
unless --config or ADO_CONFIG names a file.`,
	Example: `  # Echo a message three times in upper case
  ado echo hello --upper --repeat 3

  # Show where ado looks for its config
  ado meta env

  # Validate the config file, failing on warnings
  ado config validate --strict

  See Also: ado meta, ado config`,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// setup parses the environment once and configures logging for every command.
func setup(cmd *cobra.Command, _ []string) error {
	env, err := config.ParseEnv()
	if err != nil {
		return errors.NewUserError(err, "Check the ADO_* environment variables")
	}
	flags.SetEnv(env)
	flags.SetConfigFlag(configPath)

	return setupLogging(cmd, env)
}

// setupLogging builds the logger from defaults, ADO_LOG_LEVEL and flags, in
// increasing precedence, and stores it in the command context.
func setupLogging(cmd *cobra.Command, env config.Env) error {
	flagLayer := logging.Settings{
		Verbosity: verbosity,
		Quiet:     quiet,
		File:      logFile,
	}
	if cmd.Flags().Changed("log-level") {
		flagLayer.Level = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		flagLayer.Format = logging.Format(logFormat)
	}

	settings, err := logging.ResolveSettings(
		logging.DefaultSettings(),
		logging.Settings{Level: env.LogLevel},
		flagLayer,
	)
	if err != nil {
		return errors.NewSystemError(err, "")
	}

	level, err := settings.SlogLevel()
	if err != nil {
		return errors.NewUserError(err, "Run 'ado --help' for valid logging flags")
	}

	closeLogSink()
	term := logging.Terminal{NoColor: env.NoColor, Term: env.Term}
	handler, err := buildHandler(cmd.ErrOrStderr(), settings, level, term)
	if err != nil {
		return err
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	logger.Debug("logging configured", "level", level.String(), "format", string(settings.Format))
	return nil
}

func buildHandler(stderr io.Writer, settings logging.Settings, level slog.Level, term logging.Terminal) (slog.Handler, error) {
	switch settings.Format {
	case logging.FormatText, logging.FormatJSON:
	default:
		err := errors.Newf("invalid log format %q", settings.Format)
		return nil, errors.NewUserError(err, "Use --log-format text or json")
	}

	primary := logging.NewFormatHandler(logging.Config{
		Level:    level,
		Format:   settings.Format,
		Output:   stderr,
		Terminal: term,
	})
	if settings.File == "" {
		return primary, nil
	}

	file, err := logging.OpenFile(settings.File, level)
	if err != nil {
		return nil, errors.NewUserError(err, "Check that --log-file points to a writable path")
	}
	multi := logging.NewMultiHandler(primary, file)
	logSink = multi
	return multi, nil
}

// closeLogSink releases the --log-file handle, if one is open.
func closeLogSink() {
	if logSink == nil {
		return
	}
	if err := logSink.Close(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	logSink = nil
}

// resolveConfig applies the standard lookup using the root flag and environment.
func resolveConfig() config.Resolution {
	env := flags.GetEnv()
	return config.Resolve(flags.GetConfigFlag(), env.ConfigPath, env.XDGConfigHome, paths.Home())
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	closeLogSink()
	return err
}

// printError writes err and, when present, its suggestion.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "Suggestion: %s\n", exitErr.Suggestion)
	}
}
