package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/ado/cmd/ado/commands/flags"
	"github.com/thoreinstein/ado/internal/config"
	"github.com/thoreinstein/ado/internal/errors"
	"github.com/thoreinstein/ado/internal/logging"
	"github.com/thoreinstein/ado/internal/ui"
)

var showOutput string

func init() {
	flags.AddOutputFlag(configShowCmd, &showOutput)
	configCmd.AddCommand(configShowCmd)
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Load the resolved config file and print the effective settings.

Without a config file the built-in defaults are shown.`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		logging.FromContext(c.Context()).Debug("showing config")
		return runConfigShow(c.OutOrStdout())
	},
}

func runConfigShow(w io.Writer) error {
	format, err := flags.ParseOutput(showOutput)
	if err != nil {
		return err
	}

	res := resolveConfig()
	cfg, err := config.Load(res.Path)
	if err != nil {
		return errors.NewConfigError(err)
	}

	source := res.Path
	if source == "" {
		source = "(defaults)"
	}
	payload := ui.NewOrderedMap("source", source, "config", cfg)

	return ui.Print(w, format, payload, ui.TextFunc(func() (string, error) {
		text, err := cfg.RenderText()
		return "# source: " + source + "\n" + text, err
	}))
}
