package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/ado/cmd/ado/commands/flags"
	"github.com/thoreinstein/ado/internal/ui"
)

var pathOutput string

func init() {
	flags.AddOutputFlag(configPathCmd, &pathOutput)
	configCmd.AddCommand(configPathCmd)
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the resolved config path and search order",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return runConfigPath(c.OutOrStdout())
	},
}

func runConfigPath(w io.Writer) error {
	format, err := flags.ParseOutput(pathOutput)
	if err != nil {
		return err
	}
	res := resolveConfig()
	return ui.Print(w, format, res, res)
}
