package meta

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/ado/cmd"
	"github.com/thoreinstein/ado/cmd/ado/commands/flags"
	internalmeta "github.com/thoreinstein/ado/internal/meta"
	"github.com/thoreinstein/ado/internal/ui"
)

var infoOutput string

func init() {
	flags.AddOutputFlag(infoCmd, &infoOutput)
	Cmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show ado build metadata",
	Example: `  ado meta info
  ado meta info -o json`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return runInfo(c.OutOrStdout())
	},
}

func runInfo(w io.Writer) error {
	format, err := flags.ParseOutput(infoOutput)
	if err != nil {
		return err
	}
	info := internalmeta.NewBuildInfo(cmd.Version, cmd.Commit, cmd.Date)
	return ui.Print(w, format, info, info)
}
