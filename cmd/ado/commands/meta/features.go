package meta

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/ado/cmd/ado/commands/flags"
	internalmeta "github.com/thoreinstein/ado/internal/meta"
	"github.com/thoreinstein/ado/internal/ui"
)

var featuresOutput string

func init() {
	flags.AddOutputFlag(featuresCmd, &featuresOutput)
	Cmd.AddCommand(featuresCmd)
}

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "List compiled-in feature flags",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return runFeatures(c.OutOrStdout())
	},
}

func runFeatures(w io.Writer) error {
	format, err := flags.ParseOutput(featuresOutput)
	if err != nil {
		return err
	}
	features := internalmeta.Features()
	return ui.Print(w, format, features, features)
}
