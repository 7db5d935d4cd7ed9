package meta

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/ado/cmd/ado/commands/flags"
	internalmeta "github.com/thoreinstein/ado/internal/meta"
	"github.com/thoreinstein/ado/internal/paths"
	"github.com/thoreinstein/ado/internal/ui"
)

var envOutput string

func init() {
	flags.AddOutputFlag(envCmd, &envOutput)
	Cmd.AddCommand(envCmd)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show configuration and environment information",
	Long: `Show the resolved config file, every path that was considered, the
home and cache directories, and the ADO_* variables that are set.

Secret-looking values are masked.`,
	Example: `  ado meta env
  ado --config ./dev.yaml meta env -o yaml`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return runEnv(c.OutOrStdout(), internalmeta.EnvInput{
			ExplicitConfig: flags.GetConfigFlag(),
			Env:            flags.GetEnv(),
			HomeDir:        paths.Home(),
			CacheDir:       paths.CacheDir(),
		})
	},
}

func runEnv(w io.Writer, in internalmeta.EnvInput) error {
	format, err := flags.ParseOutput(envOutput)
	if err != nil {
		return err
	}
	info := internalmeta.CollectEnvInfo(in)
	return ui.Print(w, format, info, info)
}
