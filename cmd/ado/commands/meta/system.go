package meta

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/ado/cmd/ado/commands/flags"
	internalmeta "github.com/thoreinstein/ado/internal/meta"
	"github.com/thoreinstein/ado/internal/ui"
)

var systemOutput string

func init() {
	flags.AddOutputFlag(systemCmd, &systemOutput)
	Cmd.AddCommand(systemCmd)
}

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "Show system diagnostic information",
	Long: `Display OS, CPU, memory, storage, GPU and NPU details.

Detection is best effort: anything that cannot be determined is reported
as "unknown" or zero. Run with -v to see which probes failed.`,
	Example: `  # Human-readable report
  ado meta system

  # Extract a field for a bug report
  ado meta system -o json | jq '.memory.used_percent'`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return runSystem(c.Context(), c.OutOrStdout(), internalmeta.HostProbe{})
	},
}

func runSystem(ctx context.Context, w io.Writer, probe internalmeta.Probe) error {
	format, err := flags.ParseOutput(systemOutput)
	if err != nil {
		return err
	}
	info := internalmeta.CollectSystemInfoWith(ctx, probe)
	return ui.Print(w, format, info, info)
}
