package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate ado configuration",
	Long: `Inspect and validate the ado configuration file.

The file is chosen from --config, then ADO_CONFIG, then the first existing
default search path. Use 'ado config path' to see the full search order.`,
	Example: `  # Show which file would be used
  ado config path

  # Validate it
  ado config validate

  # Create a default config
  ado config init

See Also: ado meta env`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}
