// Package meta provides commands that introspect the ado binary, its
// environment, and the host system.
package meta

import "github.com/spf13/cobra"

// Cmd is the parent command for all meta subcommands.
var Cmd = &cobra.Command{
	Use:   "meta",
	Short: "Introspect the ado binary and its environment",
	Long:  `Commands that report build metadata, config resolution, compiled-in features, and host system details.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}
