package commands

import "github.com/thoreinstein/ado/cmd/ado/commands/meta"

func init() {
	rootCmd.AddCommand(meta.Cmd)
}
