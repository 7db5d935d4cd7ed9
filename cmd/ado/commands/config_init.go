package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/ado/cmd/ado/commands/flags"
	"github.com/thoreinstein/ado/internal/backup"
	"github.com/thoreinstein/ado/internal/config"
	"github.com/thoreinstein/ado/internal/errors"
	"github.com/thoreinstein/ado/internal/paths"
	"github.com/thoreinstein/ado/pkg/fileutil"
)

var initForce bool

func init() {
	configInitCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a default config file to the first default search path
($XDG_CONFIG_HOME/ado/config.yaml or ~/.config/ado/config.yaml).

With --force an existing file is first copied to the backup directory
under ado's cache dir.`,
	Example: `  ado config init
  ado config init --force`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return runConfigInit(c.OutOrStdout(), paths.Home(), backup.NewManager())
	},
}

func runConfigInit(w io.Writer, home string, backups *backup.Manager) error {
	target := config.SearchPaths(flags.GetEnv().XDGConfigHome, home)[0]

	if _, err := os.Stat(target); err == nil {
		if !initForce {
			err := errors.Newf("config already exists at %s", target)
			return errors.NewUserError(err, "Use --force to overwrite")
		}
		saved, err := backups.Backup(target)
		if err != nil {
			return errors.NewSystemError(err, "Remove the file by hand or fix the cache directory permissions")
		}
		fmt.Fprintf(w, "Backed up %s to %s\n", target, saved)
	}

	if err := paths.EnsureDir(filepath.Dir(target), 0); err != nil {
		return errors.NewSystemError(err, "")
	}
	if err := fileutil.AtomicWriteYAML(target, config.Default(), 0o644); err != nil {
		return errors.NewSystemError(err, "")
	}

	fmt.Fprintf(w, "Created %s\n", target)
	return nil
}
