package commands

import (
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/ado/cmd/ado/commands/flags"
	"github.com/thoreinstein/ado/internal/config"
	"github.com/thoreinstein/ado/internal/editor"
	"github.com/thoreinstein/ado/internal/errors"
	"github.com/thoreinstein/ado/internal/logging"
)

func init() {
	configCmd.AddCommand(configEditCmd)
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $EDITOR",
	Long: `Open the resolved config file in your editor.

Uses $EDITOR, then $VISUAL, then nano, then vi. The file is validated
after the editor exits and problems are logged as warnings.`,
	Example: `  ado config edit
  EDITOR="code --wait" ado config edit`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

func runConfigEdit(c *cobra.Command, _ []string) error {
	res := resolveConfig()
	if !res.Found() {
		err := errors.Wrap(errors.ErrNotFound, "no config file found")
		return errors.NewUserError(err, "Run: ado config init")
	}

	env := flags.GetEnv()
	command := editor.Choose(env.Editor, env.Visual, exec.LookPath)
	logger := logging.FromContext(c.Context())
	logger.Debug("opening editor", "editor", command, "path", res.Path)

	stdio := editor.Stdio{In: c.InOrStdin(), Out: c.OutOrStdout(), Err: c.ErrOrStderr()}
	if err := editor.Open(c.Context(), command, res.Path, stdio); err != nil {
		return errors.NewUserError(err, "Set $EDITOR to an installed editor")
	}

	result, err := config.Validate(res.Path)
	if err != nil {
		return errors.NewSystemError(err, "")
	}
	for _, issue := range result.Errors {
		logger.Warn("config is invalid", "path", res.Path, "issue", issue.String())
	}
	return nil
}
