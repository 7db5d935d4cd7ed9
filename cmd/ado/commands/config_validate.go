package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/ado/cmd/ado/commands/flags"
	"github.com/thoreinstein/ado/internal/config"
	"github.com/thoreinstein/ado/internal/errors"
	"github.com/thoreinstein/ado/internal/ui"
)

var (
	validateFile   string
	validateStrict bool
	validateOutput string
)

var errValidationFailed = errors.New("config validation failed")

func init() {
	configValidateCmd.Flags().StringVarP(&validateFile, "file", "f", "",
		"config file to validate (default: the resolved config)")
	configValidateCmd.Flags().BoolVar(&validateStrict, "strict", false,
		"treat warnings as errors")
	flags.AddOutputFlag(configValidateCmd, &validateOutput)
	configCmd.AddCommand(configValidateCmd)
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the config file",
	Long: `Validate the ado config file.

Checks that the file is readable YAML, that it is a mapping, and that
"version" is a supported integer. Unknown keys are reported as warnings
with their line numbers; --strict turns them into errors.

Exit codes:
  0 - Valid config (warnings OK unless --strict)
  1 - Invalid config, or no config file found`,
	Example: `  # Validate the resolved config
  ado config validate

  # Validate a specific file for CI
  ado config validate -f ./config.yaml --strict -o json`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return runConfigValidate(c.OutOrStdout())
	},
}

func runConfigValidate(w io.Writer) error {
	format, err := flags.ParseOutput(validateOutput)
	if err != nil {
		return err
	}

	path := validateFile
	if path == "" {
		res := resolveConfig()
		if !res.Found() {
			err := errors.Wrap(errors.ErrNotFound, "no config file found")
			return errors.NewUserError(err, "Run: ado config init")
		}
		path = res.Path
	}

	result, err := config.Validate(path)
	if err != nil {
		return errors.NewSystemError(err, "")
	}
	if validateStrict {
		result.PromoteWarnings()
	}

	if err := ui.Print(w, format, result, result); err != nil {
		return err
	}

	if !result.Valid {
		return errors.NewExitError(errors.Wrapf(errValidationFailed, "%d error(s)", len(result.Errors)), errors.ExitUser)
	}
	return nil
}
