package commands

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/ado/cmd/ado/commands/flags"
	"github.com/thoreinstein/ado/internal/echo"
	"github.com/thoreinstein/ado/internal/errors"
	"github.com/thoreinstein/ado/internal/ui"
)

var (
	echoUpper  bool
	echoLower  bool
	echoRepeat int
	echoOutput string
)

func init() {
	echoCmd.Flags().BoolVar(&echoUpper, "upper", false, "convert message to uppercase")
	echoCmd.Flags().BoolVar(&echoLower, "lower", false, "convert message to lowercase")
	echoCmd.Flags().IntVar(&echoRepeat, "repeat", 1, "number of times to repeat the message")
	flags.AddOutputFlag(echoCmd, &echoOutput)
	rootCmd.AddCommand(echoCmd)
}

var echoCmd = &cobra.Command{
	Use:   "echo [message...]",
	Short: "Echo input text with optional formatting",
	Long: `Echo the arguments joined by single spaces.

--upper and --lower apply a Unicode-aware case transform and cannot be
combined. --repeat prints the message several times. Structured output
formats emit the list of lines.`,
	Example: `  # Print a message
  ado echo hello world

  # Shout three times as JSON
  ado echo hi --upper --repeat 3 -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return runEcho(c.OutOrStdout(), args)
	},
}

func runEcho(w io.Writer, args []string) error {
	format, err := flags.ParseOutput(echoOutput)
	if err != nil {
		return err
	}

	values, err := echo.Build(args, echo.Options{
		Upper:  echoUpper,
		Lower:  echoLower,
		Repeat: echoRepeat,
	})
	if err != nil {
		return errors.NewUserError(err, "Run 'ado echo --help' for usage")
	}

	return ui.Print(w, format, values, ui.Text(strings.Join(values, "\n")))
}
