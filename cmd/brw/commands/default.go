package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/browserware/brw/internal/browser"
	"github.com/browserware/brw/internal/detect"
	"github.com/browserware/brw/internal/errors"
)

func init() {
	rootCmd.AddCommand(defaultCmd)
}

var defaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Show the system default browser",
	Long: `Show the browser the operating system opens web links with.

Exits with an error when no default browser is configured or the
configured default could not be resolved to an installed browser.`,
	Example: `  # Show the default browser
  brw default

  # As JSON
  brw default --format json`,
	RunE: runDefault,
}

func runDefault(cmd *cobra.Command, _ []string) error {
	return runDefaultWithWriter(cmd.OutOrStdout())
}

// runDefaultWithWriter allows injecting a writer for testing.
func runDefaultWithWriter(w io.Writer) error {
	def := detect.Default()
	if def == nil {
		return errors.NewUserError(errors.ErrNoDefaultBrowser,
			"Check your system's default application settings")
	}
	return renderBrowsers(w, []browser.Browser{*def}, resolveFormat())
}
