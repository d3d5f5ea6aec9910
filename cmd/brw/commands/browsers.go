package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/browserware/brw/internal/browser"
	"github.com/browserware/brw/internal/detect"
	"github.com/browserware/brw/internal/errors"
)

// browsersFamily holds the value of the --family flag.
var browsersFamily string

func init() {
	browsersCmd.Flags().StringVar(&browsersFamily, "family", "",
		"only list browsers of this family: chromium, firefox, webkit, other")
	rootCmd.AddCommand(browsersCmd)
}

var browsersCmd = &cobra.Command{
	Use:   "browsers [id]",
	Short: "List installed browsers",
	Long: `List the web browsers installed on this machine.

Each browser is reported with its engine family, release channel,
version (when it could be determined), and executable path. Browsers
the detector could not fully resolve are listed with the fields that
were available.

With an ID argument, shows only that browser and exits with an error
when it is not installed.`,
	Example: `  # List all browsers
  brw browsers

  # Only Firefox-based browsers
  brw browsers --family firefox

  # A single browser, machine-readable
  brw browsers chrome --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowsers,
}

func runBrowsers(cmd *cobra.Command, args []string) error {
	return runBrowsersWithWriter(cmd.OutOrStdout(), args)
}

// runBrowsersWithWriter allows injecting a writer for testing.
func runBrowsersWithWriter(w io.Writer, args []string) error {
	// One detection pass; lookups and filters below work on this list so
	// the OS is not scanned twice.
	browsers := detect.Browsers()

	if len(args) == 1 {
		b, err := browserByID(browsers, browser.ID(args[0]))
		if err != nil {
			return errors.NewUserError(err, "Run 'brw browsers' to see detected browsers")
		}
		return renderBrowsers(w, []browser.Browser{*b}, resolveFormat())
	}

	if browsersFamily != "" {
		family, err := parseFamily(browsersFamily)
		if err != nil {
			return errors.NewUserError(err, "valid families: chromium, firefox, webkit, other")
		}
		browsers = filterByFamily(browsers, family)
	}

	return renderBrowsers(w, browsers, resolveFormat())
}

// browserByID finds a detected browser by canonical ID.
func browserByID(browsers []browser.Browser, id browser.ID) (*browser.Browser, error) {
	for i := range browsers {
		if browsers[i].ID == id {
			return &browsers[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", errors.ErrBrowserNotFound, id)
}

// filterByFamily keeps the browsers of one engine family, preserving order.
func filterByFamily(browsers []browser.Browser, f browser.Family) []browser.Browser {
	var matched []browser.Browser
	for _, b := range browsers {
		if b.Family() == f {
			matched = append(matched, b)
		}
	}
	return matched
}

// parseFamily maps a --family flag value to a browser family.
func parseFamily(s string) (browser.Family, error) {
	switch browser.Family(s) {
	case browser.FamilyChromium, browser.FamilyFirefox, browser.FamilyWebKit, browser.FamilyOther:
		return browser.Family(s), nil
	}
	return "", fmt.Errorf("%w: %s", errors.ErrUnknownFamily, s)
}
