package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/browserware/brw/internal/browser"
	"github.com/browserware/brw/internal/errors"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// renderBrowsers writes the browser list in the requested format.
func renderBrowsers(w io.Writer, browsers []browser.Browser, format string) error {
	switch format {
	case "json":
		return outputBrowsersJSON(w, browsers)
	case "plain":
		return outputBrowsersPlain(w, browsers)
	case "table", "":
		return outputBrowsersTabular(w, browsers)
	}
	return fmt.Errorf("%w: %s", errors.ErrUnknownFormat, format)
}

// outputBrowsersJSON outputs browsers in JSON format.
func outputBrowsersJSON(w io.Writer, browsers []browser.Browser) error {
	if browsers == nil {
		browsers = []browser.Browser{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(browsers)
}

// outputBrowsersPlain outputs one browser ID per line for scripting.
func outputBrowsersPlain(w io.Writer, browsers []browser.Browser) error {
	for _, b := range browsers {
		fmt.Fprintln(w, b.ID)
	}
	return nil
}

// outputBrowsersTabular outputs browsers as a table.
func outputBrowsersTabular(w io.Writer, browsers []browser.Browser) error {
	if len(browsers) == 0 {
		fmt.Fprintln(w, "No browsers found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sID%s\t%sNAME%s\t%sFAMILY%s\t%sCHANNEL%s\t%sVERSION%s\t%sEXECUTABLE%s\n",
		colorBold, colorReset, colorBold, colorReset, colorBold, colorReset,
		colorBold, colorReset, colorBold, colorReset, colorBold, colorReset)

	for _, b := range browsers {
		version := b.Version
		if version == "" {
			version = colorGray + "-" + colorReset
		}
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s\t%s\t%s\t%s\n",
			colorGreen, b.ID, colorReset,
			b.Name, b.Family(), b.Variant.Channel(), version,
			truncate(b.Executable, 60))
	}
	return tw.Flush()
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
