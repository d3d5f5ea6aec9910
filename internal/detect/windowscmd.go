package detect

import (
	"strings"

	"github.com/browserware/brw/internal/browser"
)

// parseWindowsCommand extracts the executable path from a registry
// shell\open\command value. The path is either the leading double-quoted
// segment or, without quotes, the first whitespace-delimited token.
func parseWindowsCommand(command string) string {
	command = strings.TrimSpace(command)
	if command == "" {
		return ""
	}

	if strings.HasPrefix(command, `"`) {
		rest := command[1:]
		if end := strings.Index(rest, `"`); end >= 0 {
			return rest[:end]
		}
		return rest
	}

	if idx := strings.IndexAny(command, " \t"); idx >= 0 {
		return command[:idx]
	}
	return command
}

// progIDOwners maps the stable part of HTTP(S) UserChoice ProgIds to
// canonical browser IDs. Firefox-family ProgIds carry a per-install hash
// suffix after a dash, so lookups also try the prefix before the first dash.
var progIDOwners = map[string]browser.ID{
	"ChromeHTML":      "chrome",
	"ChromeBHTML":     "chrome-beta",
	"ChromeDHTML":     "chrome-dev",
	"ChromeSSHTM":     "chrome-canary",
	"MSEdgeHTM":       "edge",
	"MSEdgeBHTM":      "edge-beta",
	"MSEdgeDHTM":      "edge-dev",
	"MSEdgeCHTM":      "edge-canary",
	"BraveHTML":       "brave",
	"BraveBHTML":      "brave-beta",
	"BraveSSHTM":      "brave-nightly",
	"ChromiumHTM":     "chromium",
	"OperaStable":     "opera",
	"OperaBeta":       "opera-beta",
	"OperaDeveloper":  "opera-developer",
	"OperaGXStable":   "opera-gx",
	"VivaldiHTM":      "vivaldi",
	"FirefoxURL":      "firefox",
	"FirefoxHTML":     "firefox",
	"LibreWolfURL":    "librewolf",
	"LibreWolfHTML":   "librewolf",
	"WaterfoxURL":     "waterfox",
	"WaterfoxHTML":    "waterfox",
	"FloorpURL":       "floorp",
	"FloorpHTML":      "floorp",
	"ArcHTML":         "arc",
	"VivaldiSnapshot": "vivaldi-snapshot",
}

// browserIDForProgID maps a UserChoice ProgId to a canonical browser ID.
// Returns "" when the ProgId is not recognized.
func browserIDForProgID(progID string) browser.ID {
	if id, ok := progIDOwners[progID]; ok {
		return id
	}
	if prefix, _, found := strings.Cut(progID, "-"); found {
		if id, ok := progIDOwners[prefix]; ok {
			return id
		}
	}
	return ""
}
