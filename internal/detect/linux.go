//go:build linux

package detect

import (
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/browserware/brw/internal/browser"
)

func newDetector() Detector {
	return &linuxDetector{
		scanner: desktopScanner{
			lookPath: exec.LookPath,
			version:  queryVersion,
		},
	}
}

// linuxDetector discovers browsers through XDG desktop files and resolves
// the default browser with xdg-settings.
type linuxDetector struct {
	scanner desktopScanner
}

func (d *linuxDetector) Browsers() []browser.Browser {
	return d.scanner.scan(applicationDirs())
}

func (d *linuxDetector) Default() *browser.Browser {
	out, err := exec.Command("xdg-settings", "get", "default-web-browser").Output()
	if err != nil {
		slog.Debug("xdg-settings query failed", "error", err)
		return nil
	}

	desktopID := strings.TrimSpace(string(out))
	desktopID = strings.TrimSuffix(desktopID, ".desktop")
	if desktopID == "" {
		return nil
	}

	return matchDefaultDesktopID(d.Browsers(), desktopID)
}

// applicationDirs returns the deduplicated set of existing directories that
// can hold browser desktop entries: the XDG data directories, the per-user
// data directory, the per-user Flatpak export, and the Snap system
// directory.
func applicationDirs() []string {
	candidates := make([]string, 0, len(xdg.DataDirs)+3)
	for _, dir := range xdg.DataDirs {
		candidates = append(candidates, filepath.Join(dir, "applications"))
	}
	candidates = append(candidates,
		filepath.Join(xdg.DataHome, "applications"),
		filepath.Join(xdg.Home, ".local", "share", "flatpak", "exports", "share", "applications"),
		"/var/lib/snapd/desktop/applications",
	)

	seen := make(map[string]bool, len(candidates))
	dirs := make([]string, 0, len(candidates))
	for _, dir := range candidates {
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
