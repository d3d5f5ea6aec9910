package detect

import (
	"os"
	"path/filepath"
	"strings"

	"howett.net/plist"

	"github.com/browserware/brw/internal/browser"
	"github.com/browserware/brw/internal/registry"
)

// bundleInfo carries the Info.plist keys detection cares about.
type bundleInfo struct {
	Name         string `plist:"CFBundleName"`
	DisplayName  string `plist:"CFBundleDisplayName"`
	Executable   string `plist:"CFBundleExecutable"`
	ShortVersion string `plist:"CFBundleShortVersionString"`
	BuildVersion string `plist:"CFBundleVersion"`
}

// readBundleInfo parses <app>/Contents/Info.plist. A missing or malformed
// manifest yields nil; per-entry failures never stop detection.
func readBundleInfo(appPath string) *bundleInfo {
	f, err := os.Open(filepath.Join(appPath, "Contents", "Info.plist"))
	if err != nil {
		return nil
	}
	defer f.Close()

	var info bundleInfo
	if err := plist.NewDecoder(f).Decode(&info); err != nil {
		return nil
	}
	return &info
}

// version returns the bundle's version string, preferring the marketing
// version over the build version. Empty when neither is present.
func (i *bundleInfo) version() string {
	if i == nil {
		return ""
	}
	if i.ShortVersion != "" {
		return i.ShortVersion
	}
	return i.BuildVersion
}

// displayName returns the bundle's user-facing name, or "".
func (i *bundleInfo) displayName() string {
	if i == nil {
		return ""
	}
	if i.DisplayName != "" {
		return i.DisplayName
	}
	return i.Name
}

// isNestedApp reports whether appPath points at a bundle living inside
// another bundle's internal tree (helper apps under Contents/Support,
// Contents/Frameworks, and the like). The OS's own settings surface does not
// list these as independent browsers, so neither do we.
func isNestedApp(appPath string) bool {
	idx := strings.LastIndex(appPath, ".app")
	if idx < 0 {
		return false
	}
	return strings.Contains(appPath[:idx], ".app/")
}

// deriveNameFromBundleID turns "com.example.MyBrowser" into "MyBrowser".
// Returns "" for an empty identifier.
func deriveNameFromBundleID(bundleID string) string {
	parts := strings.Split(bundleID, ".")
	return parts[len(parts)-1]
}

// bundleExecutable resolves the binary inside an app bundle. It prefers the
// manifest's declared executable name; when that path does not exist it
// falls back to a path built from the app's own name. The fallback is
// reported even when unverified, existence is advisory only.
func bundleExecutable(appPath string, info *bundleInfo) string {
	macOSDir := filepath.Join(appPath, "Contents", "MacOS")

	if info != nil && info.Executable != "" {
		candidate := filepath.Join(macOSDir, info.Executable)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	stem := strings.TrimSuffix(filepath.Base(appPath), ".app")
	return filepath.Join(macOSDir, stem)
}

// browserFromBundle builds a Browser for one HTTPS handler, enriching from
// the registry when the bundle ID is known and deriving metadata otherwise.
func browserFromBundle(bundleID, appPath string) browser.Browser {
	info := readBundleInfo(appPath)
	executable := bundleExecutable(appPath, info)

	if meta := registry.FindByBundleID(bundleID); meta != nil {
		return browser.New(meta.ID, meta.Name, executable).
			WithVariant(meta.Variant).
			WithBundleID(bundleID).
			WithVersion(info.version())
	}

	name := info.displayName()
	if name == "" {
		name = deriveNameFromBundleID(bundleID)
	}
	if name == "" {
		name = bundleID
	}

	return browser.New(browser.ID(bundleID), name, executable).
		WithVariant(browser.Single(browser.FamilyOther)).
		WithBundleID(bundleID).
		WithVersion(info.version())
}
