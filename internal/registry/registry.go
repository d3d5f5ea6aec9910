// Package registry holds the static table of known browsers and their
// platform-specific identifiers.
//
// The table is not the source of truth for what is installed. Platform
// detection enumerates whatever the OS reports and then consults this table
// to enrich matches with canonical IDs, display names, and variants; browsers
// with no entry here are still detected with derived metadata.
//
// The table is immutable process-wide data, constructed eagerly. Lookup
// functions are read-only and safe for concurrent use.
package registry

import "github.com/browserware/brw/internal/browser"

// Meta is the compile-time metadata template for one known browser.
// Detection may produce zero, one, or many live Browser values per template.
type Meta struct {
	// ID is the canonical identifier used in configuration and CLI surfaces.
	ID browser.ID

	// Name is the human-readable display name.
	Name string

	// Variant encodes engine family and release channel.
	Variant browser.Variant

	// MacOSBundleIDs lists CFBundleIdentifier values that identify this
	// browser on macOS. Multiple entries handle renamed bundles or
	// alternative distributions. Empty means not available on macOS.
	MacOSBundleIDs []string

	// WindowsRegistryKeys lists key names under
	// SOFTWARE\Clients\StartMenuInternet. Empty means not available on
	// Windows.
	WindowsRegistryKeys []string

	// LinuxDesktopIDs lists desktop file basenames without the .desktop
	// extension, including Flatpak/Snap identifiers. Empty means not
	// available on Linux.
	LinuxDesktopIDs []string
}

// AvailableOnMacOS reports whether this browser ships on macOS.
func (m *Meta) AvailableOnMacOS() bool {
	return len(m.MacOSBundleIDs) > 0
}

// AvailableOnWindows reports whether this browser ships on Windows.
func (m *Meta) AvailableOnWindows() bool {
	return len(m.WindowsRegistryKeys) > 0
}

// AvailableOnLinux reports whether this browser ships on Linux.
func (m *Meta) AvailableOnLinux() bool {
	return len(m.LinuxDesktopIDs) > 0
}

// Family returns the engine family, derived from the variant.
func (m *Meta) Family() browser.Family {
	return m.Variant.Family()
}

// KnownBrowsers is the registry of browsers brw knows how to identify.
// IDs are unique, and every entry carries identifiers for at least one
// platform; both invariants are enforced by tests.
var KnownBrowsers = []Meta{
	// Chromium family: Google Chrome channels.
	{
		ID:                  "chrome",
		Name:                "Google Chrome",
		Variant:             browser.Chromium(browser.ChromiumStable),
		MacOSBundleIDs:      []string{"com.google.Chrome"},
		WindowsRegistryKeys: []string{"Google Chrome"},
		LinuxDesktopIDs:     []string{"google-chrome", "google-chrome-stable"},
	},
	{
		ID:                  "chrome-beta",
		Name:                "Google Chrome Beta",
		Variant:             browser.Chromium(browser.ChromiumBeta),
		MacOSBundleIDs:      []string{"com.google.Chrome.beta"},
		WindowsRegistryKeys: []string{"Google Chrome Beta"},
		LinuxDesktopIDs:     []string{"google-chrome-beta"},
	},
	{
		ID:                  "chrome-dev",
		Name:                "Google Chrome Dev",
		Variant:             browser.Chromium(browser.ChromiumDev),
		MacOSBundleIDs:      []string{"com.google.Chrome.dev"},
		WindowsRegistryKeys: []string{"Google Chrome Dev"},
		LinuxDesktopIDs:     []string{"google-chrome-unstable"},
	},
	{
		ID:                  "chrome-canary",
		Name:                "Google Chrome Canary",
		Variant:             browser.Chromium(browser.ChromiumCanary),
		MacOSBundleIDs:      []string{"com.google.Chrome.canary"},
		WindowsRegistryKeys: []string{"Google Chrome Canary"},
		// Canary is not distributed on Linux.
	},

	// Chromium family: Microsoft Edge channels.
	{
		ID:                  "edge",
		Name:                "Microsoft Edge",
		Variant:             browser.Chromium(browser.ChromiumStable),
		MacOSBundleIDs:      []string{"com.microsoft.edgemac"},
		WindowsRegistryKeys: []string{"Microsoft Edge"},
		LinuxDesktopIDs:     []string{"microsoft-edge", "microsoft-edge-stable"},
	},
	{
		ID:                  "edge-beta",
		Name:                "Microsoft Edge Beta",
		Variant:             browser.Chromium(browser.ChromiumBeta),
		MacOSBundleIDs:      []string{"com.microsoft.edgemac.Beta"},
		WindowsRegistryKeys: []string{"Microsoft Edge Beta"},
		LinuxDesktopIDs:     []string{"microsoft-edge-beta"},
	},
	{
		ID:                  "edge-dev",
		Name:                "Microsoft Edge Dev",
		Variant:             browser.Chromium(browser.ChromiumDev),
		MacOSBundleIDs:      []string{"com.microsoft.edgemac.Dev"},
		WindowsRegistryKeys: []string{"Microsoft Edge Dev"},
		LinuxDesktopIDs:     []string{"microsoft-edge-dev"},
	},
	{
		ID:                  "edge-canary",
		Name:                "Microsoft Edge Canary",
		Variant:             browser.Chromium(browser.ChromiumCanary),
		MacOSBundleIDs:      []string{"com.microsoft.edgemac.Canary"},
		WindowsRegistryKeys: []string{"Microsoft Edge Canary"},
	},

	// Chromium family: Brave channels.
	{
		ID:                  "brave",
		Name:                "Brave Browser",
		Variant:             browser.Chromium(browser.ChromiumStable),
		MacOSBundleIDs:      []string{"com.brave.Browser"},
		WindowsRegistryKeys: []string{"BraveSoftware Brave-Browser"},
		LinuxDesktopIDs:     []string{"brave-browser", "brave"},
	},
	{
		ID:                  "brave-beta",
		Name:                "Brave Browser Beta",
		Variant:             browser.Chromium(browser.ChromiumBeta),
		MacOSBundleIDs:      []string{"com.brave.Browser.beta"},
		WindowsRegistryKeys: []string{"BraveSoftware Brave-Browser-Beta"},
		LinuxDesktopIDs:     []string{"brave-browser-beta"},
	},
	{
		ID:                  "brave-nightly",
		Name:                "Brave Browser Nightly",
		Variant:             browser.Chromium(browser.ChromiumCanary),
		MacOSBundleIDs:      []string{"com.brave.Browser.nightly"},
		WindowsRegistryKeys: []string{"BraveSoftware Brave-Browser-Nightly"},
		LinuxDesktopIDs:     []string{"brave-browser-nightly"},
	},

	// Chromium family: single-channel browsers.
	{
		ID:                  "arc",
		Name:                "Arc",
		Variant:             browser.Single(browser.FamilyChromium),
		MacOSBundleIDs:      []string{"company.thebrowser.Browser"},
		WindowsRegistryKeys: []string{"Arc"},
	},
	{
		ID:                  "vivaldi",
		Name:                "Vivaldi",
		Variant:             browser.Chromium(browser.ChromiumStable),
		MacOSBundleIDs:      []string{"com.vivaldi.Vivaldi"},
		WindowsRegistryKeys: []string{"Vivaldi"},
		LinuxDesktopIDs:     []string{"vivaldi", "vivaldi-stable"},
	},
	{
		ID:                  "vivaldi-snapshot",
		Name:                "Vivaldi Snapshot",
		Variant:             browser.Chromium(browser.ChromiumDev),
		MacOSBundleIDs:      []string{"com.vivaldi.Vivaldi.snapshot"},
		WindowsRegistryKeys: []string{"Vivaldi Snapshot"},
		LinuxDesktopIDs:     []string{"vivaldi-snapshot"},
	},

	// Chromium family: Opera channels.
	{
		ID:                  "opera",
		Name:                "Opera",
		Variant:             browser.Chromium(browser.ChromiumStable),
		MacOSBundleIDs:      []string{"com.operasoftware.Opera"},
		WindowsRegistryKeys: []string{"Opera Stable"},
		LinuxDesktopIDs:     []string{"opera"},
	},
	{
		ID:                  "opera-beta",
		Name:                "Opera Beta",
		Variant:             browser.Chromium(browser.ChromiumBeta),
		MacOSBundleIDs:      []string{"com.operasoftware.OperaNext"},
		WindowsRegistryKeys: []string{"Opera Beta"},
		LinuxDesktopIDs:     []string{"opera-beta"},
	},
	{
		ID:                  "opera-developer",
		Name:                "Opera Developer",
		Variant:             browser.Chromium(browser.ChromiumDev),
		MacOSBundleIDs:      []string{"com.operasoftware.OperaDeveloper"},
		WindowsRegistryKeys: []string{"Opera Developer"},
		LinuxDesktopIDs:     []string{"opera-developer"},
	},
	{
		ID:                  "opera-gx",
		Name:                "Opera GX",
		Variant:             browser.Single(browser.FamilyChromium),
		MacOSBundleIDs:      []string{"com.operasoftware.OperaGX"},
		WindowsRegistryKeys: []string{"Opera GX Stable"},
	},

	// Chromium family: the open-source build.
	{
		ID:                  "chromium",
		Name:                "Chromium",
		Variant:             browser.Chromium(browser.ChromiumStable),
		MacOSBundleIDs:      []string{"org.chromium.Chromium"},
		WindowsRegistryKeys: []string{"Chromium"},
		LinuxDesktopIDs:     []string{"chromium", "chromium-browser"},
	},

	// Firefox family: Mozilla Firefox channels.
	{
		ID:                  "firefox",
		Name:                "Firefox",
		Variant:             browser.Firefox(browser.FirefoxStable),
		MacOSBundleIDs:      []string{"org.mozilla.firefox"},
		WindowsRegistryKeys: []string{"Firefox"},
		LinuxDesktopIDs:     []string{"firefox"},
	},
	{
		ID:                  "firefox-beta",
		Name:                "Firefox Beta",
		Variant:             browser.Firefox(browser.FirefoxBeta),
		MacOSBundleIDs:      []string{"org.mozilla.firefoxbeta"},
		WindowsRegistryKeys: []string{"Firefox Beta"},
		LinuxDesktopIDs:     []string{"firefox-beta"},
	},
	{
		ID:                  "firefox-dev",
		Name:                "Firefox Developer Edition",
		Variant:             browser.Firefox(browser.FirefoxDev),
		MacOSBundleIDs:      []string{"org.mozilla.firefoxdeveloperedition"},
		WindowsRegistryKeys: []string{"Firefox Developer Edition"},
		LinuxDesktopIDs:     []string{"firefox-developer-edition", "firefoxdeveloperedition"},
	},
	{
		ID:                  "firefox-nightly",
		Name:                "Firefox Nightly",
		Variant:             browser.Firefox(browser.FirefoxNightly),
		MacOSBundleIDs:      []string{"org.mozilla.nightly"},
		WindowsRegistryKeys: []string{"Firefox Nightly"},
		LinuxDesktopIDs:     []string{"firefox-nightly"},
	},
	{
		ID:                  "firefox-esr",
		Name:                "Firefox ESR",
		Variant:             browser.Firefox(browser.FirefoxESR),
		MacOSBundleIDs:      []string{"org.mozilla.firefoxesr"},
		WindowsRegistryKeys: []string{"Firefox ESR"},
		LinuxDesktopIDs:     []string{"firefox-esr"},
	},

	// Firefox family: forks.
	{
		ID:                  "librewolf",
		Name:                "LibreWolf",
		Variant:             browser.Single(browser.FamilyFirefox),
		MacOSBundleIDs:      []string{"io.gitlab.LibreWolf"},
		WindowsRegistryKeys: []string{"LibreWolf"},
		LinuxDesktopIDs:     []string{"librewolf", "io.gitlab.librewolf"},
	},
	{
		ID:                  "waterfox",
		Name:                "Waterfox",
		Variant:             browser.Single(browser.FamilyFirefox),
		MacOSBundleIDs:      []string{"net.waterfox.waterfox"},
		WindowsRegistryKeys: []string{"Waterfox"},
		LinuxDesktopIDs:     []string{"waterfox", "waterfox-current"},
	},
	{
		ID:                  "floorp",
		Name:                "Floorp",
		Variant:             browser.Single(browser.FamilyFirefox),
		MacOSBundleIDs:      []string{"one.ablaze.floorp"},
		WindowsRegistryKeys: []string{"Floorp"},
		LinuxDesktopIDs:     []string{"floorp", "one.ablaze.floorp"},
	},

	// WebKit family.
	{
		ID:             "safari",
		Name:           "Safari",
		Variant:        browser.WebKit(browser.WebKitStable),
		MacOSBundleIDs: []string{"com.apple.Safari"},
	},
	{
		ID:             "safari-preview",
		Name:           "Safari Technology Preview",
		Variant:        browser.WebKit(browser.WebKitTechnologyPreview),
		MacOSBundleIDs: []string{"com.apple.SafariTechnologyPreview"},
	},
	{
		ID:              "gnome-web",
		Name:            "GNOME Web",
		Variant:         browser.Single(browser.FamilyWebKit),
		LinuxDesktopIDs: []string{"org.gnome.Epiphany", "epiphany", "epiphany-browser"},
	},
}

// FindByID returns the metadata for a canonical browser ID, or nil.
// The table is small and static, so lookups are linear scans.
func FindByID(id browser.ID) *Meta {
	for i := range KnownBrowsers {
		if KnownBrowsers[i].ID == id {
			return &KnownBrowsers[i]
		}
	}
	return nil
}

// FindByBundleID returns the metadata matching a macOS bundle identifier,
// or nil.
func FindByBundleID(bundleID string) *Meta {
	for i := range KnownBrowsers {
		for _, candidate := range KnownBrowsers[i].MacOSBundleIDs {
			if candidate == bundleID {
				return &KnownBrowsers[i]
			}
		}
	}
	return nil
}

// FindByRegistryKey returns the metadata matching a Windows
// StartMenuInternet registry key name, or nil.
func FindByRegistryKey(key string) *Meta {
	for i := range KnownBrowsers {
		for _, candidate := range KnownBrowsers[i].WindowsRegistryKeys {
			if candidate == key {
				return &KnownBrowsers[i]
			}
		}
	}
	return nil
}

// FindByDesktopID returns the metadata matching a Linux desktop file
// basename (without extension), or nil. Several desktop IDs may alias the
// same entry.
func FindByDesktopID(desktopID string) *Meta {
	for i := range KnownBrowsers {
		for _, candidate := range KnownBrowsers[i].LinuxDesktopIDs {
			if candidate == desktopID {
				return &KnownBrowsers[i]
			}
		}
	}
	return nil
}
