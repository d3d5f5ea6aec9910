// Package browser defines the data model shared by all detection code:
// browser identities, engine families, release channels, and the Browser
// record returned to callers.
//
// Values in this package carry no behavior beyond derivation and
// serialization. A Browser is assembled builder-style during detection and
// never mutated afterwards.
package browser

// ID is the canonical, platform-independent identity of a browser.
// It is stable across platforms and releases and is the primary key used in
// configuration files, CLI arguments, and caching layers.
type ID string

// String returns the raw identifier.
func (id ID) String() string {
	return string(id)
}

// Family is a browser rendering-engine family.
type Family string

// The closed set of engine families. Every Variant maps to exactly one of
// these; unknown engines map to FamilyOther.
const (
	FamilyChromium Family = "chromium"
	FamilyFirefox  Family = "firefox"
	FamilyWebKit   Family = "webkit"
	FamilyOther    Family = "other"
)

// String returns the lowercase family name.
func (f Family) String() string {
	return string(f)
}

// Browser describes one installed browser as observed at detection time.
//
// Executable may be empty when the platform could not determine it, and
// Version is best-effort and frequently absent. Instances are constructed
// fresh on every detection call; nothing is cached between calls.
type Browser struct {
	// ID is the canonical identifier ("chrome", "firefox-nightly", ...).
	// Unknown browsers carry an ID derived from the raw platform identifier.
	ID ID `json:"id"`

	// Name is the human-readable display name.
	Name string `json:"name"`

	// Variant encodes the engine family and release channel.
	Variant Variant `json:"variant"`

	// Version is the installed version string, when it could be determined.
	Version string `json:"version,omitempty"`

	// Executable is the path to the browser binary. It may be unverified or
	// empty; existence is advisory, not load-bearing.
	Executable string `json:"executable"`

	// BundleID is the macOS bundle identifier, when applicable.
	BundleID string `json:"bundle_id,omitempty"`
}

// New creates a Browser with minimal information and the default variant
// (single-channel, unknown engine).
func New(id ID, name, executable string) Browser {
	return Browser{
		ID:         id,
		Name:       name,
		Variant:    Single(FamilyOther),
		Executable: executable,
	}
}

// Family returns the engine family, derived from the variant.
func (b Browser) Family() Family {
	return b.Variant.Family()
}

// WithVariant returns a copy of b with the given variant.
func (b Browser) WithVariant(v Variant) Browser {
	b.Variant = v
	return b
}

// WithVersion returns a copy of b with the given version string.
// An empty version leaves b unchanged.
func (b Browser) WithVersion(version string) Browser {
	if version != "" {
		b.Version = version
	}
	return b
}

// WithBundleID returns a copy of b with the given macOS bundle identifier.
func (b Browser) WithBundleID(bundleID string) Browser {
	b.BundleID = bundleID
	return b
}
