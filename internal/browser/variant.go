package browser

// ChromiumChannel is a release channel of a Chromium-based browser.
type ChromiumChannel string

// Chromium release channels.
const (
	ChromiumStable ChromiumChannel = "stable"
	ChromiumBeta   ChromiumChannel = "beta"
	ChromiumDev    ChromiumChannel = "dev"
	ChromiumCanary ChromiumChannel = "canary"
)

// FirefoxChannel is a release channel of a Firefox-based browser.
type FirefoxChannel string

// Firefox release channels.
const (
	FirefoxStable  FirefoxChannel = "stable"
	FirefoxBeta    FirefoxChannel = "beta"
	FirefoxDev     FirefoxChannel = "dev"
	FirefoxNightly FirefoxChannel = "nightly"
	FirefoxESR     FirefoxChannel = "esr"
)

// WebKitChannel is a release channel of a WebKit-based browser.
type WebKitChannel string

// WebKit release channels.
const (
	WebKitStable            WebKitChannel = "stable"
	WebKitTechnologyPreview WebKitChannel = "technology-preview"
)

// Variant type tags. These appear as the "type" field in the serialized form.
const (
	variantChromium = "chromium"
	variantFirefox  = "firefox"
	variantWebKit   = "webkit"
	variantSingle   = "single"
)

// Variant identifies a browser's engine family together with its release
// channel. It is a tagged union: the Type field selects the engine, and Value
// carries either the channel name or, for single-channel browsers, the
// engine family.
//
// Serialized form: {"type": "chromium", "value": "beta"} or
// {"type": "single", "value": "firefox"}. Construct variants through
// Chromium, Firefox, WebKit, or Single rather than struct literals.
type Variant struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Chromium returns the variant for a Chromium-based browser on the given
// release channel.
func Chromium(ch ChromiumChannel) Variant {
	return Variant{Type: variantChromium, Value: string(ch)}
}

// Firefox returns the variant for a Firefox-based browser on the given
// release channel.
func Firefox(ch FirefoxChannel) Variant {
	return Variant{Type: variantFirefox, Value: string(ch)}
}

// WebKit returns the variant for a WebKit-based browser on the given
// release channel.
func WebKit(ch WebKitChannel) Variant {
	return Variant{Type: variantWebKit, Value: string(ch)}
}

// Single returns the variant for a browser with exactly one release line.
// The family is preserved for engine compatibility (e.g. Arc is Chromium).
func Single(f Family) Variant {
	return Variant{Type: variantSingle, Value: string(f)}
}

// Family returns the engine family for this variant. The mapping is total:
// variants with an unrecognized type report FamilyOther.
func (v Variant) Family() Family {
	switch v.Type {
	case variantChromium:
		return FamilyChromium
	case variantFirefox:
		return FamilyFirefox
	case variantWebKit:
		return FamilyWebKit
	case variantSingle:
		switch Family(v.Value) {
		case FamilyChromium, FamilyFirefox, FamilyWebKit:
			return Family(v.Value)
		}
	}
	return FamilyOther
}

// Channel returns the canonical channel name. Single-channel browsers always
// report "stable".
func (v Variant) Channel() string {
	if v.Type == variantSingle || v.Value == "" {
		return "stable"
	}
	return v.Value
}

// String returns the canonical channel name.
func (v Variant) String() string {
	return v.Channel()
}
