package browser

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	b := New("chrome", "Google Chrome", "/usr/bin/google-chrome")

	if b.ID != "chrome" {
		t.Errorf("ID = %q, want %q", b.ID, "chrome")
	}
	if b.Family() != FamilyOther {
		t.Errorf("Family() = %q, want %q before a variant is set", b.Family(), FamilyOther)
	}
	if b.Version != "" {
		t.Errorf("Version = %q, want empty", b.Version)
	}
}

func TestBuilderHelpers(t *testing.T) {
	b := New("chrome", "Google Chrome", "/usr/bin/google-chrome").
		WithVariant(Chromium(ChromiumStable)).
		WithVersion("120.0.6099.109").
		WithBundleID("com.google.Chrome")

	if b.Family() != FamilyChromium {
		t.Errorf("Family() = %q, want %q", b.Family(), FamilyChromium)
	}
	if b.Version != "120.0.6099.109" {
		t.Errorf("Version = %q, want %q", b.Version, "120.0.6099.109")
	}
	if b.BundleID != "com.google.Chrome" {
		t.Errorf("BundleID = %q, want %q", b.BundleID, "com.google.Chrome")
	}
}

func TestWithVersionIgnoresEmpty(t *testing.T) {
	b := New("firefox", "Firefox", "/usr/bin/firefox").
		WithVersion("120.0").
		WithVersion("")

	if b.Version != "120.0" {
		t.Errorf("Version = %q, want %q", b.Version, "120.0")
	}
}

func TestFamilyDerivedFromVariant(t *testing.T) {
	arc := New("arc", "Arc", "/Applications/Arc.app").
		WithVariant(Single(FamilyChromium))
	if arc.Family() != FamilyChromium {
		t.Errorf("Arc Family() = %q, want %q", arc.Family(), FamilyChromium)
	}

	nightly := New("firefox-nightly", "Firefox Nightly", "/usr/bin/firefox-nightly").
		WithVariant(Firefox(FirefoxNightly))
	if nightly.Family() != FamilyFirefox {
		t.Errorf("Nightly Family() = %q, want %q", nightly.Family(), FamilyFirefox)
	}
}

func TestBrowserJSONRoundTrip(t *testing.T) {
	browsers := []Browser{
		New("firefox", "Firefox", "/usr/bin/firefox").
			WithVariant(Firefox(FirefoxStable)).
			WithVersion("120.0"),
		New("safari", "Safari", "/Applications/Safari.app/Contents/MacOS/Safari").
			WithVariant(WebKit(WebKitStable)).
			WithBundleID("com.apple.Safari"),
		New("com.example.Unknown", "Unknown", ""),
	}

	for _, b := range browsers {
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", b.ID, err)
		}
		var got Browser
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s): %v", data, err)
		}
		if got != b {
			t.Errorf("round trip changed %+v to %+v", b, got)
		}
	}
}

func TestBrowserJSONOmitsAbsentFields(t *testing.T) {
	b := New("epiphany", "GNOME Web", "/usr/bin/epiphany").
		WithVariant(Single(FamilyWebKit))

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Contains(string(data), "version") {
		t.Errorf("absent version serialized: %s", data)
	}
	if strings.Contains(string(data), "bundle_id") {
		t.Errorf("absent bundle_id serialized: %s", data)
	}
}
