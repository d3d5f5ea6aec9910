package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/browserware/brw/internal/browser"
)

// stubDetector serves a fixed browser list in place of live OS queries.
type stubDetector struct {
	browsers []browser.Browser
	def      *browser.Browser
}

func (s stubDetector) Browsers() []browser.Browser { return s.browsers }
func (s stubDetector) Default() *browser.Browser   { return s.def }

func withStub(t *testing.T, s stubDetector) {
	t.Helper()
	prev := active
	active = s
	t.Cleanup(func() { active = prev })
}

func mixedBrowsers() []browser.Browser {
	return []browser.Browser{
		browser.New("chrome", "Google Chrome", "/usr/bin/google-chrome").
			WithVariant(browser.Chromium(browser.ChromiumStable)),
		browser.New("firefox", "Firefox", "/usr/bin/firefox").
			WithVariant(browser.Firefox(browser.FirefoxStable)),
		browser.New("brave", "Brave Browser", "/usr/bin/brave").
			WithVariant(browser.Chromium(browser.ChromiumStable)),
		browser.New("safari", "Safari", "/Applications/Safari.app/Contents/MacOS/Safari").
			WithVariant(browser.WebKit(browser.WebKitStable)),
		browser.New("arc", "Arc", "/Applications/Arc.app/Contents/MacOS/Arc").
			WithVariant(browser.Single(browser.FamilyChromium)),
		browser.New("acme", "Acme Browser", "/opt/acme/browser"),
	}
}

func TestBrowsersDeduplicatesByID(t *testing.T) {
	dup := append(mixedBrowsers(), mixedBrowsers()[0], mixedBrowsers()[1])
	withStub(t, stubDetector{browsers: dup})

	got := Browsers()
	require.Len(t, got, len(mixedBrowsers()))

	seen := make(map[browser.ID]bool)
	for _, b := range got {
		assert.False(t, seen[b.ID], "duplicate ID %q in result", b.ID)
		seen[b.ID] = true
	}
}

func TestByFamilyFiltersExactlyAndInOrder(t *testing.T) {
	withStub(t, stubDetector{browsers: mixedBrowsers()})

	chromium := ByFamily(browser.FamilyChromium)
	var ids []browser.ID
	for _, b := range chromium {
		assert.Equal(t, browser.FamilyChromium, b.Family())
		ids = append(ids, b.ID)
	}
	// Exactly the Chromium subset, in original relative order.
	assert.Equal(t, []browser.ID{"chrome", "brave", "arc"}, ids)

	webkit := ByFamily(browser.FamilyWebKit)
	require.Len(t, webkit, 1)
	assert.Equal(t, browser.ID("safari"), webkit[0].ID)

	other := ByFamily(browser.FamilyOther)
	require.Len(t, other, 1)
	assert.Equal(t, browser.ID("acme"), other[0].ID)
}

func TestFind(t *testing.T) {
	withStub(t, stubDetector{browsers: mixedBrowsers()})

	found := Find("firefox")
	require.NotNil(t, found)
	assert.Equal(t, "Firefox", found.Name)

	assert.Nil(t, Find("nonexistent-browser-xyz"))
}

func TestDefault(t *testing.T) {
	def := browser.New("firefox", "Firefox", "/usr/bin/firefox").
		WithVariant(browser.Firefox(browser.FirefoxStable))

	withStub(t, stubDetector{browsers: mixedBrowsers(), def: &def})
	got := Default()
	require.NotNil(t, got)
	assert.Equal(t, browser.ID("firefox"), got.ID)

	withStub(t, stubDetector{browsers: mixedBrowsers()})
	assert.Nil(t, Default())
}

func TestActiveDetectorNeverPanics(t *testing.T) {
	// Whatever platform the tests run on, the live detector must satisfy
	// the never-fail contract.
	_ = Browsers()
	_ = Default()
}
