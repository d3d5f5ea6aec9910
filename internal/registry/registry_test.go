package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/browserware/brw/internal/browser"
)

func TestKnownBrowsersNotEmpty(t *testing.T) {
	require.NotEmpty(t, KnownBrowsers)
}

func TestCanonicalIDsAreUnique(t *testing.T) {
	seen := make(map[browser.ID]bool, len(KnownBrowsers))
	for _, meta := range KnownBrowsers {
		assert.False(t, seen[meta.ID], "duplicate browser ID %q", meta.ID)
		seen[meta.ID] = true
	}
}

func TestEveryEntryReachableOnSomePlatform(t *testing.T) {
	for i := range KnownBrowsers {
		meta := &KnownBrowsers[i]
		assert.True(t,
			meta.AvailableOnMacOS() || meta.AvailableOnWindows() || meta.AvailableOnLinux(),
			"browser %q has no platform identifiers", meta.ID)
	}
}

func TestFindByID(t *testing.T) {
	chrome := FindByID("chrome")
	require.NotNil(t, chrome)
	assert.Equal(t, "Google Chrome", chrome.Name)
}

func TestFindByBundleID(t *testing.T) {
	chrome := FindByBundleID("com.google.Chrome")
	require.NotNil(t, chrome)
	assert.Equal(t, browser.ID("chrome"), chrome.ID)
}

func TestFindByRegistryKey(t *testing.T) {
	chrome := FindByRegistryKey("Google Chrome")
	require.NotNil(t, chrome)
	assert.Equal(t, browser.ID("chrome"), chrome.ID)
}

func TestFindByDesktopID(t *testing.T) {
	firefox := FindByDesktopID("firefox")
	require.NotNil(t, firefox)
	assert.Equal(t, browser.ID("firefox"), firefox.ID)
}

func TestFindNonexistentReturnsNil(t *testing.T) {
	assert.Nil(t, FindByID("nonexistent-browser"))
	assert.Nil(t, FindByBundleID("com.nonexistent.browser"))
	assert.Nil(t, FindByRegistryKey("Nonexistent Browser"))
	assert.Nil(t, FindByDesktopID("nonexistent-browser"))
}

func TestFamiliesDerivedFromVariants(t *testing.T) {
	tests := []struct {
		id   browser.ID
		want browser.Family
	}{
		{id: "chrome", want: browser.FamilyChromium},
		{id: "firefox", want: browser.FamilyFirefox},
		{id: "safari", want: browser.FamilyWebKit},
		{id: "arc", want: browser.FamilyChromium},
		{id: "librewolf", want: browser.FamilyFirefox},
		{id: "gnome-web", want: browser.FamilyWebKit},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			meta := FindByID(tt.id)
			require.NotNil(t, meta)
			assert.Equal(t, tt.want, meta.Family())
		})
	}
}

func TestPlatformAvailability(t *testing.T) {
	safari := FindByID("safari")
	require.NotNil(t, safari)
	assert.True(t, safari.AvailableOnMacOS())
	assert.False(t, safari.AvailableOnWindows())
	assert.False(t, safari.AvailableOnLinux())

	gnomeWeb := FindByID("gnome-web")
	require.NotNil(t, gnomeWeb)
	assert.False(t, gnomeWeb.AvailableOnMacOS())
	assert.False(t, gnomeWeb.AvailableOnWindows())
	assert.True(t, gnomeWeb.AvailableOnLinux())

	chrome := FindByID("chrome")
	require.NotNil(t, chrome)
	assert.True(t, chrome.AvailableOnMacOS())
	assert.True(t, chrome.AvailableOnWindows())
	assert.True(t, chrome.AvailableOnLinux())
}

func TestDesktopIDAliasesResolveToSameEntry(t *testing.T) {
	byName := FindByDesktopID("google-chrome")
	byStable := FindByDesktopID("google-chrome-stable")
	require.NotNil(t, byName)
	require.NotNil(t, byStable)
	assert.Equal(t, byName.ID, byStable.ID)
}
