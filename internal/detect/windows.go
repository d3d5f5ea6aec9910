//go:build windows

package detect

import (
	"log/slog"

	winregistry "golang.org/x/sys/windows/registry"

	"github.com/browserware/brw/internal/browser"
	"github.com/browserware/brw/internal/registry"
)

func newDetector() Detector {
	return windowsDetector{}
}

// windowsDetector enumerates browsers registered under the
// StartMenuInternet client key and resolves the default browser from the
// per-user URL-association override.
type windowsDetector struct{}

const startMenuInternetKey = `SOFTWARE\Clients\StartMenuInternet`

func (windowsDetector) Browsers() []browser.Browser {
	var browsers []browser.Browser
	seen := make(map[string]bool)

	// Machine-wide registrations first; per-user entries only add key names
	// not already seen.
	for _, root := range []winregistry.Key{winregistry.LOCAL_MACHINE, winregistry.CURRENT_USER} {
		for _, keyName := range clientKeyNames(root) {
			if seen[keyName] {
				continue
			}
			seen[keyName] = true

			b, ok := browserFromClientKey(root, keyName)
			if !ok {
				continue
			}
			browsers = append(browsers, b)
		}
	}
	return browsers
}

func (windowsDetector) Default() *browser.Browser {
	key, err := winregistry.OpenKey(winregistry.CURRENT_USER,
		`SOFTWARE\Microsoft\Windows\Shell\Associations\UrlAssociations\https\UserChoice`,
		winregistry.QUERY_VALUE)
	if err != nil {
		slog.Debug("no https UserChoice key", "error", err)
		return nil
	}
	defer key.Close()

	progID, _, err := key.GetStringValue("ProgId")
	if err != nil {
		return nil
	}

	id := browserIDForProgID(progID)
	if id == "" {
		slog.Debug("unrecognized default-browser ProgId", "prog_id", progID)
		return nil
	}

	for _, b := range (windowsDetector{}).Browsers() {
		if b.ID == id {
			return &b
		}
	}
	return nil
}

// clientKeyNames lists the StartMenuInternet subkey names under one root.
// A missing key means no registrations, not an error.
func clientKeyNames(root winregistry.Key) []string {
	key, err := winregistry.OpenKey(root, startMenuInternetKey, winregistry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil
	}
	defer key.Close()

	names, err := key.ReadSubKeyNames(-1)
	if err != nil {
		return nil
	}
	return names
}

// browserFromClientKey builds a Browser from one StartMenuInternet
// registration. Entries without a usable open command are skipped.
func browserFromClientKey(root winregistry.Key, keyName string) (browser.Browser, bool) {
	clientKey, err := winregistry.OpenKey(root, startMenuInternetKey+`\`+keyName, winregistry.QUERY_VALUE)
	if err != nil {
		return browser.Browser{}, false
	}
	defer clientKey.Close()

	displayName, _, err := clientKey.GetStringValue("")
	if err != nil {
		displayName = keyName
	}

	commandKey, err := winregistry.OpenKey(root,
		startMenuInternetKey+`\`+keyName+`\shell\open\command`, winregistry.QUERY_VALUE)
	if err != nil {
		return browser.Browser{}, false
	}
	defer commandKey.Close()

	command, _, err := commandKey.GetStringValue("")
	if err != nil {
		return browser.Browser{}, false
	}

	executable := parseWindowsCommand(command)
	if executable == "" {
		return browser.Browser{}, false
	}

	if meta := registry.FindByRegistryKey(keyName); meta != nil {
		return browser.New(meta.ID, meta.Name, executable).
			WithVariant(meta.Variant), true
	}

	return browser.New(browser.ID(keyName), displayName, executable).
		WithVariant(browser.Single(browser.FamilyOther)), true
}
