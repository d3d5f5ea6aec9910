//go:build darwin

package detect

import (
	"context"
	"log/slog"

	"github.com/browserware/brw/internal/browser"
	"github.com/browserware/brw/internal/logging"
)

func newDetector() Detector {
	return darwinDetector{}
}

// darwinDetector enumerates HTTPS URL handlers through Launch Services and
// enriches them from the app bundles' Info.plist manifests.
type darwinDetector struct{}

func (darwinDetector) Browsers() []browser.Browser {
	bundleIDs := allHandlersForScheme("https")
	if len(bundleIDs) == 0 {
		slog.Debug("launch services returned no https handlers")
		return nil
	}

	browsers := make([]browser.Browser, 0, len(bundleIDs))
	for _, bundleID := range bundleIDs {
		appPath, ok := applicationPath(bundleID)
		if !ok {
			trace("handler has no resolvable application", "bundle_id", bundleID)
			continue
		}
		if isNestedApp(appPath) {
			trace("skipping nested app bundle", "bundle_id", bundleID, "path", appPath)
			continue
		}
		browsers = append(browsers, browserFromBundle(bundleID, appPath))
	}
	return browsers
}

func (darwinDetector) Default() *browser.Browser {
	bundleID, ok := defaultHandlerForScheme("https")
	if !ok {
		return nil
	}
	appPath, ok := applicationPath(bundleID)
	if !ok {
		return nil
	}
	// A nested default is discarded rather than substituted.
	if isNestedApp(appPath) {
		slog.Debug("default handler is a nested app bundle", "bundle_id", bundleID, "path", appPath)
		return nil
	}
	b := browserFromBundle(bundleID, appPath)
	return &b
}

func trace(msg string, args ...any) {
	slog.Log(context.Background(), logging.LevelTrace, msg, args...)
}
