//go:build !darwin && !linux && !windows

package detect

import (
	"log/slog"

	"github.com/browserware/brw/internal/browser"
)

func newDetector() Detector {
	return fallbackDetector{}
}

// fallbackDetector satisfies the never-fail contract on targets with no OS
// signal: it always succeeds with empty results.
type fallbackDetector struct{}

func (fallbackDetector) Browsers() []browser.Browser {
	slog.Warn("browser detection is not supported on this platform")
	return nil
}

func (fallbackDetector) Default() *browser.Browser {
	slog.Warn("default browser detection is not supported on this platform")
	return nil
}
