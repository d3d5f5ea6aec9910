// Package detect discovers installed web browsers and resolves the system's
// default HTTP/HTTPS handler.
//
// Detection is best-effort by contract: no entry point ever returns an
// error. OS queries that fail, descriptor files that do not parse, and
// subprocesses that misbehave all degrade to empty or partial results so
// that detection never aborts a caller's larger workflow.
//
// Each supported operating system has its own detector behind the Detector
// interface; unsupported targets get a no-op fallback that reports nothing.
// Calls are synchronous and stateless: every call re-queries the live OS, so
// repeated calls may disagree when the installed set changes in between.
package detect

import (
	"log/slog"

	"github.com/browserware/brw/internal/browser"
)

// Detector is the capability every platform implementation provides.
//
// Both methods follow the never-fail contract: when the OS signal is
// unavailable they return an empty list or nil, never an error.
type Detector interface {
	// Browsers enumerates the installed browsers the platform reports.
	Browsers() []browser.Browser

	// Default resolves the OS-configured default HTTP/HTTPS handler,
	// or nil when none can be determined.
	Default() *browser.Browser
}

// active is the detector for the running platform, selected once at process
// start. Tests may swap it to inject fixtures.
var active Detector = newDetector()

// Browsers returns all detected browsers, deduplicated by canonical ID with
// the first occurrence winning. Order beyond that is unspecified and must
// not be relied upon by callers.
func Browsers() []browser.Browser {
	found := active.Browsers()
	browsers := dedupe(found)
	slog.Debug("browser detection complete", "found", len(found), "unique", len(browsers))
	return browsers
}

// Find returns the detected browser with the given canonical ID, or nil.
// This is a full scan over Browsers(); callers needing repeated lookups
// should cache the list themselves.
func Find(id browser.ID) *browser.Browser {
	for _, b := range Browsers() {
		if b.ID == id {
			return &b
		}
	}
	return nil
}

// Default returns the system default browser, or nil when the platform
// cannot determine one.
func Default() *browser.Browser {
	b := active.Default()
	if b == nil {
		slog.Debug("no default browser detected")
		return nil
	}
	slog.Debug("default browser detected", "id", b.ID, "name", b.Name)
	return b
}

// ByFamily returns the detected browsers whose engine family equals f,
// preserving their relative order.
func ByFamily(f browser.Family) []browser.Browser {
	var matched []browser.Browser
	for _, b := range Browsers() {
		if b.Family() == f {
			matched = append(matched, b)
		}
	}
	return matched
}

// dedupe drops later duplicates of an ID. The same browser is commonly
// registered under several OS identifiers.
func dedupe(in []browser.Browser) []browser.Browser {
	seen := make(map[browser.ID]bool, len(in))
	out := make([]browser.Browser, 0, len(in))
	for _, b := range in {
		if seen[b.ID] {
			continue
		}
		seen[b.ID] = true
		out = append(out, b)
	}
	return out
}
