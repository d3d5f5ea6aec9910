package detect

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/browserware/brw/internal/browser"
	"github.com/browserware/brw/internal/registry"
)

// desktopEntry is the parsed subset of a freedesktop.org .desktop file that
// detection needs. ID is the file basename without the .desktop extension.
type desktopEntry struct {
	ID         string
	Name       string
	Exec       string
	MimeTypes  []string
	Categories []string
}

var errNotDesktopApplication = errors.New("desktop entry has neither Name nor Exec")

// parseDesktopFile reads and parses a single .desktop file.
func parseDesktopFile(path string) (*desktopEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening desktop file")
	}
	defer f.Close()

	id := strings.TrimSuffix(filepath.Base(path), ".desktop")
	return parseDesktopEntry(id, f)
}

// parseDesktopEntry parses the INI-like desktop entry format. Only the
// [Desktop Entry] section is read; unknown keys, other sections, comments,
// and blank lines are ignored. An entry missing both Name and Exec is
// rejected as unparsable.
func parseDesktopEntry(id string, r io.Reader) (*desktopEntry, error) {
	entry := &desktopEntry{ID: id}
	inDesktopEntry := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			inDesktopEntry = line == "[Desktop Entry]"
			continue
		}
		if !inDesktopEntry {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "Name":
			entry.Name = value
		case "Exec":
			entry.Exec = value
		case "MimeType":
			entry.MimeTypes = splitList(value)
		case "Categories":
			entry.Categories = splitList(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading desktop file")
	}

	if entry.Name == "" && entry.Exec == "" {
		return nil, errNotDesktopApplication
	}
	return entry, nil
}

// splitList splits a ;-delimited desktop list value, dropping the trailing
// empty element the format's terminating semicolon produces.
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ";") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// browserMimeTypes are the MIME declarations that mark an application as a
// web browser.
var browserMimeTypes = map[string]bool{
	"x-scheme-handler/http":  true,
	"x-scheme-handler/https": true,
	"text/html":              true,
}

// isBrowserEntry reports whether a desktop entry describes a web browser:
// either it claims an HTTP(S)/HTML MIME type or it is categorized as
// WebBrowser.
func isBrowserEntry(e *desktopEntry) bool {
	for _, mime := range e.MimeTypes {
		if browserMimeTypes[mime] {
			return true
		}
	}
	for _, category := range e.Categories {
		if category == "WebBrowser" {
			return true
		}
	}
	return false
}

// desktopScanner turns .desktop files into Browser values. The executable
// lookup and version query are injectable so the scanner can be exercised
// without a live system.
type desktopScanner struct {
	lookPath func(name string) (string, error)
	version  func(executable string) string
}

// scan walks the given directories for browser desktop entries. Unreadable
// directories and unparsable files are skipped; entries resolving to an
// already-seen canonical ID are dropped, since the same browser is commonly
// registered under several search directories.
func (s *desktopScanner) scan(dirs []string) []browser.Browser {
	var browsers []browser.Browser
	seen := make(map[browser.ID]bool)

	for _, dir := range dirs {
		files, err := os.ReadDir(dir)
		if err != nil {
			slog.Debug("skipping unreadable applications directory", "dir", dir, "error", err)
			continue
		}

		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), ".desktop") {
				continue
			}

			entry, err := parseDesktopFile(filepath.Join(dir, file.Name()))
			if err != nil {
				slog.Debug("skipping unparsable desktop file", "file", file.Name(), "error", err)
				continue
			}
			if !isBrowserEntry(entry) {
				continue
			}

			b := s.browserFor(entry)
			if seen[b.ID] {
				continue
			}
			seen[b.ID] = true
			browsers = append(browsers, b)
		}
	}
	return browsers
}

// browserFor builds a Browser from one desktop entry, enriching from the
// registry when the desktop ID is known.
func (s *desktopScanner) browserFor(e *desktopEntry) browser.Browser {
	executable := resolveExecLine(e.Exec, s.lookPath)

	// Flatpak and Snap invocations go through a sandbox wrapper; running
	// them for a version banner is not reliable, so version stays absent.
	version := ""
	if executable != "" && !isSandboxedExec(executable) && s.version != nil {
		version = s.version(executable)
	}

	if meta := registry.FindByDesktopID(e.ID); meta != nil {
		return browser.New(meta.ID, meta.Name, executable).
			WithVariant(meta.Variant).
			WithVersion(version)
	}

	name := e.Name
	if name == "" {
		name = e.ID
	}
	return browser.New(browser.ID(e.ID), name, executable).
		WithVariant(browser.Single(browser.FamilyOther)).
		WithVersion(version)
}

// matchDefaultDesktopID finds the detected browser the desktop's default
// web browser setting refers to. Known browsers match through registry
// aliases; unknown ones only through literal desktop-ID equality.
func matchDefaultDesktopID(browsers []browser.Browser, desktopID string) *browser.Browser {
	target := browser.ID(desktopID)
	if meta := registry.FindByDesktopID(desktopID); meta != nil {
		target = meta.ID
	}
	for _, b := range browsers {
		if b.ID == target {
			return &b
		}
	}
	return nil
}
