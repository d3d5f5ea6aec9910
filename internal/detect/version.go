package detect

import (
	"os/exec"
	"strings"
	"unicode"
	"unicode/utf8"
)

// queryVersion runs the browser executable with --version and extracts a
// version string from its output. A missing binary, non-zero exit, or
// non-UTF8 output all yield "": absence of a version is never an error.
//
// The call blocks until the child exits; there is no timeout. An
// unresponsive browser will stall detection here.
func queryVersion(executable string) string {
	out, err := exec.Command(executable, "--version").Output()
	if err != nil {
		return ""
	}
	if !utf8.Valid(out) {
		return ""
	}
	return parseVersionOutput(string(out))
}

// parseVersionOutput finds the first token, across all output lines, that
// begins with a digit and contains a dot, with trailing non-digit/non-dot
// characters trimmed. "Chromium 120.0.6099.109 built on Debian 12.4" yields
// "120.0.6099.109"; the first dotted numeric token wins, not the last.
func parseVersionOutput(out string) string {
	for _, line := range strings.Split(out, "\n") {
		for _, token := range strings.Fields(line) {
			r, _ := utf8.DecodeRuneInString(token)
			if !unicode.IsDigit(r) {
				continue
			}
			token = strings.TrimRightFunc(token, func(r rune) bool {
				return !unicode.IsDigit(r) && r != '.'
			})
			if strings.Contains(token, ".") {
				return token
			}
		}
	}
	return ""
}
