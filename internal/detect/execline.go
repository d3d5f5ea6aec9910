package detect

import (
	"path/filepath"
	"strings"

	"github.com/google/shlex"
)

// execWrappers are command tokens that wrap the real executable in desktop
// Exec lines and are skipped during resolution.
var execWrappers = map[string]bool{
	"env":  true,
	"sh":   true,
	"bash": true,
	"-c":   true,
}

// resolveExecLine determines the executable a desktop Exec line invokes.
//
// The line is tokenized shell-style. Field-code placeholders (%u, %U, ...),
// environment assignments (KEY=value), and known wrapper commands (env,
// sh -c, bash) are skipped. The first remaining token decides the result:
//
//   - "flatpak run <app-id>" resolves to a synthetic flatpak invocation
//     carrying the app ID
//   - "snap run <name>" resolves to /snap/bin/<name>
//   - an absolute path is used directly
//   - anything else is resolved through lookPath, falling back to the bare
//     token when the search fails (unresolved, but still reported)
//
// An empty or untokenizable line yields "".
func resolveExecLine(execLine string, lookPath func(name string) (string, error)) string {
	tokens, err := shlex.Split(execLine)
	if err != nil {
		return ""
	}

	idx := 0
	viaShell := false
	for idx < len(tokens) && skippableExecToken(tokens[idx]) {
		if tokens[idx] == "-c" {
			viaShell = true
		}
		idx++
	}
	if idx >= len(tokens) {
		return ""
	}

	command := tokens[idx]
	args := fieldCodeFree(tokens[idx+1:])

	// A quoted -c argument carries a whole command line in one token
	// ("sh -c \"/usr/bin/firefox %u\""); split it again so field codes and
	// arguments do not end up inside the executable path.
	if viaShell && strings.ContainsAny(command, " \t") {
		inner, err := shlex.Split(command)
		if err != nil {
			return ""
		}
		inner = fieldCodeFree(inner)
		if len(inner) == 0 {
			return ""
		}
		command = inner[0]
	}

	switch command {
	case "flatpak":
		if len(args) >= 2 && args[0] == "run" {
			return "flatpak run " + args[1]
		}
	case "snap":
		if len(args) >= 2 && args[0] == "run" {
			return "/snap/bin/" + args[1]
		}
	}

	if filepath.IsAbs(command) {
		return command
	}
	if lookPath != nil {
		if resolved, err := lookPath(command); err == nil {
			return resolved
		}
	}
	return command
}

// isSandboxedExec reports whether a resolved executable is a Flatpak or
// Snap invocation form rather than a direct binary path.
func isSandboxedExec(executable string) bool {
	return strings.HasPrefix(executable, "flatpak run ") ||
		strings.HasPrefix(executable, "/snap/bin/")
}

func skippableExecToken(token string) bool {
	if strings.HasPrefix(token, "%") {
		return true
	}
	if execWrappers[token] {
		return true
	}
	return isEnvAssignment(token)
}

// isEnvAssignment matches KEY=value tokens preceding the command.
func isEnvAssignment(token string) bool {
	name, _, found := strings.Cut(token, "=")
	if !found || name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// fieldCodeFree filters out %-placeholder tokens.
func fieldCodeFree(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !strings.HasPrefix(t, "%") {
			out = append(out, t)
		}
	}
	return out
}
