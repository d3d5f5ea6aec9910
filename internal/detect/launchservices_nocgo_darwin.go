//go:build darwin && !cgo

package detect

// Without cgo there is no Launch Services bridge; detection degrades to
// empty results, matching the contract for a missing OS signal.

func allHandlersForScheme(string) []string {
	return nil
}

func defaultHandlerForScheme(string) (string, bool) {
	return "", false
}

func applicationPath(string) (string, bool) {
	return "", false
}
