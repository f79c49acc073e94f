package handlers

import "strings"

// PathSegments :
// Splits a request path into its `/`-separated tokens, mirroring how
// the dispatcher's routes are themselves tokenized. A handler whose
// route is `games/[0-9]+/commands` reads the game id back out with
// `PathSegments(r.URL.Path)[1]` rather than a separate named-capture
// mechanism the router doesn't provide.
func PathSegments(path string) []string {
	path = strings.TrimPrefix(path, "/")
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
