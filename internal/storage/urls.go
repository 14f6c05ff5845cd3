// Package storage owns the public URL scheme of the asset storage layer.
// Image paths are persisted either as absolute URLs, as already-public
// /storage/ paths, or as bare relative keys that need the prefix.
package storage

import "strings"

// PublicPrefix is the URL prefix under which stored assets are served.
const PublicPrefix = "/storage/"

// CanonicalURL normalizes a stored image reference for rendering. Absolute
// URLs and already-prefixed paths pass through unchanged; anything else gets
// the public prefix. Empty input stays the empty string. The function is
// idempotent; applying it twice never double-prefixes.
func CanonicalURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http") {
		return path
	}
	if strings.HasPrefix(path, PublicPrefix) {
		return path
	}
	return PublicPrefix + path
}
