// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package endpoint

import (
	"net/url"
	"strings"
)

// Default is the public Star Wars character search API
const Default = "https://star-wars-character-search.glitch.me/api"

// Resolve returns base with any trailing slash removed, or Default when empty
func Resolve(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return Default
	}
	return strings.TrimRight(base, "/")
}

// Characters returns the character list URL
func Characters(base string) string {
	return Resolve(base) + "/characters"
}

// Character returns the URL for a single character, escaping the id
func Character(base, id string) string {
	return Characters(base) + "/" + url.PathEscape(id)
}
