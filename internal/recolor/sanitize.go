package recolor

import (
	"regexp"
	"strings"
)

var (
	// The runes unicode.IsSpace accepts, NBSP and \v included.
	whitespaceRun = regexp.MustCompile(`[\s\v\x{85}\p{Z}]+`)
	disallowedKey = regexp.MustCompile(`[^a-z0-9_-]`)
)

// SanitizeID turns an untrusted character identifier into a template key.
// The result only ever contains [a-z0-9_-], so it can be joined onto a base
// directory without escaping it. An empty result means no template can match.
func SanitizeID(raw string) string {
	key := strings.ToLower(raw)
	key = whitespaceRun.ReplaceAllString(key, "_")
	return disallowedKey.ReplaceAllString(key, "")
}
