// Package naming builds multiplexer session names from a project, an intent
// and an optional tag.
package naming

import (
	"regexp"
	"strings"
)

var (
	invalidSlugChars = regexp.MustCompile(`[^a-z0-9-]`)
	dashRuns         = regexp.MustCompile(`-{2,}`)
)

// Sanitize converts arbitrary text to a slug made of [a-z0-9-].
// "My App!" -> "my-app"
//
// The steps run in a fixed order: lowercase, replace invalid characters,
// collapse dash runs, then strip one leading and one trailing dash.
func Sanitize(s string) string {
	s = strings.ToLower(s)
	s = invalidSlugChars.ReplaceAllString(s, "-")
	s = dashRuns.ReplaceAllString(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimSuffix(s, "-")
	return s
}

// truncate cuts s to at most n bytes. Inputs are sanitized slugs, so bytes
// and characters coincide.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
