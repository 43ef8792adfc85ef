package utils

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonSlugRe    = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRunRe  = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL-safe slug candidate from an article title.
// Pure and deterministic; collision handling belongs to the caller - the
// article service fails with a duplicate error instead of auto-suffixing.
func GenerateSlug(title string) string {
	// Step 1: Lowercase
	// "Hello World" -> "hello world"
	slug := strings.ToLower(strings.TrimSpace(title))

	// Step 2: Replace whitespace runs with a single hyphen
	// "hello   world" -> "hello-world"
	slug = whitespaceRe.ReplaceAllString(slug, "-")

	// Step 3: Strip everything outside a-z, 0-9, hyphens
	// "hello-world!!" -> "hello-world"
	slug = nonSlugRe.ReplaceAllString(slug, "")

	// Step 4: Collapse consecutive hyphens
	slug = hyphenRunRe.ReplaceAllString(slug, "-")

	// Step 5: Trim leading/trailing hyphens
	return strings.Trim(slug, "-")
}
