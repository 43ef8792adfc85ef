package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"extra whitespace and punctuation", "Hello   World!!", "hello-world"},
		{"mixed case", "Go Is Great", "go-is-great"},
		{"numbers kept", "Top 10 Posts of 2024", "top-10-posts-of-2024"},
		{"leading and trailing spaces", "  spaced out  ", "spaced-out"},
		{"special characters stripped", "C++ & Go: a (biased) comparison?", "c-go-a-biased-comparison"},
		{"consecutive separators collapse", "a -- b --- c", "a-b-c"},
		{"tabs and newlines", "line\tone\nline two", "line-one-line-two"},
		{"only specials", "!!!???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateSlug(tt.title))
		})
	}
}

func TestGenerateSlugDeterministic(t *testing.T) {
	titles := []string{"Hello World", "Top 10 Posts of 2024", "  weird   Input!! "}
	for _, title := range titles {
		first := GenerateSlug(title)
		second := GenerateSlug(title)
		assert.Equal(t, first, second)
	}
}

func TestGenerateSlugShape(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	titles := []string{
		"Hello World",
		"Hello   World!!",
		"UPPER lower 123",
		"--edge--case--",
		"a.b.c.d",
	}

	for _, title := range titles {
		slug := GenerateSlug(title)
		if slug == "" {
			continue
		}
		// Only lowercase alphanumerics and single hyphens,
		// no leading/trailing hyphen.
		assert.Regexp(t, valid, slug, "title %q produced %q", title, slug)
	}
}
