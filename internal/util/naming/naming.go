package naming

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	slugRegex    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slug converts s into a slug. It returns an empty string when s contains no
// alphanumeric characters.
func Slug(s string) string {
	s = nonSlugChars.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}

// IsSlug reports whether s is already a valid slug.
func IsSlug(s string) bool {
	return slugRegex.MatchString(s)
}

// FromDirectory returns the slug of the last element of dir.
func FromDirectory(dir string) string {
	if dir == "" {
		return ""
	}
	return Slug(filepath.Base(filepath.Clean(dir)))
}

// Suffixed joins a base name and a suffix with a hyphen, e.g. a default
// database server name derived from a project.
func Suffixed(base, suffix string) string {
	if base == "" {
		return suffix
	}
	return Slug(base + "-" + suffix)
}
