package utils

import (
	"regexp"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
)

var slugNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the public route key from a property title. Accented and
// non-Latin characters are transliterated first, then every run of
// characters outside [a-z0-9] collapses to a single hyphen. A title with no
// alphanumeric characters yields an empty slug.
func Slugify(title string) string {
	s := strings.ToLower(unidecode.Unidecode(title))
	s = slugNonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
