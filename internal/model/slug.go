package model

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify standardizes display text into a stable identifier by:
//  1. Trimming whitespace and lowercasing
//  2. Decomposing accented letters and dropping the combining marks
//  3. Replacing every run of non-alphanumeric characters with one hyphen
//  4. Trimming hyphens from both ends
//
// It is pure and total: any input (including empty) yields a string
// matching `[a-z0-9]+(-[a-z0-9]+)*` or the empty string.
// "Lotería Nacional" -> "loteria-nacional".
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	s = nonAlnumRe.ReplaceAllString(b.String(), "-")
	return strings.Trim(s, "-")
}
