package models

import (
	"strings"
	"unicode"
)

// Slugify derives a URL-safe slug from a title: lowercase, punctuation
// stripped, runs of whitespace collapsed to a single hyphen, no leading or
// trailing hyphen.
//
//	Slugify("Hello, World!  ") == "hello-world"
func Slugify(title string) string {
	var b strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			pendingHyphen = true
		}
		// Remaining punctuation is dropped without acting as a separator.
	}

	return b.String()
}
