package resolver

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize lowercases s, collapses every run of whitespace or hyphens into a
// single underscore and drops anything outside [a-z0-9_]. Underscores already
// present are kept as they are, so " _ " becomes "___".
func Normalize(s string) string {
	// Casers keep state and must not be shared across goroutines.
	lower := cases.Lower(language.Und).String(s)

	var b strings.Builder
	b.Grow(len(lower))
	inRun := false
	for _, r := range lower {
		if isSeparator(r) {
			if !inRun {
				b.WriteByte('_')
				inRun = true
			}
			continue
		}
		inRun = false
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isSeparator matches hyphens and the ECMAScript whitespace class, which
// includes U+FEFF but not U+0085.
func isSeparator(r rune) bool {
	switch r {
	case '-', '\ufeff':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

// singular strips a trailing "_s" or "s".
func singular(t string) string {
	if strings.HasSuffix(t, "_s") {
		return t[:len(t)-2]
	}
	return strings.TrimSuffix(t, "s")
}
