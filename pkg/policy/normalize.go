package policy

import (
	"strings"
	"unicode"
)

// swapCase inverts the case of every letter in s, leaving non-letters
// unchanged. One rune in, one rune out; special one-to-many case
// mappings are not handled.
func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		}
		return r
	}, s)
}

// leetNormalize lowercases s and substitutes the visually similar symbols
// '@'->'a', '$'->'s', '0'->'o'. The ambiguous '!' maps to bang, which the
// caller supplies ('i', 'l', or 0 to leave '!' untouched).
func leetNormalize(s string, bang rune) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '@':
			return 'a'
		case '$':
			return 's'
		case '0':
			return 'o'
		case '!':
			if bang != 0 {
				return bang
			}
		}
		return r
	}, strings.ToLower(s))
}

// stripNonAlnum removes every rune that is not a letter or digit.
func stripNonAlnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// containsAny reports whether s contains at least one rune from set.
func containsAny(s, set string) bool {
	return strings.ContainsAny(s, set)
}

// isASCIILetter matches the letter classes the case and combo checks
// use. ASCII-only: accented letters count as "no letter" for those
// checks.
func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
