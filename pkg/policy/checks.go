package policy

import (
	"strings"
	"unicode/utf8"

	"github.com/passaudit/passaudit/pkg/defaults"
)

// specials are the characters accepted by the letter-and-special check.
const specials = "!@$?"

// disguiseSymbols are the substitution characters the disguise check
// looks for before normalizing. Note '?' is not among them.
const disguiseSymbols = "@$!0"

// check pairs a failure predicate with its static reason string.
// Predicates answer "does this credential pair FAIL the rule?".
type check struct {
	name   string
	reason string
	fails  func(c Credentials) bool
}

func failsLength(c Credentials) bool {
	// Inclusive boundary: exactly 8 runes still fails.
	return utf8.RuneCountInString(c.Password) <= defaults.MinPasswordLength
}

func failsLetterSpecial(c Credentials) bool {
	var letter, special bool
	for _, r := range c.Password {
		if isASCIILetter(r) {
			letter = true
		} else if strings.ContainsRune(specials, r) {
			special = true
		}
		if letter && special {
			return false
		}
	}
	return true
}

func failsIdentity(c Credentials) bool {
	return c.Password == c.Username
}

func failsCaseMix(c Credentials) bool {
	var lower, upper bool
	for _, r := range c.Password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		}
	}
	// A password with no letters at all is exempt.
	return (lower || upper) && !(lower && upper)
}

func failsSwapcase(c Credentials) bool {
	return c.Password != c.Username && c.Password == swapCase(c.Username)
}

func failsDisguise(c Credentials) bool {
	if !containsAny(c.Password, disguiseSymbols) {
		return false
	}
	u := strings.ToLower(c.Username)
	// '!' is ambiguous leetspeak: try both 'i' and 'l' readings.
	return leetNormalize(c.Password, 'i') == u || leetNormalize(c.Password, 'l') == u
}

// failsCommon is bound to an Evaluator because the denylist is extendable.
func (e *Evaluator) failsCommon(c Credentials) bool {
	low := strings.ToLower(c.Password)
	if _, denied := e.denylist[low]; denied {
		return true
	}
	// Not listed verbatim: undo simple symbol substitutions and drop
	// punctuation before comparing against the canonical offender.
	return stripNonAlnum(leetNormalize(low, 0)) == "password"
}

// checks returns the battery in its fixed evaluation order. The order
// only determines the order of recorded failure reasons, never the score.
func (e *Evaluator) checks() []check {
	return []check{
		{
			name:   "length",
			reason: "Password must be longer than 8 characters.",
			fails:  failsLength,
		},
		{
			name:   "letter-special",
			reason: "Password must contain at least one letter and one special character.",
			fails:  failsLetterSpecial,
		},
		{
			name:   "identity",
			reason: "Password cannot be the same as the username.",
			fails:  failsIdentity,
		},
		{
			name:   "case-mix",
			reason: "Password cannot be all-lowercase or all-uppercase.",
			fails:  failsCaseMix,
		},
		{
			name:   "swapcase",
			reason: "Password is the swapcase version of the username.",
			fails:  failsSwapcase,
		},
		{
			name:   "disguise",
			reason: "Password disguises the username with symbol substitutions (e.g. '@' for 'a').",
			fails:  failsDisguise,
		},
		{
			name:   "common",
			reason: "Password is too common or similar to 'password'.",
			fails:  e.failsCommon,
		},
	}
}
