package domain

import "strings"

// AmbiguousChars lists characters easily confused with one another when
// displayed.
const AmbiguousChars = "O0Il1"

// CharacterClass is a named, ordered set of characters that can be selected
// independently.
type CharacterClass struct {
	Name  string
	Chars string
}

// Fixed character classes.
var (
	Upper   = CharacterClass{Name: "upper", Chars: "ABCDEFGHIJKLMNOPQRSTUVWXYZ"}
	Lower   = CharacterClass{Name: "lower", Chars: "abcdefghijklmnopqrstuvwxyz"}
	Digits  = CharacterClass{Name: "digits", Chars: "0123456789"}
	Symbols = CharacterClass{Name: "symbols", Chars: "!@#$%^&*_-"}
)

// Classes returns all character classes in their stable order.
func Classes() []CharacterClass {
	return []CharacterClass{Upper, Lower, Digits, Symbols}
}

// Filtered returns the class characters, minus AmbiguousChars when
// avoidAmbiguous is set.
func (c CharacterClass) Filtered(avoidAmbiguous bool) string {
	if !avoidAmbiguous {
		return c.Chars
	}
	return StripAmbiguous(c.Chars)
}

// IsAmbiguous reports whether r is one of AmbiguousChars.
func IsAmbiguous(r rune) bool {
	return strings.ContainsRune(AmbiguousChars, r)
}

// StripAmbiguous removes every ambiguous character from s.
func StripAmbiguous(s string) string {
	return strings.Map(func(r rune) rune {
		if IsAmbiguous(r) {
			return -1
		}
		return r
	}, s)
}
