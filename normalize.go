package lcsviz

import (
	"strings"

	"github.com/aretw0/lcsviz/pkg/domain"
)

// Normalizer turns raw user input into the sequence handed to the engine.
// The engine itself is case-sensitive and never normalizes.
type Normalizer func(string) []rune

// DefaultNormalizer upper-cases the input and keeps at most
// domain.DefaultMaxLength characters.
func DefaultNormalizer(s string) []rune {
	return NewNormalizer(domain.DefaultMaxLength, true)(s)
}

// NewNormalizer builds a Normalizer truncating to maxLength runes
// (no limit when maxLength <= 0) and optionally upper-casing.
func NewNormalizer(maxLength int, upper bool) Normalizer {
	return func(s string) []rune {
		if upper {
			s = strings.ToUpper(s)
		}
		r := []rune(s)
		if maxLength > 0 && len(r) > maxLength {
			r = r[:maxLength]
		}
		return r
	}
}

// Verbatim passes input through untouched.
func Verbatim(s string) []rune {
	return []rune(s)
}
