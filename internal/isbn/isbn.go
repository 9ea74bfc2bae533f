// Package isbn validates and normalizes ISBN-13 identifiers.
package isbn

import (
	"errors"
	"strings"
)

// Validation failure reasons, kept distinct so API clients can tell which
// constraint was violated.
var (
	ErrLength     = errors.New("ISBN must be 13 digits long")
	ErrNotNumeric = errors.New("ISBN must contain only numeric characters")
	ErrCheckDigit = errors.New("ISBN has an invalid ISBN-13 check digit")
)

// Normalize strips hyphens and whitespace from an ISBN. The normalized form
// is the uniqueness key used by the store.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}

// Validate checks a normalized ISBN: 13 characters, digits only, and a valid
// ISBN-13 check digit (weighted 1/3 sum of the first twelve digits).
func Validate(s string) error {
	if len(s) != 13 {
		return ErrLength
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return ErrNotNumeric
		}
	}

	sum := 0
	for i := 0; i < 12; i++ {
		digit := int(s[i] - '0')
		if i%2 == 0 {
			sum += digit
		} else {
			sum += digit * 3
		}
	}
	check := (10 - sum%10) % 10
	if check != int(s[12]-'0') {
		return ErrCheckDigit
	}

	return nil
}
