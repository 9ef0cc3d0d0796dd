package domain

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

var (
	ErrSameAddress       = errors.New("origin and destination addresses are the same")
	ErrInvalidCharacters = errors.New("addresses should contain only alphanumeric characters and spaces")
)

// ValidateAddresses checks a trip request before any network call is made.
// Equality is checked first and is exact and case-sensitive.
func ValidateAddresses(origin, destination string) error {
	if origin == destination {
		return ErrSameAddress
	}

	if !isAlnumWithSpaces(origin) || !isAlnumWithSpaces(destination) {
		return ErrInvalidCharacters
	}

	return nil
}

// isAlnumWithSpaces reports whether s, with spaces removed, is non-empty and
// made only of letters and numbers.
func isAlnumWithSpaces(s string) bool {
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// IsValidationError reports whether err came from ValidateAddresses.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrSameAddress) || errors.Is(err, ErrInvalidCharacters)
}
