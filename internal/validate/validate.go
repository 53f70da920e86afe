// Package validate holds the field rules for patient data entry.
//
// Every rule exists twice: as a predicate (IsValidName, IsValidNationalID)
// and as a parse function returning (value, error) so callers that need a
// diagnostic can tell format errors from range errors without re-checking.
package validate

import (
	"errors"
	"fmt"
	"strconv"
)

// NationalIDLength is the exact number of digits in a DNI.
const NationalIDLength = 8

var (
	// ErrNotNumeric reports a token that is not made only of decimal digits.
	ErrNotNumeric = errors.New("not a whole number")
	// ErrOutOfRange reports a well-formed number outside the accepted range.
	ErrOutOfRange = errors.New("number out of range")
	// ErrInvalidName reports a name that is empty or holds non-letters.
	ErrInvalidName = errors.New("name must contain only letters and spaces")
	// ErrInvalidNationalID reports a DNI that is not exactly 8 digits.
	ErrInvalidNationalID = errors.New("DNI must have exactly 8 digits")
)

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsValidName reports whether s is non-empty and made only of ASCII letters
// and spaces.
func IsValidName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) && s[i] != ' ' {
			return false
		}
	}
	return true
}

// IsValidNationalID reports whether s is exactly 8 decimal digits.
func IsValidNationalID(s string) bool {
	if len(s) != NationalIDLength {
		return false
	}
	return isAllDigits(s)
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// ParseInteger parses token as a non-negative decimal integer in [min, max].
// Signs are rejected as non-numeric. Values too large for int are reported
// as out of range.
func ParseInteger(token string, min, max int) (int, error) {
	if token == "" || !isAllDigits(token) {
		return 0, fmt.Errorf("%q: %w", token, ErrNotNumeric)
	}
	v, err := strconv.Atoi(token)
	if err != nil {
		// Only overflow is possible once the token is all digits.
		return 0, fmt.Errorf("%q: %w [%d, %d]", token, ErrOutOfRange, min, max)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%d: %w [%d, %d]", v, ErrOutOfRange, min, max)
	}
	return v, nil
}

// ParseName returns line unchanged when it is a valid name.
func ParseName(line string) (string, error) {
	if !IsValidName(line) {
		return "", fmt.Errorf("%q: %w", line, ErrInvalidName)
	}
	return line, nil
}

// ParseNationalID returns token unchanged when it is a valid DNI.
func ParseNationalID(token string) (string, error) {
	if !IsValidNationalID(token) {
		return "", fmt.Errorf("%q: %w", token, ErrInvalidNationalID)
	}
	return token, nil
}
