package docval

import (
	"fmt"
	"strings"
	"unicode"
)

// NormalizeDigits strips the formatting characters conventionally used when
// rendering document numbers (dots, dashes, slashes and whitespace) and
// returns the remaining digit sequence. Any other character fails with
// ErrNonDigit. Only ASCII '0'-'9' count as digits; there is no locale-aware
// folding of Unicode digits.
func NormalizeDigits(raw string) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '/':
			// formatting, dropped
		case unicode.IsSpace(r):
			// formatting, dropped
		default:
			return "", fmt.Errorf("%w: %q", ErrNonDigit, r)
		}
	}
	return b.String(), nil
}

// CheckStructure verifies that digits has exactly the expected length and is
// not a degenerate sequence. Repeated-digit values such as "11111111111"
// satisfy the CPF checksum arithmetic but are excluded by administrative
// convention, so they are rejected here, before any checksum runs.
func CheckStructure(digits string, length int) error {
	if len(digits) != length {
		return fmt.Errorf("%w: got %d, want %d", ErrWrongLength, len(digits), length)
	}
	if allIdentical(digits) {
		return ErrDegenerateSequence
	}
	return nil
}

func allIdentical(digits string) bool {
	if digits == "" {
		return false
	}
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
