package docval

import "errors"

// Validation failure reasons. Every stage fails fast with exactly one of
// these; no stage wraps or reinterprets another stage's failure. Callers can
// match them with errors.Is even when additional context has been attached.
var (
	// ErrWrongLength is returned when the digit count does not match the
	// document type's expected arity.
	ErrWrongLength = errors.New("wrong number of digits")

	// ErrNonDigit is returned when the input contains a character that is
	// neither an ASCII decimal digit nor a recognized formatting character.
	ErrNonDigit = errors.New("non-digit character")

	// ErrDegenerateSequence is returned when every digit is identical.
	// Such values are administratively excluded even though some of them
	// satisfy the checksum arithmetic.
	ErrDegenerateSequence = errors.New("all digits are identical")

	// ErrChecksumMismatch is returned when the derived check digits differ
	// from the ones supplied in the input.
	ErrChecksumMismatch = errors.New("check digits do not match")
)
