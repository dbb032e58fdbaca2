package docval

import "fmt"

const modulus = 11

// Mod11Scheme is a modulo-11 check digit scheme over a fixed-length digit
// string whose trailing two digits verify the rest. Weights is the descending
// weight vector used to derive the second (final) check digit and must hold
// Length-1 entries; the first check digit uses Weights[1:] over the payload.
//
// Brazil's CPF and CNPJ are instances of this scheme with different lengths
// and weight vectors. Document types with unrelated check rules implement
// Validator directly instead of configuring a scheme.
//
// A Mod11Scheme value is immutable after construction and safe for concurrent
// use.
type Mod11Scheme struct {
	// Length is the total digit count, check digits included.
	Length int

	// Weights are the multipliers for the final check digit pass.
	Weights []int
}

// Validate runs normalization, structural checks and checksum verification
// in order, short-circuiting on the first failure. It satisfies Validator.
func (s Mod11Scheme) Validate(value string) error {
	digits, err := NormalizeDigits(value)
	if err != nil {
		return err
	}
	if err := CheckStructure(digits, s.Length); err != nil {
		return err
	}
	return s.VerifyChecksum(digits)
}

// VerifyChecksum re-derives both check digits from the payload and compares
// them, in order, to the trailing two digits. digits must already be
// normalized and of the scheme's length.
func (s Mod11Scheme) VerifyChecksum(digits string) error {
	if len(digits) != s.Length {
		return fmt.Errorf("%w: got %d, want %d", ErrWrongLength, len(digits), s.Length)
	}
	want, err := s.CheckDigits(digits[:s.Length-2])
	if err != nil {
		return err
	}
	if digits[s.Length-2:] != want {
		return ErrChecksumMismatch
	}
	return nil
}

// CheckDigits derives the two check digits for a payload of Length-2 digits.
// Appending the result to the payload always yields a checksum-consistent
// value.
func (s Mod11Scheme) CheckDigits(payload string) (string, error) {
	if len(payload) != s.Length-2 {
		return "", fmt.Errorf("%w: got %d payload digits, want %d", ErrWrongLength, len(payload), s.Length-2)
	}
	if !isDigits(payload) {
		return "", fmt.Errorf("%w in payload", ErrNonDigit)
	}
	first := checkDigit(payload, s.Weights[1:])
	second := checkDigit(payload+string('0'+byte(first)), s.Weights)
	return string([]byte{'0' + byte(first), '0' + byte(second)}), nil
}

// checkDigit applies the official remainder rule: a weighted sum reduced
// modulo 11 maps to 0 when the remainder is below 2, and to 11 minus the
// remainder otherwise. All arithmetic is on small non-negative integers.
func checkDigit(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	if r := sum % modulus; r >= 2 {
		return modulus - r
	}
	return 0
}
