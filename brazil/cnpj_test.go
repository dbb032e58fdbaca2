package brazil_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/albertocavalcante/docval"
	"github.com/albertocavalcante/docval/brazil"
)

func TestValidateCNPJ(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		validCNPJs := []string{
			"12.345.678/0001-95",
			"12345678000195",
			"11.444.777/0001-61",
			"11444777000161",
		}

		for _, cnpj := range validCNPJs {
			assert.NoError(t, brazil.ValidateCNPJ(cnpj), "CNPJ should be valid: %s", cnpj)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		testCases := []struct {
			cnpj     string
			expected error
		}{
			{"00.000.000/0000-00", docval.ErrDegenerateSequence},
			{"11111111111111", docval.ErrDegenerateSequence},
			{"12.345.678/0001-99", docval.ErrChecksumMismatch},
			{"12345678000196", docval.ErrChecksumMismatch},
			{"12.345.678/0001", docval.ErrWrongLength},
			{"123456780001955", docval.ErrWrongLength},
			{"", docval.ErrWrongLength},
			{"12.345.67B/0001-95", docval.ErrNonDigit},
		}

		for _, tc := range testCases {
			err := brazil.ValidateCNPJ(tc.cnpj)
			assert.ErrorIs(t, err, tc.expected, "CNPJ: %q", tc.cnpj)
		}
	})
}

func TestCNPJCheckDigits(t *testing.T) {
	check, err := brazil.CNPJCheckDigits("123456780001")
	require.NoError(t, err)
	assert.Equal(t, "95", check)

	_, err = brazil.CNPJCheckDigits("123456789")
	assert.ErrorIs(t, err, docval.ErrWrongLength)
}

func TestCNPJRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		payload := rapid.StringOfN(rapid.RuneFrom([]rune("0123456789")), 12, 12, -1).Draw(t, "payload")

		check, err := brazil.CNPJCheckDigits(payload)
		if err != nil {
			t.Fatalf("CNPJCheckDigits(%q): %v", payload, err)
		}

		err = brazil.ValidateCNPJ(payload + check)
		if allSame(payload + check) {
			if !errors.Is(err, docval.ErrDegenerateSequence) {
				t.Fatalf("ValidateCNPJ(%q): got %v, want degenerate sequence", payload+check, err)
			}
		} else if err != nil {
			t.Fatalf("ValidateCNPJ(%q): %v", payload+check, err)
		}
	})
}
