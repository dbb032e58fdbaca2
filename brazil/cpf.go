package brazil

import "github.com/albertocavalcante/docval"

// cpfScheme is the Receita Federal scheme for CPF: 9 payload digits and two
// check digits weighted 10..2 and 11..2 respectively.
var cpfScheme = docval.Mod11Scheme{
	Length:  11,
	Weights: []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2},
}

// CPF validates individual taxpayer numbers polymorphically.
var CPF docval.Validator = cpfScheme

// ValidateCPF reports whether value is a well-formed, checksum-consistent
// CPF. The value may carry conventional formatting (dots, dash, spaces).
func ValidateCPF(value string) error {
	return cpfScheme.Validate(value)
}

// CPFCheckDigits derives the two check digits for a 9-digit CPF payload.
func CPFCheckDigits(payload string) (string, error) {
	return cpfScheme.CheckDigits(payload)
}
