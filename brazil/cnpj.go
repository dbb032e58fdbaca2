package brazil

import "github.com/albertocavalcante/docval"

// cnpjScheme is the Receita Federal scheme for CNPJ: 12 payload digits and
// two check digits. The weight vectors restart after the fifth position,
// which is why they are not a plain descending run like CPF's.
var cnpjScheme = docval.Mod11Scheme{
	Length:  14,
	Weights: []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2},
}

// CNPJ validates legal-entity taxpayer numbers polymorphically.
var CNPJ docval.Validator = cnpjScheme

// ValidateCNPJ reports whether value is a well-formed, checksum-consistent
// CNPJ. The value may carry conventional formatting (dots, slash, dash,
// spaces).
func ValidateCNPJ(value string) error {
	return cnpjScheme.Validate(value)
}

// CNPJCheckDigits derives the two check digits for a 12-digit CNPJ payload.
func CNPJCheckDigits(payload string) (string, error) {
	return cnpjScheme.CheckDigits(payload)
}
