package brazil

import (
	"fmt"

	"github.com/albertocavalcante/docval"
)

// TaxID validates either CPF or CNPJ polymorphically.
var TaxID docval.Validator = docval.Func(ValidateTaxID)

// ValidateTaxID validates a value that may be either a CPF or a CNPJ,
// selecting the document type by the digit count left after normalization.
// Any other digit count fails with docval.ErrWrongLength.
func ValidateTaxID(value string) error {
	digits, err := docval.NormalizeDigits(value)
	if err != nil {
		return err
	}
	switch len(digits) {
	case cpfScheme.Length:
		return cpfScheme.Validate(digits)
	case cnpjScheme.Length:
		return cnpjScheme.Validate(digits)
	default:
		return fmt.Errorf("%w: got %d, want %d (CPF) or %d (CNPJ)",
			docval.ErrWrongLength, len(digits), cpfScheme.Length, cnpjScheme.Length)
	}
}
