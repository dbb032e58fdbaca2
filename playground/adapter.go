package playground

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/albertocavalcante/docval/brazil"
)

// Tag names registered by Register.
const (
	TagCPF   = "br_cpf"
	TagCNPJ  = "br_cnpj"
	TagTaxID = "br_tax_id"
)

// CPF is a validator.Func that accepts well-formed CPF values.
func CPF(fl validator.FieldLevel) bool {
	return brazil.ValidateCPF(fl.Field().String()) == nil
}

// CNPJ is a validator.Func that accepts well-formed CNPJ values.
func CNPJ(fl validator.FieldLevel) bool {
	return brazil.ValidateCNPJ(fl.Field().String()) == nil
}

// TaxID is a validator.Func that accepts either CPF or CNPJ values.
func TaxID(fl validator.FieldLevel) bool {
	return brazil.ValidateTaxID(fl.Field().String()) == nil
}

// Register attaches the Brazilian document validators to v under the br_cpf,
// br_cnpj and br_tax_id tags.
func Register(v *validator.Validate) error {
	funcs := map[string]validator.Func{
		TagCPF:   CPF,
		TagCNPJ:  CNPJ,
		TagTaxID: TaxID,
	}
	for tag, fn := range funcs {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}
