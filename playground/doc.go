// Package playground adapts the docval document validators to the
// github.com/go-playground/validator/v10 custom-validator convention, so
// they can be attached to struct fields declaratively.
//
// The adapter is a pure pass-through and adds no validation logic of its
// own. It lives in its own package so that consumers who do not use the
// framework never link it; the docval core carries no dependency on it.
//
// # Usage
//
//	v := validator.New()
//	if err := playground.Register(v); err != nil {
//		return err
//	}
//
//	type Citizen struct {
//		CPF string `validate:"br_cpf"`
//	}
//
//	err := v.Struct(Citizen{CPF: "123.456.789-09"})
//
// Individual validator.Func values (CPF, CNPJ, TaxID) are also exported for
// consumers who register tags themselves.
package playground
