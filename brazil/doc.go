// Package brazil validates Brazilian taxpayer registry identifiers: CPF
// (Cadastro de Pessoas Físicas, individuals) and CNPJ (Cadastro Nacional da
// Pessoa Jurídica, legal entities).
//
// Both identifiers follow the Receita Federal modulo-11 scheme: a digit
// payload followed by two check digits derived from descending weight
// vectors. Inputs may be plain ("12345678909") or formatted
// ("123.456.789-09", "12.345.678/0001-95"); formatting never changes the
// verdict.
//
// ValidateTaxID accepts either document type, dispatching by digit count the
// way front-ends usually collect the value (one field for both). Use
// ValidateCPF or ValidateCNPJ when the expected type is known.
//
// All failures are docval sentinel errors; match them with errors.Is.
// Repeated-digit values such as "111.111.111-11" are rejected as
// degenerate even though they satisfy the checksum arithmetic.
package brazil
