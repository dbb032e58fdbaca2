// Package docval validates structured national identification and document
// numbers, starting with Brazil's CPF and CNPJ taxpayer registry identifiers.
//
// The package is a pure, stateless library: given a candidate string it
// normalizes formatting, checks structure and verifies check digits, and
// returns either nil or a precise failure reason. It performs no I/O, keeps
// no state between calls and is safe for unsynchronized concurrent use.
//
// # Architecture
//
// Validation is a three-stage pipeline, short-circuiting on the first
// failure:
//
//	raw string -> NormalizeDigits -> CheckStructure -> checksum -> verdict
//
// The root package carries the document-type-agnostic pieces: the Validator
// contract, the sentinel failure reasons, the normalizer and structural
// checks, and Mod11Scheme, a configurable modulo-11 check digit engine.
// Each country lives in its own subpackage (currently brazil) and composes
// these pieces with its own arity and weight vector. Dispatch is structural:
// consumers reference the specific validator they need, there is no runtime
// registry to miss a country code in.
//
// # Usage
//
//	import "github.com/albertocavalcante/docval/brazil"
//
//	if err := brazil.ValidateCPF("123.456.789-09"); err != nil {
//		// err is one of the docval sentinel errors
//	}
//
// # Error Handling
//
// Failures map one-to-one onto a closed set of sentinel errors:
// ErrWrongLength, ErrNonDigit, ErrDegenerateSequence and ErrChecksumMismatch.
// Match them with errors.Is; the set is stable API. The library never logs
// and never retries, both are caller concerns.
//
// # Integrations
//
// The optional subpackage playground adapts the validators to the
// github.com/go-playground/validator/v10 custom-validator convention so they
// can be attached declaratively via struct tags. The core packages never
// import it; consumers opt in by importing the adapter.
package docval
