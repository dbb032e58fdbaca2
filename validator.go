package docval

// Validator is the contract every document-type validator implements.
// Validate returns nil when the value is well-formed and checksum-consistent,
// or one of the package sentinel errors describing the first failed stage.
//
// Implementations must be stateless and reentrant: concurrent calls with
// different inputs never interfere. New document types are added by writing
// a new Validator, not by modifying a shared dispatcher.
type Validator interface {
	Validate(value string) error
}

// Func adapts a plain validation function to the Validator interface.
type Func func(value string) error

// Validate calls f(value).
func (f Func) Validate(value string) error {
	return f(value)
}
