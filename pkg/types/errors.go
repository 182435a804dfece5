package types

import "errors"

// Load-time errors. Both are fatal: the loader aborts and no record is
// produced.
var (
	// ErrMalformedField reports a mapping field with no value key that is
	// also not a composite of nested fields.
	ErrMalformedField = errors.New("malformed field")

	// ErrUnknownShape reports a field whose key set matches no recognized
	// shape, such as an alternatives key that is neither a sequence of
	// strings nor a mapping of string to string.
	ErrUnknownShape = errors.New("unknown field shape")
)

// Accessor errors. These surface caller mistakes immediately and are never
// swallowed.
var (
	ErrFieldNotFound = errors.New("field not found")
	ErrShapeMismatch = errors.New("field shape mismatch")
)

// ErrDuplicateField reports a second Append of the same field name while
// building a record.
var ErrDuplicateField = errors.New("duplicate field name")
