package reconcile

import "errors"

var (
	// ErrMalformedJSON is returned when a document cannot be parsed as JSON.
	ErrMalformedJSON = errors.New("malformed JSON")

	// ErrMalformedStructure is returned when a document is not a non-empty
	// array of objects sharing the same keys.
	ErrMalformedStructure = errors.New("not a non-empty array of objects with identical keys")

	// ErrSchemaMismatch is returned when the two compared collections do not
	// share the same key set.
	ErrSchemaMismatch = errors.New("collections do not share the same keys")

	// ErrNotUnique is returned when the identifier field repeats a value.
	ErrNotUnique = errors.New("identifier is not unique")

	// ErrFieldAbsent is returned when the identifier field is missing from a record.
	ErrFieldAbsent = errors.New("field not present")

	// ErrUnhashableIdentifier is returned when an identifier value is an
	// object or an array.
	ErrUnhashableIdentifier = errors.New("identifier value must be a string, number, boolean or null")
)
