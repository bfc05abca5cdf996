// Package reconcile compares two collections of JSON records keyed by an
// identifier field.
//
// A collection is the decoded contents of one JSON document that must be an
// array of objects sharing exactly the same set of keys. The package exposes
// the three checks that make up a comparison run:
//
//   - ValidateStructure / NewCollection: the value is a non-empty array of
//     uniformly keyed objects. The key set (Schema) is computed once and
//     memoized on the Collection.
//   - Collection.IsUnique: the identifier field holds pairwise distinct values.
//   - Diff: identifiers present on one side only, and the fields that differ
//     between records sharing an identifier.
//
// # Decoding
//
// Decode parses JSON while keeping the key order of every top-level record,
// so differing fields are always reported in the order they appear in the
// first document.
//
// # Equality
//
// Field values are compared structurally. Numbers decode to json.Number and
// compare by exact value, so 1 and 1.0 are equal, 9007199254740992 and
// 9007199254740993 are not, and neither are "1" and 1. Nested objects and arrays are equal
// only if they are deeply equal. Result.Explain expands each differing field
// into RFC 6902 style changes for display.
//
// # Usage
//
//	va, _ := reconcile.Decode(dataA)
//	a, err := reconcile.NewCollection("a.json", va)
//	...
//	ok, err := a.IsUnique("id")
//	res, err := reconcile.Diff(a, b, "id")
package reconcile
