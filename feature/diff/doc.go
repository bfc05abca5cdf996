// Package diff compares two record collections and reports the outcome.
//
// The Service loads collections from a source.Source, checks that they share
// a schema and that the identifier is unique on both sides, then runs
// reconcile.Diff. The Reporter prints a Report the way the command line tool
// always has and mirrors every line into the run log. The Handler exposes the
// same operations over HTTP:
//
//	GET  /diff/files          list the collections offered by the source
//	GET  /diff/keys?file=...  keys of one collection
//	POST /diff                compare two collections of the source
//	POST /diff/inline         compare two arrays sent in the request body
package diff
