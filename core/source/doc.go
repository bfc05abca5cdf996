// Package source loads record collections from the places JSON exports live.
//
// Every implementation satisfies Source: it lists the names of the
// collections it can offer and loads one of them as a validated
// reconcile.Collection.
//
// # Implementations
//
//   - Directory: *.json files of a local directory.
//   - Bucket: *.json objects under a prefix of an S3/MinIO bucket.
//   - Table: tables of a MySQL or SQLite database, one record per row.
//   - Cached: wraps another Source and keeps loaded collections for a TTL.
//
// Names are listed in natural order ("export2.json" before "export10.json").
//
// # Errors
//
// List returns ErrNoInputFiles when nothing eligible exists and Load returns
// ErrNotFound for unknown names. Documents that are not valid JSON yield
// reconcile.ErrMalformedJSON, documents with the wrong shape
// reconcile.ErrMalformedStructure.
package source
