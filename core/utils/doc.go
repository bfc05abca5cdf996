// Package utils provides common utility functions for the json-diff application.
// It includes helpers for converting database driver values into decoded JSON
// values, for exact numeric comparison of decoded numbers and for rendering
// values as human readable text.
package utils
