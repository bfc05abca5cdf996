// Package middleware groups the Fiber middleware of the json-diff API.
//
//   - auth: rejects requests that do not carry the configured API key.
//   - rayid: tags every request with an ID that is echoed in the response
//     headers and attached to log lines.
//
// rayid goes first so that rejected requests are traced too.
package middleware
