// Package client talks to the contacts HTTP API.
//
// HTTPClient keeps the session token in memory only. Register and Login
// store it; Logout discards it. Protected calls without a token fail with
// ErrUnauthorized before any request is sent.
//
// Transport failures are reported as ErrUnavailable. Non-2xx responses are
// returned as *APIError carrying the status code and the server's "error"
// message; 401 and 403 additionally match ErrUnauthorized.
package client
