// Package errs defines the error types the API returns to clients.
//
// Every failure a handler or middleware produces ends up as an *HTTPError
// so the global error handler can write one consistent JSON envelope,
// including the per-field violations of a rejected record.
package errs
