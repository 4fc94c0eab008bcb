// Package middleware stores the global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request IDs, request logging, tracing, CORS, body limits, rate limiting
// and panic recovery, and they own the global error handler.
package middleware
