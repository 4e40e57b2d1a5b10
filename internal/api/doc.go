// Package api provides a typed client for the Ymir control plane HTTP API.
//
// [Client] exposes one method per resource query or mutation. Every call is
// synchronous: it either returns data mapped onto the types of the model
// package or an error. The client performs no retries or caching; the API is
// the source of truth and is consulted on every query.
//
// [HTTPClient] is the production implementation. It authenticates with a
// bearer token, tags every request with an X-Request-Id header and maps
// non-2xx responses to [*Error], which can be classified with [IsNotFound],
// [IsUnauthorized] and [IsValidation].
package api
