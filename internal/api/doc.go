// Package api is the HTTP client layer for the Pressroom backend.
//
// A single base Client carries the server address and the current bearer
// token; Resource[T] instantiates the typed CRUD surface for one entity type
// over it. Failures are normalized into a small taxonomy:
//
//   - ErrUnavailable — transport failure, no response
//   - ErrNotFound — 404 (non-fatal for deletes)
//   - ErrUnauthorized — 401/403
//   - *RequestError — any non-2xx, carrying the server message
//
// Responses are normalized too: the client accepts both bare entity bodies
// and the {success, data, message} envelope, and treats a 2xx with
// success=false as an error (ErrRejected). There is deliberately no retry,
// cache or request queue — one user action maps to one request.
package api
