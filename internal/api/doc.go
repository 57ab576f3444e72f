// Package api implements the HTTP client for the account service.
//
// The service speaks two response shapes. List and mailbox endpoints wrap
// their payload in an envelope ({"status": "OK", "results": ...}), while
// the account create and update endpoints return the record naked. Error
// responses carry an "error" field and are mapped onto the semantic error
// types in the errors package: 401 to ErrUnauthorized, 403 to
// ErrSessionExpired, 404 to NotFoundError, and any other non-2xx status
// to ServerError. Failures before a response arrives become TransportError
// and are retried for idempotent requests.
package api
