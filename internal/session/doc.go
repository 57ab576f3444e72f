// Package session persists the login session between panel runs.
//
// The bearer token issued by the service is kept in a mode 0600 file under
// the user's config directory, written atomically so a crash never leaves a
// truncated token behind. The token is a JWT; Inspect decodes its claims
// without verifying the signature, since the signing key is derived from
// connection details only the service knows. The claims are used purely for
// display (whoami) and for noticing an expired session before a request
// bounces.
package session
