package melodine

import (
	"errors"
	"fmt"
)

var (
	// ErrRefreshUnavailable is returned when a refresh is required but the
	// active grant flow cannot perform one: the client-credentials flow never
	// yields a refresh token, and a token stored without one cannot be
	// renewed. No network call is attempted.
	ErrRefreshUnavailable = errors.New("melodine: grant flow cannot refresh tokens")

	// ErrStateMismatch is returned by Authorization.Exchange when the state
	// parameter on the redirect does not match the one issued with the
	// authorization URL. The code is not exchanged.
	ErrStateMismatch = errors.New("melodine: authorization state parameter mismatch")
)

// AuthError reports that the authorization server rejected a handshake or a
// refresh grant: an invalid code, a mismatched PKCE verifier, an expired or
// revoked refresh token, bad client credentials.
type AuthError struct {
	// Code is the OAuth2 error code, e.g. "invalid_grant".
	Code string
	// Description is the server's human-readable explanation, if any.
	Description string

	err error
}

func (e *AuthError) Error() string {
	switch {
	case e.Code != "" && e.Description != "":
		return fmt.Sprintf("melodine: authorization rejected: %s: %s", e.Code, e.Description)
	case e.Code != "":
		return fmt.Sprintf("melodine: authorization rejected: %s", e.Code)
	}
	return fmt.Sprintf("melodine: authorization rejected: %v", e.err)
}

func (e *AuthError) Unwrap() error { return e.err }

// TransportError reports a failure below HTTP: connection refused, DNS,
// timeout, cancelled context. No response was obtained and the request is
// not retried.
type TransportError struct {
	err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("melodine: transport: %v", e.err)
}

func (e *TransportError) Unwrap() error { return e.err }

// ParseError reports a response body that did not match the expected shape.
type ParseError struct {
	err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("melodine: decode response: %v", e.err)
}

func (e *ParseError) Unwrap() error { return e.err }

// APIError is a well-formed Spotify error response, carrying the status and
// message from the error envelope in the body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("melodine: spotify: %d %s", e.Status, e.Message)
}

// HTTPError is a non-2xx response whose body did not match the Spotify error
// envelope.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("melodine: http status %d", e.Status)
}
