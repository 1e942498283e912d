package melodine

import (
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// DefaultExpiryMargin is the safety margin applied when checking token
// expiry before a request. It accounts for clock skew and network latency so
// that a token does not expire while a call is in flight.
const DefaultExpiryMargin = 30 * time.Second

// Token is an access token together with the metadata the token endpoint
// reported for it. The expiry instant is absolute, computed from the
// server-reported lifetime at the moment the token was issued.
//
// A Token is a value; the client keeps the live copy internally and replaces
// it wholesale on refresh. Snapshots obtained from Client.Token are safe to
// persist and never mutated.
type Token struct {
	// AccessToken is the bearer credential attached to each API call.
	AccessToken string `json:"access_token"`

	// TokenType is typically "Bearer".
	TokenType string `json:"token_type,omitempty"`

	// RefreshToken renews the access token without repeating the handshake.
	// Empty for the client-credentials flow, which never yields one.
	RefreshToken string `json:"refresh_token,omitempty"`

	// ExpiresAt is the absolute instant the access token expires.
	// A zero value means the server reported no lifetime.
	ExpiresAt time.Time `json:"expires_at,omitempty"`

	// Scope is the granted scope set, space separated.
	Scope string `json:"scope,omitempty"`
}

// IsExpired reports whether the token has expired or will expire within
// DefaultExpiryMargin.
func (t Token) IsExpired() bool {
	return t.IsExpiredWithMargin(DefaultExpiryMargin)
}

// IsExpiredWithMargin reports whether the token has expired or will expire
// within the given margin. Tokens without an expiry instant never expire.
func (t Token) IsExpiredWithMargin(margin time.Duration) bool {
	if t.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().Add(margin).After(t.ExpiresAt)
}

// Scopes returns the granted scopes as a slice.
func (t Token) Scopes() []Scope {
	fields := strings.Fields(t.Scope)
	if len(fields) == 0 {
		return nil
	}
	scopes := make([]Scope, len(fields))
	for i, f := range fields {
		scopes[i] = Scope(f)
	}
	return scopes
}

// OAuth2Token converts the token for use with golang.org/x/oauth2.
func (t Token) OAuth2Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  t.AccessToken,
		TokenType:    t.TokenType,
		RefreshToken: t.RefreshToken,
		Expiry:       t.ExpiresAt,
	}
}

// tokenFromOAuth2 converts a token returned by golang.org/x/oauth2. The
// scope field travels in the token response body and x/oauth2 surfaces it as
// extra data.
func tokenFromOAuth2(t *oauth2.Token) Token {
	tok := Token{
		AccessToken:  t.AccessToken,
		TokenType:    t.TokenType,
		RefreshToken: t.RefreshToken,
		ExpiresAt:    t.Expiry,
	}
	if scope, ok := t.Extra("scope").(string); ok {
		tok.Scope = scope
	}
	return tok
}
