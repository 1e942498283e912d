package melodine

import (
	"errors"

	"golang.org/x/oauth2"
)

// Flow is one of the supported OAuth2 grant flows. It carries the
// credentials needed to start its handshake and is immutable once
// constructed. Implementations are ClientCredentials, AuthorizationCode and
// AuthorizationCodePKCE; the set is closed.
type Flow interface {
	// GrantType returns the OAuth2 grant type the flow performs.
	GrantType() string

	// SupportsRefresh reports whether tokens obtained through this flow can
	// be renewed with a refresh grant. False only for ClientCredentials.
	SupportsRefresh() bool

	validate() error
}

// UserFlow is a grant flow that involves user consent and therefore yields a
// token with user-scoped capabilities and a refresh token. Implementations
// are AuthorizationCode and AuthorizationCodePKCE.
type UserFlow interface {
	Flow

	oauthConfig(s *settings) *oauth2.Config
	usesPKCE() bool
}

// ClientCredentials is the machine-to-machine grant flow: a single POST with
// the application's id and secret, no user interaction. The resulting token
// carries no refresh token and no user-scoped capabilities.
type ClientCredentials struct {
	ClientID     string
	ClientSecret string
	Scopes       []Scope
}

// GrantType implements Flow.
func (ClientCredentials) GrantType() string { return "client_credentials" }

// SupportsRefresh implements Flow. Client-credentials tokens cannot be
// refreshed; re-authenticate instead.
func (ClientCredentials) SupportsRefresh() bool { return false }

func (f ClientCredentials) validate() error {
	if f.ClientID == "" {
		return errors.New("melodine: ClientCredentials: ClientID is required")
	}
	if f.ClientSecret == "" {
		return errors.New("melodine: ClientCredentials: ClientSecret is required")
	}
	return nil
}

// AuthorizationCode is the standard code grant flow for confidential
// clients: the user consents in a browser, the redirect carries a code, and
// the code plus the client secret are exchanged for a token.
type AuthorizationCode struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []Scope
}

// GrantType implements Flow.
func (AuthorizationCode) GrantType() string { return "authorization_code" }

// SupportsRefresh implements Flow.
func (AuthorizationCode) SupportsRefresh() bool { return true }

func (f AuthorizationCode) validate() error {
	if f.ClientID == "" {
		return errors.New("melodine: AuthorizationCode: ClientID is required")
	}
	if f.ClientSecret == "" {
		return errors.New("melodine: AuthorizationCode: ClientSecret is required")
	}
	if f.RedirectURL == "" {
		return errors.New("melodine: AuthorizationCode: RedirectURL is required")
	}
	return nil
}

func (f AuthorizationCode) oauthConfig(s *settings) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     f.ClientID,
		ClientSecret: f.ClientSecret,
		RedirectURL:  f.RedirectURL,
		Scopes:       scopeStrings(f.Scopes),
		Endpoint:     s.endpoint,
	}
}

func (AuthorizationCode) usesPKCE() bool { return false }

// AuthorizationCodePKCE is the code grant flow hardened with a Proof Key for
// Code Exchange verifier/challenge pair (RFC 7636). It needs no client
// secret, which makes it the right flow for public clients such as desktop
// or mobile applications.
type AuthorizationCodePKCE struct {
	ClientID    string
	RedirectURL string
	Scopes      []Scope
}

// GrantType implements Flow.
func (AuthorizationCodePKCE) GrantType() string { return "authorization_code" }

// SupportsRefresh implements Flow.
func (AuthorizationCodePKCE) SupportsRefresh() bool { return true }

func (f AuthorizationCodePKCE) validate() error {
	if f.ClientID == "" {
		return errors.New("melodine: AuthorizationCodePKCE: ClientID is required")
	}
	if f.RedirectURL == "" {
		return errors.New("melodine: AuthorizationCodePKCE: RedirectURL is required")
	}
	return nil
}

func (f AuthorizationCodePKCE) oauthConfig(s *settings) *oauth2.Config {
	return &oauth2.Config{
		ClientID:    f.ClientID,
		RedirectURL: f.RedirectURL,
		Scopes:      scopeStrings(f.Scopes),
		Endpoint:    s.endpoint,
	}
}

func (AuthorizationCodePKCE) usesPKCE() bool { return true }
