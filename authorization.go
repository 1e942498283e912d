package melodine

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/oauth2"
)

// stateBytes is the number of random bytes behind the state parameter.
// 32 bytes encodes to 43 base64url characters, comfortably above the
// entropy RFC 6749 asks for.
const stateBytes = 32

// Authorization is a pending authorization-code handshake: the URL the user
// must visit together with the state parameter and, for PKCE, the code
// verifier that must accompany the eventual exchange. It is the only
// unauthenticated handle the library hands out, and it exposes no resource
// operations.
type Authorization struct {
	flow     UserFlow
	settings *settings
	conf     *oauth2.Config
	state    string
	verifier string // empty unless the flow uses PKCE
	url      string
}

// Begin starts an authorization-code handshake. It generates the state
// parameter and, for the PKCE flow, the verifier/challenge pair, then builds
// the authorization URL. Nothing is executed on the user's behalf; direct
// them to URL and complete the handshake with Exchange once the redirect
// delivers the code.
func Begin(flow UserFlow, opts ...Option) (*Authorization, error) {
	if err := flow.validate(); err != nil {
		return nil, err
	}
	s := newSettings(opts)
	conf := flow.oauthConfig(s)

	state, err := generateState()
	if err != nil {
		return nil, err
	}

	a := &Authorization{
		flow:     flow,
		settings: s,
		conf:     conf,
		state:    state,
	}

	var authOpts []oauth2.AuthCodeOption
	if flow.usesPKCE() {
		a.verifier = oauth2.GenerateVerifier()
		authOpts = append(authOpts, oauth2.S256ChallengeOption(a.verifier))
	}
	a.url = conf.AuthCodeURL(state, authOpts...)

	return a, nil
}

// URL is the authorization URL the user must visit to grant consent.
func (a *Authorization) URL() string { return a.url }

// State is the state parameter embedded in the authorization URL. The
// redirect must carry it back unchanged.
func (a *Authorization) State() string { return a.state }

// Exchange trades the authorization code from the redirect for a token and
// returns the authenticated user client. The state from the redirect is
// compared against the issued one before anything touches the network; a
// mismatch fails with ErrStateMismatch. For the PKCE flow the original
// verifier is sent alongside the code.
func (a *Authorization) Exchange(ctx context.Context, code, state string) (*UserClient, error) {
	if subtle.ConstantTimeCompare([]byte(state), []byte(a.state)) != 1 {
		return nil, ErrStateMismatch
	}

	var opts []oauth2.AuthCodeOption
	if a.verifier != "" {
		opts = append(opts, oauth2.VerifierOption(a.verifier))
	}

	tok, err := a.conf.Exchange(a.settings.oauthContext(ctx), code, opts...)
	if err != nil {
		return nil, classifyOAuthErr(err)
	}

	a.settings.logger.Debug("authorization code exchanged",
		"client_id", a.conf.ClientID,
		"pkce", a.verifier != "",
	)
	return newUserClient(a.flow, a.settings, tokenFromOAuth2(tok), a.conf), nil
}

// generateState produces a random base64url state parameter.
func generateState() (string, error) {
	buf := make([]byte, stateBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("melodine: generate state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
