// Package melodine is a client library for the Spotify Web API.
//
// The library separates authentication from resource access. A caller first
// completes one of the supported OAuth2 grant flows and only then receives a
// client value; there is no way to build a request against the API without a
// token in hand.
//
// # Grant Flows
//
//   - ClientCredentials: app-level access, no user interaction, no refresh.
//   - AuthorizationCode: user consent via browser redirect.
//   - AuthorizationCodePKCE: the code flow hardened with a PKCE
//     verifier/challenge pair, for clients that cannot keep a secret.
//
// The Implicit Grant flow is deliberately unsupported; Spotify considers it
// deprecated and insecure.
//
// # Client Capabilities
//
// Authenticate (client credentials) returns a *Client which exposes the
// app-level catalog endpoints. The two code flows return a *UserClient, which
// embeds Client and additionally exposes the user-scoped surface: the /me
// library, playback control, and follow operations. A client-credentials
// session can therefore never call a user-scoped endpoint; the method simply
// does not exist on its type.
//
//	flow := melodine.ClientCredentials{ClientID: id, ClientSecret: secret}
//	c, err := melodine.Authenticate(ctx, flow)
//	if err != nil {
//		// handshake rejected or transport failure
//	}
//	album, err := c.Album("4aawyAB9vmqN3uQ7FjRGTy").Market("SE").Get(ctx)
//
// The user flows are two-step: Begin produces the authorization URL the user
// must visit, Exchange trades the returned code for a token.
//
//	a, err := melodine.Begin(melodine.AuthorizationCodePKCE{
//		ClientID:    id,
//		RedirectURL: "http://127.0.0.1:8888/callback",
//		Scopes:      []melodine.Scope{melodine.ScopeUserLibraryRead},
//	})
//	// direct the user to a.URL(), receive code and state on the redirect
//	uc, err := a.Exchange(ctx, code, state)
//
// # Token Lifecycle
//
// Tokens are refreshed lazily: before every request the client checks the
// expiry instant against a safety margin and, when needed, performs exactly
// one refresh grant even under concurrent use. There is no background timer
// and no reactive retry on 401; a token expiring mid-flight surfaces the
// upstream error unchanged. This is an accepted limitation, kept narrow by
// the expiry margin.
//
// All clients are safe for concurrent use.
package melodine
