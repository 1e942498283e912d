package melodine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBegin(t *testing.T) {
	t.Run("authorization URL carries the flow parameters", func(t *testing.T) {
		auth, err := Begin(AuthorizationCode{
			ClientID:     "id",
			ClientSecret: "secret",
			RedirectURL:  "http://localhost:8888/callback",
			Scopes:       []Scope{ScopeUserReadPrivate, ScopePlaylistModifyPublic},
		}, WithLogger(discardLogger()))
		require.NoError(t, err)

		u, err := url.Parse(auth.URL())
		require.NoError(t, err)
		q := u.Query()
		assert.Equal(t, "code", q.Get("response_type"))
		assert.Equal(t, "id", q.Get("client_id"))
		assert.Equal(t, "http://localhost:8888/callback", q.Get("redirect_uri"))
		assert.Equal(t, "user-read-private playlist-modify-public", q.Get("scope"))
		assert.Equal(t, auth.State(), q.Get("state"))
		assert.NotEmpty(t, auth.State())
		assert.Empty(t, q.Get("code_challenge"), "plain code flow must not carry a PKCE challenge")
	})

	t.Run("PKCE flow carries an S256 challenge", func(t *testing.T) {
		auth, err := Begin(AuthorizationCodePKCE{
			ClientID:    "id",
			RedirectURL: "http://localhost:8888/callback",
		}, WithLogger(discardLogger()))
		require.NoError(t, err)

		u, err := url.Parse(auth.URL())
		require.NoError(t, err)
		q := u.Query()
		assert.Equal(t, "S256", q.Get("code_challenge_method"))
		assert.NotEmpty(t, q.Get("code_challenge"))
	})

	t.Run("state is unique per handshake", func(t *testing.T) {
		flow := AuthorizationCodePKCE{ClientID: "id", RedirectURL: "http://localhost:8888/callback"}
		first, err := Begin(flow)
		require.NoError(t, err)
		second, err := Begin(flow)
		require.NoError(t, err)
		assert.NotEqual(t, first.State(), second.State())
	})

	t.Run("invalid flow is rejected", func(t *testing.T) {
		_, err := Begin(AuthorizationCode{ClientID: "id", ClientSecret: "secret"})
		require.Error(t, err)
	})
}

func TestExchange(t *testing.T) {
	flow := AuthorizationCode{
		ClientID:     "id",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:8888/callback",
	}

	t.Run("state mismatch aborts before the network", func(t *testing.T) {
		auth, err := Begin(flow, WithLogger(discardLogger()))
		require.NoError(t, err)

		_, err = auth.Exchange(context.Background(), "code", "tampered-state")
		assert.ErrorIs(t, err, ErrStateMismatch)
	})

	t.Run("matching state exchanges the code", func(t *testing.T) {
		var gotCode string
		_, endpoint := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotCode = r.FormValue("code")
			writeTokenResponse(w, map[string]any{
				"access_token":  "user-token",
				"token_type":    "Bearer",
				"refresh_token": "user-refresh",
				"expires_in":    3600,
				"scope":         "user-read-private",
			})
		})

		auth, err := Begin(flow, WithAuthEndpoint(endpoint), WithLogger(discardLogger()))
		require.NoError(t, err)

		user, err := auth.Exchange(context.Background(), "grant-code", auth.State())
		require.NoError(t, err)

		assert.Equal(t, "grant-code", gotCode)
		tok := user.Token()
		assert.Equal(t, "user-token", tok.AccessToken)
		assert.Equal(t, "user-refresh", tok.RefreshToken)
		assert.Equal(t, []Scope{ScopeUserReadPrivate}, tok.Scopes())
		assert.True(t, user.Flow().SupportsRefresh())
	})

	t.Run("PKCE exchange sends the verifier", func(t *testing.T) {
		var gotVerifier string
		_, endpoint := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotVerifier = r.FormValue("code_verifier")
			writeTokenResponse(w, map[string]any{
				"access_token":  "user-token",
				"token_type":    "Bearer",
				"refresh_token": "user-refresh",
				"expires_in":    3600,
			})
		})

		auth, err := Begin(AuthorizationCodePKCE{
			ClientID:    "id",
			RedirectURL: "http://localhost:8888/callback",
		}, WithAuthEndpoint(endpoint), WithLogger(discardLogger()))
		require.NoError(t, err)

		_, err = auth.Exchange(context.Background(), "grant-code", auth.State())
		require.NoError(t, err)
		assert.NotEmpty(t, gotVerifier)
	})

	t.Run("rejected code surfaces as AuthError", func(t *testing.T) {
		_, endpoint := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
		})

		auth, err := Begin(flow, WithAuthEndpoint(endpoint), WithLogger(discardLogger()))
		require.NoError(t, err)

		_, err = auth.Exchange(context.Background(), "expired-code", auth.State())
		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "invalid_grant", authErr.Code)
	})
}
