package melodine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// tokenEndpoint runs a fake OAuth2 token endpoint that records each grant
// request and serves the given responder.
func tokenEndpoint(t *testing.T, respond http.HandlerFunc) (*httptest.Server, oauth2.Endpoint) {
	t.Helper()
	srv := httptest.NewServer(respond)
	t.Cleanup(srv.Close)
	endpoint := oauth2.Endpoint{
		AuthURL:  srv.URL + "/authorize",
		TokenURL: srv.URL + "/api/token",
	}
	return srv, endpoint
}

func writeTokenResponse(w http.ResponseWriter, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}

func TestAuthenticate(t *testing.T) {
	t.Run("successful handshake yields an app client", func(t *testing.T) {
		var gotGrant string
		_, endpoint := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotGrant = r.FormValue("grant_type")
			writeTokenResponse(w, map[string]any{
				"access_token": "app-token",
				"token_type":   "Bearer",
				"expires_in":   3600,
			})
		})

		client, err := Authenticate(context.Background(), ClientCredentials{
			ClientID:     "id",
			ClientSecret: "secret",
		}, WithAuthEndpoint(endpoint), WithLogger(discardLogger()))
		require.NoError(t, err)

		assert.Equal(t, "client_credentials", gotGrant)
		tok := client.Token()
		assert.Equal(t, "app-token", tok.AccessToken)
		assert.Empty(t, tok.RefreshToken)
		assert.False(t, tok.IsExpired())
		assert.False(t, client.Flow().SupportsRefresh())
	})

	t.Run("missing credentials fail before any network call", func(t *testing.T) {
		_, err := Authenticate(context.Background(), ClientCredentials{ClientID: "id"})
		require.Error(t, err)
	})

	t.Run("server rejection surfaces as AuthError", func(t *testing.T) {
		_, endpoint := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{
				"error":             "invalid_client",
				"error_description": "Invalid client secret",
			})
		})

		_, err := Authenticate(context.Background(), ClientCredentials{
			ClientID:     "id",
			ClientSecret: "wrong",
		}, WithAuthEndpoint(endpoint), WithLogger(discardLogger()))

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "invalid_client", authErr.Code)
	})

	t.Run("unreachable endpoint surfaces as TransportError", func(t *testing.T) {
		srv, endpoint := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {})
		srv.Close()

		_, err := Authenticate(context.Background(), ClientCredentials{
			ClientID:     "id",
			ClientSecret: "secret",
		}, WithAuthEndpoint(endpoint), WithLogger(discardLogger()))

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
	})
}

func TestFromRefreshToken(t *testing.T) {
	flow := AuthorizationCode{
		ClientID:     "id",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:8888/callback",
	}

	t.Run("refresh grant restores the session", func(t *testing.T) {
		var gotGrant, gotRefresh string
		_, endpoint := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotGrant = r.FormValue("grant_type")
			gotRefresh = r.FormValue("refresh_token")
			writeTokenResponse(w, map[string]any{
				"access_token": "restored",
				"token_type":   "Bearer",
				"expires_in":   3600,
			})
		})

		user, err := FromRefreshToken(context.Background(), flow, "persisted-refresh",
			WithAuthEndpoint(endpoint), WithLogger(discardLogger()))
		require.NoError(t, err)

		assert.Equal(t, "refresh_token", gotGrant)
		assert.Equal(t, "persisted-refresh", gotRefresh)
		tok := user.Token()
		assert.Equal(t, "restored", tok.AccessToken)
		assert.Equal(t, "persisted-refresh", tok.RefreshToken,
			"an unrotated refresh token must be carried over")
	})

	t.Run("rotated refresh token is adopted", func(t *testing.T) {
		_, endpoint := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			writeTokenResponse(w, map[string]any{
				"access_token":  "restored",
				"token_type":    "Bearer",
				"refresh_token": "rotated",
				"expires_in":    3600,
			})
		})

		user, err := FromRefreshToken(context.Background(), flow, "persisted-refresh",
			WithAuthEndpoint(endpoint), WithLogger(discardLogger()))
		require.NoError(t, err)
		assert.Equal(t, "rotated", user.Token().RefreshToken)
	})

	t.Run("empty refresh token fails without a network call", func(t *testing.T) {
		_, err := FromRefreshToken(context.Background(), flow, "")
		assert.ErrorIs(t, err, ErrRefreshUnavailable)
	})
}

func TestClientRefresh(t *testing.T) {
	t.Run("forced refresh replaces the token", func(t *testing.T) {
		access := "first"
		_, endpoint := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			writeTokenResponse(w, map[string]any{
				"access_token": access,
				"token_type":   "Bearer",
				"expires_in":   3600,
			})
		})

		flow := AuthorizationCodePKCE{ClientID: "id", RedirectURL: "http://localhost:8888/callback"}
		user, err := FromRefreshToken(context.Background(), flow, "persisted-refresh",
			WithAuthEndpoint(endpoint), WithLogger(discardLogger()))
		require.NoError(t, err)
		require.Equal(t, "first", user.Token().AccessToken)

		access = "second"
		require.NoError(t, user.Refresh(context.Background()))
		assert.Equal(t, "second", user.Token().AccessToken)
	})

	t.Run("client credentials cannot refresh", func(t *testing.T) {
		var hits atomic.Int32
		_, endpoint := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			writeTokenResponse(w, map[string]any{
				"access_token": "app-token",
				"token_type":   "Bearer",
				"expires_in":   3600,
			})
		})

		client, err := Authenticate(context.Background(), ClientCredentials{
			ClientID:     "id",
			ClientSecret: "secret",
		}, WithAuthEndpoint(endpoint), WithLogger(discardLogger()))
		require.NoError(t, err)
		require.Equal(t, int32(1), hits.Load())

		assert.ErrorIs(t, client.Refresh(context.Background()), ErrRefreshUnavailable)
		assert.Equal(t, int32(1), hits.Load(), "a failed refresh must not reach the token endpoint")
	})
}
