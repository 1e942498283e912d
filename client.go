package melodine

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/oauth2/spotify"
)

// DefaultBaseURL is the versioned root of the Web API.
const DefaultBaseURL = "https://api.spotify.com/v1"

// DefaultHTTPTimeout is the timeout of the HTTP client used when none is
// injected.
const DefaultHTTPTimeout = 30 * time.Second

// settings collects everything the constructors can override.
type settings struct {
	httpClient *http.Client
	logger     *slog.Logger
	margin     time.Duration
	endpoint   oauth2.Endpoint
	baseURL    string
}

// Option configures a handshake and the client it produces.
type Option func(*settings)

// WithHTTPClient injects the HTTP transport used for both token endpoint and
// API traffic. Connection handling, TLS and timeouts are its responsibility.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *settings) {
		s.httpClient = httpClient
	}
}

// WithLogger sets a custom logger. The library logs request and refresh
// traces at debug level; token values are never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithExpiryMargin overrides the safety margin used by the proactive expiry
// check before each request.
func WithExpiryMargin(margin time.Duration) Option {
	return func(s *settings) {
		s.margin = margin
	}
}

// WithAuthEndpoint overrides the authorization and token endpoint pair.
func WithAuthEndpoint(endpoint oauth2.Endpoint) Option {
	return func(s *settings) {
		s.endpoint = endpoint
	}
}

// WithBaseURL overrides the API root.
func WithBaseURL(baseURL string) Option {
	return func(s *settings) {
		s.baseURL = baseURL
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{
		httpClient: &http.Client{Timeout: DefaultHTTPTimeout},
		logger:     slog.Default(),
		margin:     DefaultExpiryMargin,
		endpoint:   spotify.Endpoint,
		baseURL:    DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// oauthContext routes x/oauth2 traffic through the injected transport.
func (s *settings) oauthContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
}

// Client is an authenticated handle on the Web API, exposing the app-level
// catalog surface. It exists only after a grant flow handshake has
// succeeded. Safe for concurrent use; the token it holds is refreshed lazily
// and shared across calls.
type Client struct {
	flow    Flow
	store   *tokenStore
	http    *http.Client
	logger  *slog.Logger
	baseURL string
}

// UserClient is a Client whose token carries user consent. It additionally
// exposes the user-scoped surface: the /me library, playback control and
// follow operations. Only the two authorization-code flows produce one.
type UserClient struct {
	Client
}

// Authenticate runs the client-credentials handshake and returns an
// app-level client. There is no user interaction and the resulting token
// cannot be refreshed; once it expires, authenticate again.
func Authenticate(ctx context.Context, flow ClientCredentials, opts ...Option) (*Client, error) {
	if err := flow.validate(); err != nil {
		return nil, err
	}
	s := newSettings(opts)

	conf := &clientcredentials.Config{
		ClientID:     flow.ClientID,
		ClientSecret: flow.ClientSecret,
		TokenURL:     s.endpoint.TokenURL,
		Scopes:       scopeStrings(flow.Scopes),
	}
	tok, err := conf.Token(s.oauthContext(ctx))
	if err != nil {
		return nil, classifyOAuthErr(err)
	}

	s.logger.Debug("client credentials handshake completed", "client_id", flow.ClientID)
	return newClient(flow, s, tokenFromOAuth2(tok), nil), nil
}

// FromRefreshToken restores a user session from a persisted refresh token,
// bypassing the interactive step with an immediate refresh grant. The
// client-credentials flow cannot appear here: it never yields a refresh
// token, so restoring from one is impossible by construction.
func FromRefreshToken(ctx context.Context, flow UserFlow, refreshToken string, opts ...Option) (*UserClient, error) {
	if err := flow.validate(); err != nil {
		return nil, err
	}
	if refreshToken == "" {
		return nil, ErrRefreshUnavailable
	}
	s := newSettings(opts)
	conf := flow.oauthConfig(s)

	src := conf.TokenSource(s.oauthContext(ctx), &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return nil, classifyOAuthErr(err)
	}

	t := tokenFromOAuth2(tok)
	if t.RefreshToken == "" {
		t.RefreshToken = refreshToken
	}
	s.logger.Debug("session restored from refresh token", "client_id", conf.ClientID)
	return newUserClient(flow, s, t, conf), nil
}

// newClient assembles a client around a freshly issued token. refreshConf is
// nil for flows that cannot refresh.
func newClient(flow Flow, s *settings, tok Token, refreshConf *oauth2.Config) *Client {
	var refresh refreshFunc
	if refreshConf != nil {
		refresh = func(ctx context.Context, current Token) (Token, error) {
			return refreshGrant(ctx, s, refreshConf, current)
		}
	}
	return &Client{
		flow:    flow,
		store:   newTokenStore(tok, s.margin, refresh, s.logger),
		http:    s.httpClient,
		logger:  s.logger,
		baseURL: s.baseURL,
	}
}

func newUserClient(flow UserFlow, s *settings, tok Token, conf *oauth2.Config) *UserClient {
	return &UserClient{Client: *newClient(flow, s, tok, conf)}
}

// refreshGrant performs one refresh request at the token endpoint. On
// failure the caller keeps the stale token.
func refreshGrant(ctx context.Context, s *settings, conf *oauth2.Config, current Token) (Token, error) {
	src := conf.TokenSource(s.oauthContext(ctx), &oauth2.Token{RefreshToken: current.RefreshToken})
	tok, err := src.Token()
	if err != nil {
		return Token{}, classifyOAuthErr(err)
	}
	return tokenFromOAuth2(tok), nil
}

// classifyOAuthErr maps x/oauth2 failures onto the library's taxonomy: a
// response the server actually produced is an AuthError, anything below that
// is a TransportError.
func classifyOAuthErr(err error) error {
	var retrieve *oauth2.RetrieveError
	if errors.As(err, &retrieve) {
		return &AuthError{
			Code:        retrieve.ErrorCode,
			Description: retrieve.ErrorDescription,
			err:         err,
		}
	}
	return &TransportError{err: err}
}

// Flow returns the grant flow this client was built with.
func (c *Client) Flow() Flow { return c.flow }

// Token returns a snapshot of the current token, suitable for persisting.
// The refresh token in the snapshot can later restore the session through
// FromRefreshToken.
func (c *Client) Token() Token {
	return c.store.current()
}

// Refresh forces a refresh grant now, regardless of the expiry margin.
// It fails with ErrRefreshUnavailable when the flow cannot refresh. On
// failure the current token is left untouched.
func (c *Client) Refresh(ctx context.Context) error {
	return c.store.refreshNow(ctx, true)
}
