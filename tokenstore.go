package melodine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// refreshFunc performs one refresh grant against the token endpoint. It
// returns the replacement token or an error; it must not mutate current.
type refreshFunc func(ctx context.Context, current Token) (Token, error)

// tokenStore owns the live token for a client. Reads take the shared lock so
// independent calls proceed in parallel; a refresh swaps the token wholesale
// under the exclusive lock. The singleflight group guarantees that two calls
// racing past the expiry margin trigger exactly one refresh grant, with the
// second caller reusing the first's result.
type tokenStore struct {
	mu    sync.RWMutex
	token Token

	margin  time.Duration
	refresh refreshFunc // nil when the flow cannot refresh
	group   singleflight.Group
	logger  *slog.Logger
}

func newTokenStore(tok Token, margin time.Duration, refresh refreshFunc, logger *slog.Logger) *tokenStore {
	return &tokenStore{
		token:   tok,
		margin:  margin,
		refresh: refresh,
		logger:  logger,
	}
}

// current returns a snapshot of the live token.
func (s *tokenStore) current() Token {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// refreshIfNeeded renews the token when it has expired or is about to expire
// within the safety margin. A still-valid token is a no-op. The check is
// purely request-triggered; there is no background timer.
func (s *tokenStore) refreshIfNeeded(ctx context.Context) error {
	if !s.current().IsExpiredWithMargin(s.margin) {
		return nil
	}
	return s.refreshNow(ctx, false)
}

// refreshNow performs a refresh grant, deduplicated across concurrent
// callers. With force unset, a token renewed by another caller in the
// meantime is detected and reused without a second network call. On failure
// the stale token is left untouched so the caller can decide to
// re-authenticate from scratch.
func (s *tokenStore) refreshNow(ctx context.Context, force bool) error {
	if s.refresh == nil {
		return ErrRefreshUnavailable
	}

	_, err, _ := s.group.Do("refresh", func() (any, error) {
		current := s.current()
		if !force && !current.IsExpiredWithMargin(s.margin) {
			return nil, nil
		}
		if current.RefreshToken == "" {
			return nil, ErrRefreshUnavailable
		}

		next, err := s.refresh(ctx, current)
		if err != nil {
			return nil, err
		}
		// The server may rotate the refresh token; keep the old one when it
		// does not.
		if next.RefreshToken == "" {
			next.RefreshToken = current.RefreshToken
		}

		s.mu.Lock()
		s.token = next
		s.mu.Unlock()

		s.logger.Debug("access token refreshed",
			"expires_at", next.ExpiresAt,
			"rotated_refresh_token", next.RefreshToken != current.RefreshToken,
		)
		return nil, nil
	})
	return err
}
