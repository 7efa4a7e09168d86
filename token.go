package goSession

import (
	"context"
	"errors"
	"time"

	"github.com/MrEthical07/goSession/apiclient"
	"github.com/MrEthical07/goSession/credstore"
	"github.com/golang-jwt/jwt/v5"
)

// RefreshAccessToken exchanges the stored refresh token for a new access
// token and persists it write-through. When the server rejects the refresh
// token the session downgrades to unauthenticated, same as a failed
// identity fetch; transport failures return the error without touching
// state so a flaky network cannot log the user out.
func (s *Session) RefreshAccessToken(ctx context.Context) error {
	refresh, ok := s.store.Get(credstore.KeyRefreshToken)
	if !ok {
		return ErrNoRefreshToken
	}

	payload, err := s.api.Refresh(ctx, refresh)
	if err != nil {
		s.metrics.Inc(MetricTokenRefreshFailure)
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) {
			s.invalidate(ctx, EventTokenRefreshFailure, err)
		} else {
			s.emit(ctx, EventTokenRefreshFailure, false, err)
		}
		return err
	}

	if payload.AccessToken == "" {
		s.metrics.Inc(MetricTokenRefreshFailure)
		s.invalidate(ctx, EventTokenRefreshFailure, ErrInvalidResponse)
		return ErrInvalidResponse
	}

	if err := s.store.Set(credstore.KeyAccessToken, payload.AccessToken); err != nil {
		s.metrics.Inc(MetricTokenRefreshFailure)
		s.emit(ctx, EventTokenRefreshFailure, false, err)
		return err
	}

	s.metrics.Inc(MetricTokenRefreshSuccess)
	s.emit(ctx, EventTokenRefreshSuccess, true, nil)
	return nil
}

// ensureFreshToken proactively rotates the access token before an identity
// call when it is a JWT that is expired or expiring within the configured
// leeway and a refresh token exists. Failure is not fatal here; the
// identity call that follows makes the authoritative decision.
func (s *Session) ensureFreshToken(ctx context.Context) {
	access, ok := s.store.Get(credstore.KeyAccessToken)
	if !ok {
		return
	}
	if !tokenExpiringSoon(access, s.config.Token.RefreshLeeway, time.Now()) {
		return
	}
	if _, ok := s.store.Get(credstore.KeyRefreshToken); !ok {
		return
	}

	s.RefreshAccessToken(ctx)
}

// tokenExpiringSoon peeks at the exp claim without verifying the signature.
// Verification is the server's job; the client only wants a cheap hint. A
// token that is not a JWT or carries no exp claim yields false: the server
// decides its fate.
func tokenExpiringSoon(raw string, leeway time.Duration, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Time.Sub(now) <= leeway
}
