package goSession

import (
	"context"

	"github.com/MrEthical07/goSession/apiclient"
	"github.com/MrEthical07/goSession/permission"
)

// Login exchanges credentials for a session. On success both tokens are
// persisted write-through (an absent refresh token clears the stored one),
// the returned principal and organization are adopted, and an identity
// refresh runs immediately to populate the permission set — the login
// response intentionally carries no permissions; they are only trustworthy
// from the identity endpoint.
//
// A success envelope without an access token is [ErrInvalidResponse] even
// though the transport reported success. Server rejections propagate as
// *apiclient.APIError with the backend's message verbatim; nothing is
// persisted on any failure path.
func (s *Session) Login(ctx context.Context, email, password string) (SessionSnapshot, error) {
	payload, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.metrics.Inc(MetricLoginFailure)
		s.emit(ctx, EventLoginFailure, false, err)
		return SessionSnapshot{}, err
	}

	if err := s.adoptCredentials(ctx, payload); err != nil {
		s.metrics.Inc(MetricLoginFailure)
		s.emit(ctx, EventLoginFailure, false, err)
		return SessionSnapshot{}, err
	}

	s.metrics.Inc(MetricLoginSuccess)
	s.emit(ctx, EventLoginSuccess, true, nil)

	s.RefreshIdentity(ctx)
	return s.Snapshot(), nil
}

// Register creates a new organization and first user, then follows the same
// post-success path as [Session.Login].
func (s *Session) Register(ctx context.Context, req RegisterRequest) (SessionSnapshot, error) {
	payload, err := s.api.Register(ctx, req)
	if err != nil {
		s.metrics.Inc(MetricRegisterFailure)
		s.emit(ctx, EventRegisterFailure, false, err)
		return SessionSnapshot{}, err
	}

	if err := s.adoptCredentials(ctx, payload); err != nil {
		s.metrics.Inc(MetricRegisterFailure)
		s.emit(ctx, EventRegisterFailure, false, err)
		return SessionSnapshot{}, err
	}

	s.metrics.Inc(MetricRegisterSuccess)
	s.emit(ctx, EventRegisterSuccess, true, nil)

	s.RefreshIdentity(ctx)
	return s.Snapshot(), nil
}

// adoptCredentials persists the tokens from a login or register payload and
// adopts the returned identity with an empty permission set, entering
// PhaseHydrating until the identity refresh resolves.
func (s *Session) adoptCredentials(ctx context.Context, payload apiclient.CredentialsPayload) error {
	if payload.AccessToken == "" {
		return ErrInvalidResponse
	}

	if err := s.persistTokens(payload.AccessToken, payload.RefreshToken); err != nil {
		return err
	}

	s.adoptIdentity(
		principalFromAPI(payload.User),
		organizationFromAPI(payload.Organization),
		permission.Set{},
		PhaseHydrating,
	)
	return nil
}
