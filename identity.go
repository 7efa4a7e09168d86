package goSession

import (
	"context"

	"github.com/MrEthical07/goSession/credstore"
	"github.com/MrEthical07/goSession/permission"
)

// RefreshIdentity fetches the authenticated principal from the identity
// endpoint and replaces principal, organization, and permission set
// wholesale. On any failure (network, 401, malformed payload) the session
// downgrades to unauthenticated: tokens, principal, organization, and
// permissions are all cleared. A stale or revoked token must not leave the
// UI half-authenticated; the safe default is no session.
//
// RefreshIdentity never returns an error. Concurrent calls are deduplicated
// into a single in-flight request; every caller observes its outcome.
func (s *Session) RefreshIdentity(ctx context.Context) {
	s.refreshGroup.Do("identity", func() (any, error) {
		s.refreshIdentity(ctx)
		return nil, nil
	})
}

func (s *Session) refreshIdentity(ctx context.Context) {
	s.setPhase(PhaseHydrating)
	s.ensureFreshToken(ctx)

	payload, err := s.api.Me(ctx)
	if err != nil {
		s.invalidate(ctx, EventIdentityRefreshFailure, err)
		s.metrics.Inc(MetricIdentityRefreshFailure)
		return
	}

	s.adoptIdentity(
		principalFromAPI(payload.User),
		organizationFromAPI(payload.Organization),
		permission.NewSet(payload.Permissions...),
		PhaseAuthenticated,
	)

	s.metrics.Inc(MetricIdentityRefreshSuccess)
	s.emit(ctx, EventIdentityRefreshSuccess, true, nil)
}

// HydrateFromStorage is the idempotent bootstrap, invoked once at
// application start. Once hydrated it is a no-op. With no stored access
// token it resolves immediately to unauthenticated without a network call;
// otherwise it delegates to [Session.RefreshIdentity].
func (s *Session) HydrateFromStorage(ctx context.Context) {
	if s.Hydrated() {
		s.metrics.Inc(MetricHydrateSkipped)
		s.emit(ctx, EventHydrateSkipped, true, nil)
		return
	}

	if _, ok := s.store.Get(credstore.KeyAccessToken); !ok {
		s.adoptIdentity(nil, nil, permission.Set{}, PhaseUnauthenticated)
		s.metrics.Inc(MetricHydrateNoCredentials)
		return
	}

	s.RefreshIdentity(ctx)
}

// invalidate performs the full local logout that every identity failure
// resolves to, leaving the session hydrated-but-unauthenticated.
func (s *Session) invalidate(ctx context.Context, eventType string, cause error) {
	s.clearSession(PhaseUnauthenticated)
	s.metrics.Inc(MetricSessionInvalidated)
	s.emit(ctx, eventType, false, cause)
}
