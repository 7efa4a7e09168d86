package goSession

import (
	"context"
	"fmt"
	"sync"

	"github.com/MrEthical07/goSession/apiclient"
	"github.com/MrEthical07/goSession/credstore"
	internalaudit "github.com/MrEthical07/goSession/internal/audit"
	"github.com/MrEthical07/goSession/permission"
	"golang.org/x/sync/singleflight"
)

// Session is the process-wide session manager. It is the single owner of
// session state and the only writer of the credential store. All methods
// are safe for concurrent use after [Builder.Build].
type Session struct {
	config  Config
	store   credstore.Store
	api     *apiclient.Client
	audit   *internalaudit.Dispatcher
	metrics *Metrics

	refreshGroup singleflight.Group

	mu           sync.RWMutex
	phase        Phase
	principal    *Principal
	organization *Organization
	permissions  permission.Set
}

// storeTokenSource adapts the credential store to the transport's token
// contract.
type storeTokenSource struct {
	store credstore.Store
}

func (t storeTokenSource) AccessToken() (string, bool) {
	return t.store.Get(credstore.KeyAccessToken)
}

// IsAuthenticated reports whether an access token is present in the
// credential store. This is a token-presence check, not a
// principal-confirmed check: it is deliberately cheap and synchronous for
// the navigation guard's fast path, accepting a narrow window where a token
// exists but is not yet confirmed valid.
func (s *Session) IsAuthenticated() bool {
	_, ok := s.store.Get(credstore.KeyAccessToken)
	return ok
}

// HasPermission reports membership of id in the current permission set.
// Always false when unauthenticated.
func (s *Session) HasPermission(id string) bool {
	if !s.IsAuthenticated() {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.permissions.Has(id)
}

// HasAnyPermission reports whether any of ids is in the current permission
// set. Always false when unauthenticated.
func (s *Session) HasAnyPermission(ids ...string) bool {
	if !s.IsAuthenticated() {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.permissions.HasAny(ids...)
}

// Phase returns the current hydration phase.
func (s *Session) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// Hydrated reports whether bootstrap has completed since construction or
// the last logout.
func (s *Session) Hydrated() bool {
	return s.Phase().Hydrated()
}

// Snapshot returns a point-in-time copy of session state, including the
// stored tokens.
func (s *Session) Snapshot() SessionSnapshot {
	access, _ := s.store.Get(credstore.KeyAccessToken)
	refresh, _ := s.store.Get(credstore.KeyRefreshToken)

	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := SessionSnapshot{
		AccessToken:  access,
		RefreshToken: refresh,
		Permissions:  s.permissions,
		Phase:        s.phase,
	}
	if s.principal != nil {
		p := *s.principal
		snap.Principal = &p
	}
	if s.organization != nil {
		o := *s.organization
		snap.Organization = &o
	}
	return snap
}

// Metrics exposes the session's counters for guards and exporters.
func (s *Session) Metrics() *Metrics {
	return s.metrics
}

// MetricsSnapshot returns a deep copy of all counters.
func (s *Session) MetricsSnapshot() MetricsSnapshot {
	return s.metrics.Snapshot()
}

// Logout clears tokens from the credential store and principal,
// organization, and permissions from memory. Purely a local transition: no
// network endpoint is called. The phase returns to [PhaseUnhydrated] so a
// subsequent bootstrap re-evaluates from scratch.
func (s *Session) Logout() {
	s.clearSession(PhaseUnhydrated)
	s.metrics.Inc(MetricLogout)
	s.emit(context.Background(), EventLogout, true, nil)
}

// Close flushes and stops the audit dispatcher.
func (s *Session) Close() {
	s.audit.Close()
}

// persistTokens writes both tokens through to the credential store. An
// empty refresh token clears the stored one. Store first, memory second:
// the store must never lag the state it projects.
func (s *Session) persistTokens(access, refresh string) error {
	if err := s.store.Set(credstore.KeyAccessToken, access); err != nil {
		return fmt.Errorf("persist access token: %w", err)
	}

	if refresh == "" {
		if err := s.store.Clear(credstore.KeyRefreshToken); err != nil {
			return fmt.Errorf("clear refresh token: %w", err)
		}
		return nil
	}
	if err := s.store.Set(credstore.KeyRefreshToken, refresh); err != nil {
		return fmt.Errorf("persist refresh token: %w", err)
	}
	return nil
}

// adoptIdentity replaces principal, organization, and permissions wholesale.
func (s *Session) adoptIdentity(p *Principal, o *Organization, perms permission.Set, phase Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.principal = p
	s.organization = o
	s.permissions = perms
	s.phase = phase
}

// clearSession drops credentials and identity, entering the given terminal
// phase. Store errors are ignored on this path: the worst case is a stale
// token that the next identity fetch will reject again.
func (s *Session) clearSession(phase Phase) {
	s.store.Clear(credstore.KeyAccessToken)
	s.store.Clear(credstore.KeyRefreshToken)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.principal = nil
	s.organization = nil
	s.permissions = permission.Set{}
	s.phase = phase
}

func (s *Session) setPhase(phase Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = phase
}
