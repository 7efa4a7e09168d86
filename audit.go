package goSession

import (
	"context"
	"time"

	internalaudit "github.com/MrEthical07/goSession/internal/audit"
)

// Audit event types emitted by [Session].
const (
	EventLoginSuccess           = "login.success"
	EventLoginFailure           = "login.failure"
	EventRegisterSuccess        = "register.success"
	EventRegisterFailure        = "register.failure"
	EventIdentityRefreshSuccess = "identity.refresh.success"
	EventIdentityRefreshFailure = "identity.refresh.failure"
	EventTokenRefreshSuccess    = "token.refresh.success"
	EventTokenRefreshFailure    = "token.refresh.failure"
	EventHydrateSkipped         = "hydrate.skip"
	EventLogout                 = "logout"
)

func newAuditDispatcher(cfg AuditConfig, sink AuditSink) *internalaudit.Dispatcher {
	return internalaudit.NewDispatcher(internalaudit.Config{
		Enabled:    cfg.Enabled,
		BufferSize: cfg.BufferSize,
		DropIfFull: cfg.DropIfFull,
	}, sink)
}

// emit records a lifecycle transition. Principal and organization IDs are
// read from current state so failure events after a downgrade carry no
// stale identity.
func (s *Session) emit(ctx context.Context, eventType string, success bool, opErr error) {
	if s.audit == nil {
		return
	}

	event := AuditEvent{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		Success:   success,
	}
	if opErr != nil {
		event.Error = opErr.Error()
	}

	s.mu.RLock()
	if s.principal != nil {
		event.PrincipalID = s.principal.ID
	}
	if s.organization != nil {
		event.OrganizationID = s.organization.ID
	}
	s.mu.RUnlock()

	s.audit.Emit(ctx, event)
}

// AuditDropped reports audit events discarded due to backpressure.
func (s *Session) AuditDropped() uint64 {
	return s.audit.Dropped()
}
