package goSession

import (
	"io"

	"github.com/MrEthical07/goSession/apiclient"
	internalaudit "github.com/MrEthical07/goSession/internal/audit"
	"github.com/MrEthical07/goSession/permission"
)

// Phase is the hydration state machine of a session, per application load:
//
//	PhaseUnhydrated → PhaseHydrating → {PhaseAuthenticated, PhaseUnauthenticated}
//
// The two terminal phases re-enter PhaseHydrating only through an explicit
// [Session.RefreshIdentity] or [Session.Login]. [Session.Logout] returns to
// PhaseUnhydrated so a later bootstrap re-evaluates from scratch.
type Phase uint8

const (
	// PhaseUnhydrated means no bootstrap has run since construction or the
	// last logout.
	PhaseUnhydrated Phase = iota
	// PhaseHydrating means an identity network call is outstanding. It is
	// the only phase with in-flight I/O.
	PhaseHydrating
	// PhaseAuthenticated means the last identity fetch confirmed the
	// principal.
	PhaseAuthenticated
	// PhaseUnauthenticated means hydration completed with no session: no
	// stored token, or the identity fetch failed.
	PhaseUnauthenticated
)

// Hydrated reports whether the phase is terminal for the hydration machine.
func (p Phase) Hydrated() bool {
	return p == PhaseAuthenticated || p == PhaseUnauthenticated
}

func (p Phase) String() string {
	switch p {
	case PhaseUnhydrated:
		return "unhydrated"
	case PhaseHydrating:
		return "hydrating"
	case PhaseAuthenticated:
		return "authenticated"
	case PhaseUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Principal is the authenticated end user. Immutable once fetched; replaced
// wholesale on each identity refresh, never patched field by field.
type Principal struct {
	ID             string
	OrganizationID string
	Email          string
	FullName       string
	Active         bool
}

// Organization is the tenant context the principal belongs to. Same
// replace-wholesale lifecycle as [Principal].
type Organization struct {
	ID       string
	Name     string
	Code     string
	Timezone string
}

// SessionSnapshot is a point-in-time copy of session state. Principal is
// non-nil iff an access token is present and the last identity fetch
// succeeded; a token with a nil principal is a transient authenticating
// condition, not an authenticated session.
type SessionSnapshot struct {
	AccessToken  string
	RefreshToken string
	Principal    *Principal
	Organization *Organization
	Permissions  permission.Set
	Phase        Phase
}

// RegisterRequest creates a new organization and its first user.
type RegisterRequest = apiclient.RegisterRequest

// AuditEvent is a structured audit record emitted by the session.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the session's audit
// dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}

func principalFromAPI(u apiclient.User) *Principal {
	return &Principal{
		ID:             u.ID,
		OrganizationID: u.OrganizationID,
		Email:          u.Email,
		FullName:       u.FullName,
		Active:         u.Active,
	}
}

func organizationFromAPI(o apiclient.Organization) *Organization {
	return &Organization{
		ID:       o.ID,
		Name:     o.Name,
		Code:     o.Code,
		Timezone: o.Timezone,
	}
}
